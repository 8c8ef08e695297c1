package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"google.golang.org/grpc"
)

type (
	ServiceCtx struct {
		deps            *dependencies
		depOptions      []DependencyOption
		shutdownChannel chan os.Signal
		serverCtx       context.Context
		serverStopFunc  context.CancelFunc
		serverReady     chan struct{}
	}

	serverSpec struct {
		name  string
		addr  string
		serve func(net.Listener) error
	}

	// boundServer is a server whose listener is already open.
	boundServer struct {
		serverSpec
		listener net.Listener
	}
)

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

func (c *ServiceCtx) Run() {
	if err := c.build(); err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	if err := c.startService(); err != nil {
		c.deps.runCleanups(context.Background())
		log.Fatalf("failed to start service: %v", err)
	}

	c.shutdownHook()
	c.monitorConfigChanges()

	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.shutdown()
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(c.serverCtx, c.depOptions...)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	return nil
}

// startService binds every listener before serving any of them, so a port
// conflict aborts startup instead of leaving half the service up.
func (c *ServiceCtx) startService() error {
	servers, err := c.bindServers()
	if err != nil {
		return err
	}

	if c.deps.infra.grpcHealth != nil {
		go c.deps.infra.grpcHealth.Run(c.serverCtx)
	}

	for _, srv := range servers {
		go c.serve(srv)
	}

	if c.serverReady != nil {
		close(c.serverReady)
	}

	return nil
}

func (c *ServiceCtx) bindServers() ([]boundServer, error) {
	httpServer := c.deps.infra.httpServer

	specs := []serverSpec{
		{name: "http server", addr: httpServer.Addr, serve: httpServer.Serve},
	}

	if admin := c.deps.infra.adminServer; admin != nil {
		cfg := c.deps.config.AdminGRPC
		specs = append(specs, serverSpec{
			name:  "admin gRPC server",
			addr:  net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			serve: admin.Serve,
		})
	}

	bound := make([]boundServer, 0, len(specs))

	for _, spec := range specs {
		listener, err := net.Listen("tcp", spec.addr)
		if err != nil {
			for _, b := range bound {
				_ = b.listener.Close()
			}

			return nil, fmt.Errorf("failed to listen for the %s on %s: %w", spec.name, spec.addr, err)
		}

		bound = append(bound, boundServer{serverSpec: spec, listener: listener})
	}

	return bound, nil
}

func (c *ServiceCtx) serve(srv boundServer) {
	c.deps.infra.logger.Info().
		Str("address", srv.listener.Addr().String()).
		Msgf("starting the %s", srv.name)

	err := srv.serve(srv.listener)
	if err == nil || errors.Is(err, http.ErrServerClosed) || errors.Is(err, grpc.ErrServerStopped) {
		return
	}

	c.deps.infra.logger.Error().Err(err).Msgf("%s stopped unexpectedly", srv.name)
	c.serverStopFunc()
}

func (c *ServiceCtx) monitorConfigChanges() {
	if c.deps.configLoader == nil {
		return
	}

	reloadErrors := c.deps.configLoader.WatchConfigSignals(c.serverCtx)
	go func() {
		for err := range reloadErrors {
			if err != nil {
				c.deps.infra.logger.Error().Err(err).Msg("config reload failed")
			} else {
				c.deps.infra.logger.Info().Msg("config reloaded successfully")
			}
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	c.deps.infra.logger.Info().Msg("shutting down service...")

	// Cancel context that underlying processes would start cleanup.
	c.serverStopFunc()

	// serverCtx is already cancelled, so the grace period hangs off a fresh context.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.config.HTTPServer.ShutdownTimeout)
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.infra.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			os.Exit(1)
		}
	}()

	c.stopServers(shutdownCtx)
	c.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("service shutdown complete")
}

func (c *ServiceCtx) stopServers(shutdownCtx context.Context) {
	if c.deps.infra.grpcHealth != nil {
		c.deps.infra.grpcHealth.Shutdown()
	}

	if err := c.deps.infra.httpServer.Shutdown(shutdownCtx); err != nil {
		c.deps.infra.logger.Error().Err(err).Msg("failed to shutdown the http server gracefully")
	}

	if c.deps.infra.adminServer != nil {
		c.stopAdminServer()
	}
}

// stopAdminServer drains in-flight RPCs, falling back to a hard stop once
// the admin shutdown timeout elapses.
func (c *ServiceCtx) stopAdminServer() {
	stopped := make(chan struct{})

	go func() {
		c.deps.infra.adminServer.GracefulStop()
		close(stopped)
	}()

	timeout := c.deps.config.AdminGRPC.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case <-stopped:
	case <-ctx.Done():
		c.deps.infra.logger.Warn().
			Dur("timeout", timeout).
			Msg("admin gRPC server did not drain in time, stopping")
		c.deps.infra.adminServer.Stop()
	}
}

// WaitForServer blocks until the http server is running.
// If you want to be notified when the server is running,
// make sure you instantiate your server with WithWaitingForServer.
//
// Example:
//
//	srv := runtime.New(WithWaitingForServer())
//	go func() {
//		srv.Run()
//	}()
//
//	srv.WaitForServer()
func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

func (c *ServiceCtx) cleanup(shutdownCtx context.Context) {
	c.deps.infra.logger.Info().Msg("cleaning up resources...")

	c.deps.runCleanups(shutdownCtx)

	c.deps.infra.logger.Info().Msg("cleanup completed")
}
