package grpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	inboundgrpc "github.com/architeacher/device-registry/internal/adapters/inbound/grpc"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/internal/infrastructure"
	"github.com/architeacher/device-registry/internal/mocks"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

const serviceName = "device-registry"

func dialAdminServer(t *testing.T, handler *inboundgrpc.HealthHandler) healthpb.HealthClient {
	t.Helper()

	server := inboundgrpc.NewAdminServer(inboundgrpc.AdminServerConfig{
		Health:         handler,
		Logger:         logger.NewTestLogger(),
		TracerProvider: infrastructure.NewNoopTracerProvider(),
		Config: &config.ServiceConfig{
			AdminGRPC: config.AdminGRPC{Reflection: true},
			Telemetry: config.Telemetry{Traces: config.Traces{Enabled: true}},
		},
	})

	listener := bufconn.Listen(1 << 20)

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealthHandler_Refresh(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		healthy        bool
		expectedStatus healthpb.HealthCheckResponse_ServingStatus
	}{
		{
			name:           "service is serving when store is healthy",
			healthy:        true,
			expectedStatus: healthpb.HealthCheckResponse_SERVING,
		},
		{
			name:           "service is not serving when store is unhealthy",
			healthy:        false,
			expectedStatus: healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			checker := &mocks.FakeHealthChecker{}
			checker.IsHealthyReturns(tc.healthy)

			handler := inboundgrpc.NewHealthHandler(checker, serviceName, 0, logger.NewTestLogger())
			client := dialAdminServer(t, handler)

			require.Equal(t, tc.expectedStatus, handler.Refresh(t.Context()))

			for _, service := range []string{"", serviceName} {
				resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: service})
				require.NoError(t, err)
				require.Equal(t, tc.expectedStatus, resp.GetStatus())
			}
		})
	}
}

func TestHealthHandler_StartsNotServing(t *testing.T) {
	t.Parallel()

	checker := &mocks.FakeHealthChecker{}
	checker.IsHealthyReturns(true)

	handler := inboundgrpc.NewHealthHandler(checker, serviceName, 0, logger.NewTestLogger())
	client := dialAdminServer(t, handler)

	resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
	require.Zero(t, checker.IsHealthyCallCount(), "no health check before Run")
}

func TestHealthHandler_RunTracksChanges(t *testing.T) {
	t.Parallel()

	checker := &mocks.FakeHealthChecker{}
	checker.IsHealthyReturns(true)

	handler := inboundgrpc.NewHealthHandler(checker, serviceName, 10*time.Millisecond, logger.NewTestLogger())
	client := dialAdminServer(t, handler)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	go handler.Run(ctx)

	require.Eventually(t, func() bool {
		resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: serviceName})

		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	checker.IsHealthyReturns(false)

	require.Eventually(t, func() bool {
		resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: serviceName})

		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)
}

func TestHealthHandler_Shutdown(t *testing.T) {
	t.Parallel()

	checker := &mocks.FakeHealthChecker{}
	checker.IsHealthyReturns(true)

	handler := inboundgrpc.NewHealthHandler(checker, serviceName, 0, logger.NewTestLogger())
	client := dialAdminServer(t, handler)

	handler.Shutdown()
	handler.Refresh(t.Context())

	resp, err := client.Check(t.Context(), &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
