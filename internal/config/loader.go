package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/architeacher/device-registry/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"github.com/hashicorp/vault/api"
	"github.com/kelseyhightower/envconfig"
)

var errSecretsDisabled = errors.New("secret storage is not enabled")

// secretBindings lists the Vault keys that override typed configuration.
// Any other string value is exported to the environment untouched.
var secretBindings = map[string]func(*ServiceConfig, string){
	"POSTGRES_USERNAME": func(c *ServiceConfig, v string) { c.Database.Username = v },
	"POSTGRES_PASSWORD": func(c *ServiceConfig, v string) { c.Database.Password = v },
	"CACHE_PASSWORD":    func(c *ServiceConfig, v string) { c.Cache.Password = v },
}

type authenticator func(ctx context.Context, repo ports.SecretsRepository, storage SecretsStorage) error

var authenticators = map[string]authenticator{
	"token":   tokenAuth,
	"approle": appRoleAuth,
}

// kvEntry is one read of the registry's KV v2 secret.
type kvEntry struct {
	values  map[string]any
	version uint
}

// Loader overlays Vault secrets on top of the environment configuration and
// reapplies them whenever the secret version moves.
type Loader struct {
	cfg         *ServiceConfig
	secretsRepo ports.SecretsRepository
	signals     chan os.Signal
	reloads     chan error
	dumpTo      io.Writer
	lastVersion uint
}

func NewLoader(cfg *ServiceConfig, secretsRepo ports.SecretsRepository, initialVersion uint) *Loader {
	return &Loader{
		cfg:         cfg,
		secretsRepo: secretsRepo,
		signals:     make(chan os.Signal, 1),
		reloads:     make(chan error, 1),
		dumpTo:      os.Stdout,
		lastVersion: initialVersion,
	}
}

func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}

	return cfg, nil
}

// Load authenticates, reads the secret and applies it. It returns the
// secret version that was applied.
func (l *Loader) Load(ctx context.Context) (uint, error) {
	storage := l.cfg.SecretsStorage
	if !storage.Enabled {
		return 0, errSecretsDisabled
	}

	auth, ok := authenticators[strings.ToLower(storage.AuthMethod)]
	if !ok {
		return 0, fmt.Errorf("failed to authenticate with Vault: unsupported auth method: %s", storage.AuthMethod)
	}

	if err := auth(ctx, l.secretsRepo, storage); err != nil {
		return 0, fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	entry, err := l.fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	if err := l.apply(entry.values); err != nil {
		return 0, err
	}

	l.lastVersion = entry.version

	return entry.version, nil
}

// WatchConfigSignals reloads on SIGHUP or on the poll interval and dumps
// the redacted configuration on SIGUSR1. The returned channel carries the
// outcome of each reload that changed the version.
func (l *Loader) WatchConfigSignals(ctx context.Context) <-chan error {
	signal.Notify(l.signals, syscall.SIGHUP, syscall.SIGUSR1)

	var (
		ticker *time.Ticker
		poll   <-chan time.Time
	)

	if l.cfg.SecretsStorage.Enabled && l.cfg.SecretsStorage.PollInterval > 0 {
		ticker = time.NewTicker(l.cfg.SecretsStorage.PollInterval)
		poll = ticker.C
	}

	go func() {
		defer close(l.reloads)
		defer signal.Stop(l.signals)

		if ticker != nil {
			defer ticker.Stop()
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-poll:
				l.reload(ctx)
			case sig := <-l.signals:
				if sig == syscall.SIGUSR1 {
					l.DumpConfig()

					continue
				}

				l.reload(ctx)
			}
		}
	}()

	return l.reloads
}

// DumpConfig writes the configuration as JSON. Secret fields are tagged
// out of the encoding.
func (l *Loader) DumpConfig() {
	out, err := json.MarshalIndent(l.cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(l.dumpTo, "Error marshaling config: %v\n", err)

		return
	}

	fmt.Fprintf(l.dumpTo, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", out)
}

func (l *Loader) reload(ctx context.Context) {
	entry, err := l.fetch(ctx)
	if err != nil {
		l.report(fmt.Errorf("failed to load secrets from Vault: %w", err))

		return
	}

	if entry.version == l.lastVersion {
		return
	}

	if err := l.apply(entry.values); err != nil {
		l.report(err)

		return
	}

	l.lastVersion = entry.version
	l.report(nil)
}

func (l *Loader) report(err error) {
	select {
	case l.reloads <- err:
	default:
	}
}

func (l *Loader) secretPath() string {
	return "apps/data/" + l.cfg.SecretsStorage.MountPath
}

func (l *Loader) fetch(ctx context.Context) (kvEntry, error) {
	storage := l.cfg.SecretsStorage
	path := l.secretPath()

	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second

	secret, err := backoff.Retry(ctx,
		func() (*api.Secret, error) {
			return l.secretsRepo.GetSecrets(ctx, path)
		},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(storage.MaxRetries+1),
	)
	if err != nil {
		return kvEntry{}, fmt.Errorf("failed to read from path %s after %d retries: %w", path, storage.MaxRetries, err)
	}

	return decodeKV(path, secret)
}

func decodeKV(path string, secret *api.Secret) (kvEntry, error) {
	if secret == nil || secret.Data == nil {
		return kvEntry{}, nil
	}

	values, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return kvEntry{}, fmt.Errorf("invalid secret format at path %s, missing 'data' key", path)
	}

	metadata, _ := secret.Data["metadata"].(map[string]any)

	version, err := versionOf(metadata)
	if err != nil {
		return kvEntry{}, fmt.Errorf("failed to get secret version: %w", err)
	}

	return kvEntry{values: values, version: version}, nil
}

func versionOf(metadata map[string]any) (uint, error) {
	raw, ok := metadata["current_version"]
	if !ok {
		if raw, ok = metadata["version"]; !ok {
			return 0, nil
		}
	}

	switch v := raw.(type) {
	case float64:
		return uint(v), nil
	case int:
		return uint(v), nil
	case uint:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("failed to parse version: %w", err)
		}

		return uint(n), nil
	default:
		return 0, fmt.Errorf("unexpected version type: %T", raw)
	}
}

func (l *Loader) apply(values map[string]any) error {
	for key, raw := range values {
		value, ok := raw.(string)
		if !ok || value == "" {
			continue
		}

		if bind, ok := secretBindings[key]; ok {
			bind(l.cfg, value)

			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to export secret %s: %w", key, err)
		}
	}

	return nil
}

func tokenAuth(_ context.Context, repo ports.SecretsRepository, storage SecretsStorage) error {
	if storage.Token == "" {
		return errors.New("token is required for token auth method")
	}

	repo.SetToken(storage.Token)

	return nil
}

func appRoleAuth(ctx context.Context, repo ports.SecretsRepository, storage SecretsStorage) error {
	if storage.RoleID == "" || storage.SecretID == "" {
		return errors.New("role_id and secret_id are required for approle auth method")
	}

	resp, err := repo.WriteWithContext(ctx, "auth/approle/login", map[string]any{
		"role_id":   storage.RoleID,
		"secret_id": storage.SecretID,
	})
	if err != nil {
		return fmt.Errorf("failed to authenticate via approle: %w", err)
	}

	if resp == nil || resp.Auth == nil {
		return errors.New("no auth info returned from Vault")
	}

	repo.SetToken(resp.Auth.ClientToken)

	return nil
}
