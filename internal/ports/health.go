//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import "context"

//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker

// HealthChecker reports on the service and its dependencies.
type HealthChecker interface {
	IsHealthy(ctx context.Context) bool

	// CheckDependencies returns the status of every dependency by name.
	CheckDependencies(ctx context.Context) map[string]DependencyStatus
}

type DependencyStatus struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Pinger is implemented by dependencies that can be pinged for liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}
