package services

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/device-registry/internal/ports"
)

var _ ports.HealthChecker = (*HealthService)(nil)

type (
	// Dependency is a named health check. Critical dependencies decide overall health.
	Dependency struct {
		Name     string
		Pinger   ports.Pinger
		Critical bool
	}

	HealthService struct {
		dependencies []Dependency
		timeout      time.Duration
	}
)

func NewHealthService(timeout time.Duration, dependencies ...Dependency) *HealthService {
	return &HealthService{
		dependencies: dependencies,
		timeout:      timeout,
	}
}

func (s *HealthService) IsHealthy(ctx context.Context) bool {
	for _, dependency := range s.dependencies {
		if !dependency.Critical {
			continue
		}

		if err := s.ping(ctx, dependency); err != nil {
			return false
		}
	}

	return true
}

func (s *HealthService) CheckDependencies(ctx context.Context) map[string]ports.DependencyStatus {
	statuses := make(map[string]ports.DependencyStatus, len(s.dependencies))

	for _, dependency := range s.dependencies {
		start := time.Now()
		err := s.ping(ctx, dependency)

		status := ports.DependencyStatus{
			Healthy: err == nil,
			Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		}

		if err != nil {
			status.Message = err.Error()
		}

		statuses[dependency.Name] = status
	}

	return statuses
}

func (s *HealthService) ping(ctx context.Context, dependency Dependency) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return dependency.Pinger.Ping(ctx)
}
