package infrastructure

import (
	"github.com/architeacher/device-registry/internal/config"
	"github.com/cenkalti/backoff/v5"
)

// RetryOptions translates the startup backoff settings.
func RetryOptions(cfg config.Backoff) []backoff.RetryOption {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = cfg.BaseDelay
	expBackoff.Multiplier = cfg.Multiplier
	expBackoff.RandomizationFactor = cfg.Jitter
	expBackoff.MaxInterval = cfg.MaxDelay

	maxTries := cfg.MaxTries
	if maxTries == 0 {
		maxTries = 1
	}

	return []backoff.RetryOption{
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(maxTries),
	}
}
