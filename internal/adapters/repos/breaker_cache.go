package repos

import (
	"context"

	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/circuitbreaker"
)

var _ ports.Cache = (*BreakerCache)(nil)

type (
	// BreakerCache sheds cache calls while KeyDB keeps failing. A rejected
	// read surfaces as an error, which the registry treats as a miss.
	BreakerCache struct {
		next    PingableCache
		breaker *circuitbreaker.CircuitBreaker[cacheEntry]
	}

	PingableCache interface {
		ports.Cache
		ports.Pinger
	}

	cacheEntry struct {
		data  []byte
		found bool
	}
)

// NewBreakerCache returns next unchanged when the breaker is disabled.
func NewBreakerCache(next PingableCache, cfg circuitbreaker.Config) PingableCache {
	breaker := circuitbreaker.New[cacheEntry](cfg)
	if breaker == nil {
		return next
	}

	return &BreakerCache{next: next, breaker: breaker}
}

func (c *BreakerCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, err := circuitbreaker.Execute(c.breaker, func() (cacheEntry, error) {
		data, found, err := c.next.Get(ctx, key)

		return cacheEntry{data: data, found: found}, err
	})
	if err != nil {
		return nil, false, err
	}

	return entry.data, entry.found, nil
}

func (c *BreakerCache) Set(ctx context.Context, key string, value []byte) error {
	_, err := circuitbreaker.Execute(c.breaker, func() (cacheEntry, error) {
		return cacheEntry{}, c.next.Set(ctx, key, value)
	})

	return err
}

func (c *BreakerCache) Delete(ctx context.Context, keys ...string) error {
	_, err := circuitbreaker.Execute(c.breaker, func() (cacheEntry, error) {
		return cacheEntry{}, c.next.Delete(ctx, keys...)
	})

	return err
}

// Ping bypasses the breaker so health checks observe KeyDB directly.
func (c *BreakerCache) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

func (c *BreakerCache) State() circuitbreaker.State {
	return c.breaker.State()
}
