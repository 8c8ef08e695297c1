package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/device-registry/internal/infrastructure"
	"github.com/architeacher/device-registry/internal/ports"
)

var _ ports.Cache = (*DevicesCache)(nil)

type (
	// KeyValueClient is the subset of the KeyDB client the cache needs.
	KeyValueClient interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte) error
		Delete(ctx context.Context, keys ...string) error
		Ping(ctx context.Context) error
	}

	// DevicesCache stores opaque entries in KeyDB. It knows nothing about the
	// key layout or the encoding, both belong to the registry.
	DevicesCache struct {
		client KeyValueClient
	}
)

func NewDevicesCache(client KeyValueClient) *DevicesCache {
	return &DevicesCache{client: client}
}

func (c *DevicesCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, infrastructure.ErrKeyNotFound) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("reading cache key %s: %w", key, err)
	}

	return data, true, nil
}

func (c *DevicesCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value); err != nil {
		return fmt.Errorf("writing cache key %s: %w", key, err)
	}

	return nil
}

func (c *DevicesCache) Delete(ctx context.Context, keys ...string) error {
	if err := c.client.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("deleting cache keys %v: %w", keys, err)
	}

	return nil
}

func (c *DevicesCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}
