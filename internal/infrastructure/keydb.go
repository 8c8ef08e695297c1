package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/device-registry/internal/config"
	appLogger "github.com/architeacher/device-registry/pkg/logger"
	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotFound = errors.New("key not found")

type KeydbClient struct {
	client *redis.Client
	logger appLogger.Logger
	expiry time.Duration
}

func NewKeyDBClient(config config.Cache, logger appLogger.Logger) *KeydbClient {
	opts := &redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           int(config.DB),
		PoolSize:     int(config.PoolSize),
		MinIdleConns: int(config.MinIdleConns),
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolTimeout:  config.PoolTimeout,
		MaxRetries:   int(config.MaxRetries),
	}

	return NewKeyDBClientFromRedis(redis.NewClient(opts), config.DefaultExpiry, logger)
}

// NewKeyDBClientFromRedis wraps an already configured client.
func NewKeyDBClientFromRedis(client *redis.Client, expiry time.Duration, logger appLogger.Logger) *KeydbClient {
	return &KeydbClient{
		client: client,
		logger: logger.Component("keydb"),
		expiry: expiry,
	}
}

// WaitReady pings until the server answers or the retry budget is spent.
func (c *KeydbClient) WaitReady(ctx context.Context, retry config.Backoff) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := c.Ping(ctx); err != nil {
			c.logger.Warn().Err(err).Msg("keydb not reachable yet")

			return struct{}{}, err
		}

		return struct{}{}, nil
	}, RetryOptions(retry)...)
	if err != nil {
		return fmt.Errorf("waiting for keydb: %w", err)
	}

	return nil
}

func (c *KeydbClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *KeydbClient) Close() error {
	return c.client.Close()
}

// Get returns ErrKeyNotFound when the key is absent.
func (c *KeydbClient) Get(ctx context.Context, key string) ([]byte, error) {
	startTime := time.Now()

	result, err := c.client.Get(ctx, key).Bytes()

	c.logger.Debug().
		Str("key", key).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("hit", err == nil).
		Msg("keydb get operation")

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}

		c.logger.Error().
			Err(err).
			Str("key", key).
			Msg("keydb get operation failed")

		return nil, err
	}

	return result, nil
}

// Set stores value under key with the configured expiry. A zero expiry keeps
// the key until it is deleted.
func (c *KeydbClient) Set(ctx context.Context, key string, value []byte) error {
	startTime := time.Now()

	err := c.client.Set(ctx, key, value, c.expiry).Err()

	c.logger.Debug().
		Str("key", key).
		Str("expiry", c.expiry.String()).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("success", err == nil).
		Msg("keydb set operation")

	return err
}

// Delete removes all keys in a single DEL. Absent keys are not an error.
func (c *KeydbClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	startTime := time.Now()

	err := c.client.Del(ctx, keys...).Err()

	c.logger.Debug().
		Strs("keys", keys).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Bool("success", err == nil).
		Msg("keydb delete operation")

	return err
}
