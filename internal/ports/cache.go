//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import "context"

//counterfeiter:generate -o ../mocks/cache.go . Cache

// Cache is a best-effort key/value store. It is never authoritative and the
// registry assumes nothing about expiry.
type Cache interface {
	// Get reports found=false on a miss. An error means the cache could not answer.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes every given key. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
