package repos

import "context"

// NopCache stands in for KeyDB when caching is disabled. Every read misses
// and every write succeeds, so the registry always answers from the store.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, string, []byte) error {
	return nil
}

func (NopCache) Delete(context.Context, ...string) error {
	return nil
}

func (NopCache) Ping(context.Context) error {
	return nil
}
