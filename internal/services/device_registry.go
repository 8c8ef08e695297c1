package services

import (
	"context"
	"fmt"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

// DeviceRegistry fronts the store with a read-through cache. Reads populate
// the cache on a miss, writes only ever evict. Concurrent writes to the same
// device are not serialized and the last store write wins.
type DeviceRegistry struct {
	store   ports.DeviceStore
	cache   ports.Cache
	logger  logger.Logger
	metrics metrics.Client
}

func NewDeviceRegistry(
	store ports.DeviceStore,
	cache ports.Cache,
	log logger.Logger,
	metricsClient metrics.Client,
) *DeviceRegistry {
	return &DeviceRegistry{
		store:   store,
		cache:   cache,
		logger:  log.Component("device_registry"),
		metrics: metricsClient,
	}
}

// log returns the registry logger enriched with the request ids on ctx.
func (r *DeviceRegistry) log(ctx context.Context) *zerolog.Logger {
	l := r.logger.WithContext(ctx)

	return &l
}

func (r *DeviceRegistry) Create(ctx context.Context, input model.NewDevice) (*model.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := r.store.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("creating device: %w", err)
	}

	if err := r.invalidate(ctx, collectionKeys(created)...); err != nil {
		return nil, err
	}

	r.log(ctx).Info().
		Str("device_id", created.ID.String()).
		Str("brand", created.Brand).
		Str("state", created.State.String()).
		Msg("device created")

	return created, nil
}

func (r *DeviceRegistry) Get(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	key := DeviceKey(id)

	if data, ok := r.lookup(ctx, key, bucketDevice); ok {
		device, err := decodeDevice(data)
		if err == nil {
			return device, nil
		}

		r.log(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
	}

	device, err := r.store.FetchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching device %s: %w", id, err)
	}

	if data, err := encodeDevice(device); err == nil {
		r.populate(ctx, key, data)
	}

	return device, nil
}

func (r *DeviceRegistry) List(ctx context.Context) ([]*model.Device, error) {
	return r.readThroughList(ctx, AllDevicesKey, bucketAll, false, r.store.FindAll)
}

func (r *DeviceRegistry) ListByBrand(ctx context.Context, brand string) ([]*model.Device, error) {
	return r.readThroughList(ctx, BrandKey(brand), bucketBrand, false, func(ctx context.Context) ([]*model.Device, error) {
		return r.store.FindWhere(ctx, model.ByBrand(brand))
	})
}

// ListByState treats an empty cached bucket as a miss, unlike the other
// collections, so a state bucket cached empty is always re-read from the store.
func (r *DeviceRegistry) ListByState(ctx context.Context, state model.State) ([]*model.Device, error) {
	if !state.IsValid() {
		errs := model.NewValidationErrors()
		errs.Add("state", fmt.Sprintf("unknown state %q", state), model.ValidationCodeInvalid)

		return nil, errs
	}

	return r.readThroughList(ctx, StateKey(state), bucketState, true, func(ctx context.Context) ([]*model.Device, error) {
		return r.store.FindWhere(ctx, model.ByState(state))
	})
}

func (r *DeviceRegistry) Update(ctx context.Context, id model.DeviceID, patch model.DevicePatch) (*model.Device, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	return r.apply(ctx, id, patch)
}

func (r *DeviceRegistry) Replace(ctx context.Context, id model.DeviceID, replacement model.DeviceReplacement) (*model.Device, error) {
	if err := replacement.Validate(); err != nil {
		return nil, err
	}

	return r.apply(ctx, id, replacement.AsPatch())
}

func (r *DeviceRegistry) Remove(ctx context.Context, id model.DeviceID) error {
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if !current.CanDelete() {
		return model.ErrCannotDeleteInUseDevice
	}

	if err := r.store.Delete(ctx, current); err != nil {
		return fmt.Errorf("deleting device %s: %w", id, err)
	}

	if err := r.invalidate(ctx, mutationKeys(current, nil)...); err != nil {
		return err
	}

	r.log(ctx).Info().Str("device_id", id.String()).Msg("device removed")

	return nil
}

func (r *DeviceRegistry) apply(ctx context.Context, id model.DeviceID, patch model.DevicePatch) (*model.Device, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patch.CheckTransition(current); err != nil {
		return nil, err
	}

	saved, err := r.store.Save(ctx, model.Merge(current, patch))
	if err != nil {
		return nil, fmt.Errorf("saving device %s: %w", id, err)
	}

	if err := r.invalidate(ctx, mutationKeys(saved, current)...); err != nil {
		return nil, err
	}

	r.log(ctx).Info().
		Str("device_id", saved.ID.String()).
		Str("state", saved.State.String()).
		Msg("device updated")

	return saved, nil
}

func (r *DeviceRegistry) readThroughList(
	ctx context.Context,
	key, bucket string,
	emptyIsMiss bool,
	load func(ctx context.Context) ([]*model.Device, error),
) ([]*model.Device, error) {
	if data, ok := r.lookup(ctx, key, bucket); ok {
		devices, err := decodeDevices(data)

		switch {
		case err != nil:
			r.log(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		case emptyIsMiss && len(devices) == 0:
			r.log(ctx).Debug().Str("key", key).Msg("empty cached bucket treated as miss")
		default:
			return devices, nil
		}
	}

	devices, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	if devices == nil {
		devices = []*model.Device{}
	}

	if data, err := encodeDevices(devices); err == nil {
		r.populate(ctx, key, data)
	}

	return devices, nil
}

// lookup reports a hit only when the cache answered with a value. Cache
// failures degrade to a miss.
func (r *DeviceRegistry) lookup(ctx context.Context, key, bucket string) ([]byte, bool) {
	data, found, err := r.cache.Get(ctx, key)

	switch {
	case err != nil:
		r.count(ctx, "registry.cache.error", bucket)
		r.log(ctx).Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")

		return nil, false
	case !found:
		r.count(ctx, "registry.cache.miss", bucket)

		return nil, false
	}

	r.count(ctx, "registry.cache.hit", bucket)
	r.log(ctx).Debug().Str("key", key).Msg("cache hit")

	return data, true
}

func (r *DeviceRegistry) populate(ctx context.Context, key string, data []byte) {
	if err := r.cache.Set(ctx, key, data); err != nil {
		r.log(ctx).Warn().Err(err).Str("key", key).Msg("cache populate failed")
	}
}

func (r *DeviceRegistry) invalidate(ctx context.Context, keys ...string) error {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.log(ctx).Error().Err(err).Strs("keys", keys).Msg("cache invalidation failed")

		return fmt.Errorf("%w: %w", model.ErrCacheInvalidation, err)
	}

	return nil
}

func (r *DeviceRegistry) count(ctx context.Context, name, bucket string) {
	if r.metrics == nil {
		return
	}

	r.metrics.Inc(ctx, name, 1, attribute.String("bucket", bucket))
}
