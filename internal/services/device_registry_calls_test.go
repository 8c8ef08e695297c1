package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/mocks"
	"github.com/architeacher/device-registry/internal/services"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
)

func newRegistryWithFakeCache(t *testing.T) (*services.DeviceRegistry, *memoryStore, *mocks.FakeCache) {
	t.Helper()

	store := newMemoryStore()
	cache := &mocks.FakeCache{}

	return services.NewDeviceRegistry(store, cache, logger.NewTestLogger(), noop.NewMetricsClient()), store, cache
}

func TestDeviceRegistry_Update_EvictsInOneCall(t *testing.T) {
	t.Parallel()

	registry, _, cache := newRegistryWithFakeCache(t)
	ctx := context.Background()
	device := mustCreate(t, registry, "Galaxy S24", "Samsung", model.StateAvailable)

	_, err := registry.Update(ctx, device.ID, model.DevicePatch{Brand: ptr("SAMSUNG"), State: ptr(model.StateInactive)})
	require.NoError(t, err)

	require.Equal(t, 2, cache.DeleteCallCount(), "create and update evict once each")

	_, keys := cache.DeleteArgsForCall(1)
	require.ElementsMatch(t, []string{
		services.DeviceKey(device.ID),
		services.AllDevicesKey,
		services.BrandKey("Samsung"),
		services.BrandKey("SAMSUNG"),
		services.StateKey(model.StateAvailable),
		services.StateKey(model.StateInactive),
	}, keys)

	require.Equal(t, 1, cache.SetCallCount(), "only the lookup before the write populates")
	_, key, _ := cache.SetArgsForCall(0)
	require.Equal(t, services.DeviceKey(device.ID), key)
}

func TestDeviceRegistry_Get_ServesPopulatedEntry(t *testing.T) {
	t.Parallel()

	registry, store, cache := newRegistryWithFakeCache(t)
	ctx := context.Background()
	created := mustCreate(t, registry, "Pixel 8", "Google", model.StateInUse)

	_, err := registry.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, cache.SetCallCount())

	_, _, value := cache.SetArgsForCall(0)
	cache.GetReturns(value, true, nil)

	fromCache, err := registry.Get(ctx, created.ID)
	require.NoError(t, err)
	requireSameDevice(t, created, fromCache)
	require.Equal(t, 1, store.FetchByIDCallCount())

	_, key := cache.GetArgsForCall(1)
	require.Equal(t, services.DeviceKey(created.ID), key)
}

func TestDeviceRegistry_Remove_StoreFailureKeepsCache(t *testing.T) {
	t.Parallel()

	registry, store, cache := newRegistryWithFakeCache(t)
	device := mustCreate(t, registry, "a", "b", model.StateInactive)
	store.DeleteReturns(model.ErrDatabaseQuery)

	err := registry.Remove(context.Background(), device.ID)

	require.ErrorIs(t, err, model.ErrDatabaseQuery)
	require.Equal(t, 1, cache.DeleteCallCount(), "only the create evicted")

	_, ok := store.Stored(device.ID)
	require.True(t, ok)
}

func TestDeviceRegistry_LogsCarryRequestIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	registry := services.NewDeviceRegistry(newMemoryStore(), newMapCache(), logger.NewBufferedTestLogger(&buf), noop.NewMetricsClient())

	ctx := context.WithValue(context.Background(), logger.ContextKeyRequestID, "req-42")
	ctx = context.WithValue(ctx, logger.ContextKeyTraceID, "trace-7")

	device, err := registry.Create(ctx, model.NewDevice{Name: "ThinkPad", Brand: "Lenovo"})
	require.NoError(t, err)

	var created map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)

		if entry["message"] == "device created" {
			created = entry
		}
	}

	require.NotNil(t, created, buf.String())
	require.Equal(t, "info", created["level"])
	require.Equal(t, "device_registry", created["component"])
	require.Equal(t, "req-42", created["request_id"])
	require.Equal(t, "trace-7", created["trace_header_id"])
	require.Equal(t, device.ID.String(), created["device_id"])
}

func TestDeviceRegistry_MovedDeviceLeavesOldBuckets(t *testing.T) {
	t.Parallel()

	registry, _, _ := newRegistry(t)
	ctx := context.Background()
	device := mustCreate(t, registry, "Galaxy S24", "Samsung", model.StateAvailable)

	byBrand, err := registry.ListByBrand(ctx, "Samsung")
	require.NoError(t, err)
	require.Len(t, byBrand, 1)

	byState, err := registry.ListByState(ctx, model.StateAvailable)
	require.NoError(t, err)
	require.Len(t, byState, 1)

	_, err = registry.Update(ctx, device.ID, model.DevicePatch{Brand: ptr("Google"), State: ptr(model.StateInUse)})
	require.NoError(t, err)

	byBrand, err = registry.ListByBrand(ctx, "Samsung")
	require.NoError(t, err)
	require.Empty(t, byBrand)

	byState, err = registry.ListByState(ctx, model.StateAvailable)
	require.NoError(t, err)
	require.Empty(t, byState)

	byBrand, err = registry.ListByBrand(ctx, "Google")
	require.NoError(t, err)
	require.Len(t, byBrand, 1)

	byState, err = registry.ListByState(ctx, model.StateInUse)
	require.NoError(t, err)
	require.Len(t, byState, 1)

	err = registry.Remove(ctx, device.ID)
	require.ErrorIs(t, err, model.ErrInvalidTransition)

	_, err = registry.Update(ctx, device.ID, model.DevicePatch{State: ptr(model.State("IN_USE"))})
	require.True(t, model.IsValidationError(err), "state values are case sensitive")

	_, err = registry.Update(ctx, device.ID, model.DevicePatch{State: ptr(model.StateInactive)})
	require.NoError(t, err)
	require.NoError(t, registry.Remove(ctx, device.ID))

	_, err = registry.Get(ctx, device.ID)
	require.ErrorIs(t, err, model.ErrDeviceNotFound)
}
