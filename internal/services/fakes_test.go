package services_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/mocks"
)

type (
	// memoryStore is a counterfeiter store whose stubs read and write a map,
	// so reads observe earlier writes while call counts stay inspectable.
	// Setting XReturns on the embedded fake replaces the map behaviour.
	memoryStore struct {
		*mocks.FakeDeviceStore

		mu      sync.Mutex
		devices map[model.DeviceID]*model.Device
		now     time.Time
	}

	// mapCache is a cache backed by a map with injectable failures.
	mapCache struct {
		mu        sync.Mutex
		entries   map[string][]byte
		getErr    error
		setErr    error
		deleteErr error
		deleted   []string
		sets      int
	}
)

func newMemoryStore() *memoryStore {
	store := &memoryStore{
		FakeDeviceStore: &mocks.FakeDeviceStore{},
		devices:         make(map[model.DeviceID]*model.Device),
		now:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	store.CreateStub = store.create
	store.FetchByIDStub = store.fetchByID
	store.FindAllStub = func(context.Context) ([]*model.Device, error) {
		return store.matching(model.Must()), nil
	}
	store.FindWhereStub = func(_ context.Context, spec model.Specification) ([]*model.Device, error) {
		return store.matching(spec), nil
	}
	store.SaveStub = store.save
	store.DeleteStub = store.delete

	return store
}

func (s *memoryStore) tick() time.Time {
	s.now = s.now.Add(time.Minute)

	return s.now
}

func (s *memoryStore) Stored(id model.DeviceID) (*model.Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[id]
	if !ok {
		return nil, false
	}

	return device.Clone(), true
}

func (s *memoryStore) create(_ context.Context, input model.NewDevice) (*model.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device := input.Build(s.tick())
	s.devices[device.ID] = device

	return device.Clone(), nil
}

func (s *memoryStore) fetchByID(_ context.Context, id model.DeviceID) (*model.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[id]
	if !ok {
		return nil, model.ErrDeviceNotFound
	}

	return device.Clone(), nil
}

func (s *memoryStore) save(_ context.Context, device *model.Device) (*model.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := device.Clone()
	saved.UpdatedAt = s.tick()
	s.devices[saved.ID] = saved

	return saved.Clone(), nil
}

func (s *memoryStore) delete(_ context.Context, device *model.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.devices, device.ID)

	return nil
}

func (s *memoryStore) matching(spec model.Specification) []*model.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*model.Device, 0, len(s.devices))

	for _, device := range s.devices {
		if spec.IsSatisfiedBy(device) {
			result = append(result, device.Clone())
		}
	}

	slices.SortFunc(result, func(a, b *model.Device) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return nil, false, c.getErr
	}

	value, ok := c.entries[key]

	return value, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sets++

	if c.setErr != nil {
		return c.setErr
	}

	c.entries[key] = value

	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deleteErr != nil {
		return c.deleteErr
	}

	for _, key := range keys {
		delete(c.entries, key)
	}

	c.deleted = append(c.deleted, keys...)

	return nil
}

func (c *mapCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]

	return ok
}

func (c *mapCache) Put(key string, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = []byte(value)
}

func (c *mapCache) Deleted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.deleted)
}
