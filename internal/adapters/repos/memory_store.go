package repos

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/architeacher/device-registry/internal/domain/model"
)

// MemoryStore keeps devices in process memory. It backs local runs and
// tests that need a real store without PostgreSQL.
type MemoryStore struct {
	mu      sync.RWMutex
	devices map[model.DeviceID]*model.Device
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		devices: make(map[model.DeviceID]*model.Device),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *MemoryStore) Create(ctx context.Context, input model.NewDevice) (*model.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	device := input.Build(s.now())
	if _, ok := s.devices[device.ID]; ok {
		return nil, model.ErrDuplicateDevice
	}

	s.devices[device.ID] = device

	return device.Clone(), nil
}

func (s *MemoryStore) FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	device, ok := s.devices[id]
	if !ok {
		return nil, model.ErrDeviceNotFound
	}

	return device.Clone(), nil
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]*model.Device, error) {
	return s.FindWhere(ctx, model.Must())
}

func (s *MemoryStore) FindWhere(ctx context.Context, spec model.Specification) ([]*model.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Device, 0, len(s.devices))

	for _, device := range s.devices {
		if spec.IsSatisfiedBy(device) {
			result = append(result, device.Clone())
		}
	}

	slices.SortFunc(result, func(a, b *model.Device) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(b.ID.String(), a.ID.String())
	})

	return result, nil
}

func (s *MemoryStore) Save(ctx context.Context, device *model.Device) (*model.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := device.Clone()
	saved.UpdatedAt = s.now()

	if existing, ok := s.devices[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	}

	s.devices[saved.ID] = saved

	return saved.Clone(), nil
}

func (s *MemoryStore) Delete(ctx context.Context, device *model.Device) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.devices[device.ID]; !ok {
		return model.ErrDeviceNotFound
	}

	delete(s.devices, device.ID)

	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
