//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

//counterfeiter:generate -o ../mocks/device_registry.go . DeviceRegistry

// DeviceRegistry is the business surface over devices.
type DeviceRegistry interface {
	Create(ctx context.Context, input model.NewDevice) (*model.Device, error)
	Get(ctx context.Context, id model.DeviceID) (*model.Device, error)
	List(ctx context.Context) ([]*model.Device, error)
	ListByBrand(ctx context.Context, brand string) ([]*model.Device, error)
	ListByState(ctx context.Context, state model.State) ([]*model.Device, error)
	Update(ctx context.Context, id model.DeviceID, patch model.DevicePatch) (*model.Device, error)
	Replace(ctx context.Context, id model.DeviceID, replacement model.DeviceReplacement) (*model.Device, error)
	Remove(ctx context.Context, id model.DeviceID) error
}
