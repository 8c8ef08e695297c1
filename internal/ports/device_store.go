//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

//counterfeiter:generate -o ../mocks/device_store.go . DeviceStore

type (
	Creator interface {
		// Create persists a new device, assigning its ID and timestamps.
		Create(ctx context.Context, input model.NewDevice) (*model.Device, error)
	}

	Fetcher interface {
		// FetchByID returns model.ErrDeviceNotFound when no device has the ID.
		FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error)
	}

	Finder interface {
		// FindAll returns every device, newest first.
		FindAll(ctx context.Context) ([]*model.Device, error)

		// FindWhere returns the devices satisfying spec, newest first.
		FindWhere(ctx context.Context, spec model.Specification) ([]*model.Device, error)
	}

	Saver interface {
		// Save upserts the device and returns the stored record.
		Save(ctx context.Context, device *model.Device) (*model.Device, error)
	}

	Deleter interface {
		Delete(ctx context.Context, device *model.Device) error
	}

	// DeviceStore is the durable source of truth for devices.
	DeviceStore interface {
		Creator
		Fetcher
		Finder
		Saver
		Deleter
	}
)
