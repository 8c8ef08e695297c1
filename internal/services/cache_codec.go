package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/architeacher/device-registry/internal/domain/model"
)

// cachedDevice is the JSON document stored under every cache key.
type cachedDevice struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCachedDevice(device *model.Device) cachedDevice {
	return cachedDevice{
		ID:        device.ID.String(),
		Name:      device.Name,
		Brand:     device.Brand,
		State:     device.State.String(),
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

func (c cachedDevice) toDomain() (*model.Device, error) {
	id, err := model.ParseDeviceID(c.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing device ID: %w", err)
	}

	state, err := model.ParseState(c.State)
	if err != nil {
		return nil, fmt.Errorf("parsing device state: %w", err)
	}

	return &model.Device{
		ID:        id,
		Name:      c.Name,
		Brand:     c.Brand,
		State:     state,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func encodeDevice(device *model.Device) ([]byte, error) {
	return json.Marshal(toCachedDevice(device))
}

func decodeDevice(data []byte) (*model.Device, error) {
	var cached cachedDevice
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshalling cached device: %w", err)
	}

	return cached.toDomain()
}

func encodeDevices(devices []*model.Device) ([]byte, error) {
	cached := make([]cachedDevice, len(devices))
	for index, device := range devices {
		cached[index] = toCachedDevice(device)
	}

	return json.Marshal(cached)
}

func decodeDevices(data []byte) ([]*model.Device, error) {
	var cached []cachedDevice
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshalling cached device list: %w", err)
	}

	devices := make([]*model.Device, len(cached))
	for index := range cached {
		device, err := cached[index].toDomain()
		if err != nil {
			return nil, fmt.Errorf("converting device at index %d: %w", index, err)
		}

		devices[index] = device
	}

	return devices, nil
}
