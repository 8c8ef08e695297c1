package services

import (
	"slices"

	"github.com/architeacher/device-registry/internal/domain/model"
)

const (
	keyPrefix      = "device:"
	AllDevicesKey  = keyPrefix + "all"
	brandKeyPrefix = keyPrefix + "brand:"
	stateKeyPrefix = keyPrefix + "state:"
)

// Bucket labels keep metric cardinality bounded.
const (
	bucketDevice = "device"
	bucketAll    = "all"
	bucketBrand  = "brand"
	bucketState  = "state"
)

func DeviceKey(id model.DeviceID) string {
	return keyPrefix + id.String()
}

func BrandKey(brand string) string {
	return brandKeyPrefix + brand
}

func StateKey(state model.State) string {
	return stateKeyPrefix + state.String()
}

// collectionKeys lists the collection entries a device belongs to.
func collectionKeys(device *model.Device) []string {
	return []string{AllDevicesKey, BrandKey(device.Brand), StateKey(device.State)}
}

// mutationKeys lists every entry that may hold a stale view after a device
// changed from previous to current. previous may be nil.
func mutationKeys(current, previous *model.Device) []string {
	keys := append([]string{DeviceKey(current.ID)}, collectionKeys(current)...)

	if previous != nil {
		keys = append(keys, BrandKey(previous.Brand), StateKey(previous.State))
	}

	slices.Sort(keys)

	return slices.Compact(keys)
}
