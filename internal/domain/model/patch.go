package model

import "fmt"

// DevicePatch is a partial update. A nil field is absent from the request,
// which is distinct from a field set to its current value.
type DevicePatch struct {
	Name  *string
	Brand *string
	State *State
}

// TouchesIdentity reports whether the patch carries name or brand.
func (p DevicePatch) TouchesIdentity() bool {
	return p.Name != nil || p.Brand != nil
}

func (p DevicePatch) IsEmpty() bool {
	return p.Name == nil && p.Brand == nil && p.State == nil
}

func (p DevicePatch) Validate() error {
	errs := NewValidationErrors()

	if p.Name != nil {
		validateText(errs, "name", *p.Name)
	}

	if p.Brand != nil {
		validateText(errs, "brand", *p.Brand)
	}

	if p.State != nil && !p.State.IsValid() {
		errs.Add("state", fmt.Sprintf("state must be one of %s", stateNames()), ValidationCodeInvalid)
	}

	return errs.OrNil()
}

// CheckTransition applies the in-use freeze: while a device is in use the
// patch may only carry state.
func (p DevicePatch) CheckTransition(current *Device) error {
	if !current.CanUpdateNameAndBrand() && p.TouchesIdentity() {
		return ErrCannotUpdateInUseDevice
	}

	return nil
}

// Merge returns a copy of current with every present patch field applied.
// ID and CreatedAt are always carried over from current.
func Merge(current *Device, patch DevicePatch) *Device {
	merged := current.Clone()

	if patch.Name != nil {
		merged.Name = *patch.Name
	}

	if patch.Brand != nil {
		merged.Brand = *patch.Brand
	}

	if patch.State != nil {
		merged.State = *patch.State
	}

	return merged
}
