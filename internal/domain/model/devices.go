package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxFieldLength = 255

type DeviceID struct {
	uuid.UUID
}

func NewDeviceID() DeviceID {
	return DeviceID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseDeviceID(s string) (DeviceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return DeviceID{}, fmt.Errorf("%w: %w", ErrInvalidDeviceID, err)
	}

	return DeviceID{UUID: id}, nil
}

func (d DeviceID) String() string {
	return d.UUID.String()
}

func (d DeviceID) IsZero() bool {
	return d.UUID == uuid.Nil
}

type (
	Device struct {
		ID        DeviceID
		Name      string
		Brand     string
		State     State
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// NewDevice is the creation input. An empty State means StateAvailable.
	NewDevice struct {
		Name  string
		Brand string
		State State
	}

	// DeviceReplacement carries every mutable field of a full replace.
	DeviceReplacement struct {
		Name  string
		Brand string
		State State
	}
)

// Build assigns identity and timestamps to a validated creation input.
func (n NewDevice) Build(now time.Time) *Device {
	state := n.State
	if state == "" {
		state = StateAvailable
	}

	return &Device{
		ID:        NewDeviceID(),
		Name:      n.Name,
		Brand:     n.Brand,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (n NewDevice) Validate() error {
	errs := NewValidationErrors()

	validateText(errs, "name", n.Name)
	validateText(errs, "brand", n.Brand)

	if n.State != "" && !n.State.IsValid() {
		errs.Add("state", fmt.Sprintf("state must be one of %s", stateNames()), ValidationCodeInvalid)
	}

	return errs.OrNil()
}

func (r DeviceReplacement) Validate() error {
	errs := NewValidationErrors()

	validateText(errs, "name", r.Name)
	validateText(errs, "brand", r.Brand)

	switch {
	case r.State == "":
		errs.Add("state", "state is required", ValidationCodeRequired)
	case !r.State.IsValid():
		errs.Add("state", fmt.Sprintf("state must be one of %s", stateNames()), ValidationCodeInvalid)
	}

	return errs.OrNil()
}

// AsPatch expresses the replacement as a patch that sets every field.
func (r DeviceReplacement) AsPatch() DevicePatch {
	return DevicePatch{
		Name:  &r.Name,
		Brand: &r.Brand,
		State: &r.State,
	}
}

func (d *Device) CanUpdateNameAndBrand() bool {
	return !d.State.Locked()
}

func (d *Device) CanDelete() bool {
	return !d.State.Locked()
}

// Clone returns a copy that shares nothing with d.
func (d *Device) Clone() *Device {
	clone := *d

	return &clone
}

func validateText(errs *ValidationErrors, field, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		errs.Add(field, field+" is required", ValidationCodeRequired)
	case utf8.RuneCountInString(value) > MaxFieldLength:
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, MaxFieldLength), ValidationCodeTooLong)
	}
}
