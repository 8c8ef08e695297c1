package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDeviceNotFound = errors.New("device not found")

	// ErrInvalidTransition is the parent of every lifecycle guard violation.
	ErrInvalidTransition       = errors.New("invalid device transition")
	ErrCannotUpdateInUseDevice = fmt.Errorf("%w: cannot update name or brand of in-use device", ErrInvalidTransition)
	ErrCannotDeleteInUseDevice = fmt.Errorf("%w: cannot delete in-use device", ErrInvalidTransition)

	ErrInvalidDeviceID    = errors.New("invalid device ID")
	ErrInvalidState       = errors.New("invalid device state")
	ErrDuplicateDevice    = errors.New("device already exists")
	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")

	// ErrCacheInvalidation marks a mutation that reached the store but whose
	// cache entries could not be evicted.
	ErrCacheInvalidation = errors.New("cache invalidation failed")
)

const (
	ValidationCodeRequired = "REQUIRED"
	ValidationCodeTooLong  = "TOO_LONG"
	ValidationCodeInvalid  = "INVALID_VALUE"
)

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

type ValidationErrors struct {
	Errors []ValidationError
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		messages = append(messages, e.Message)
	}

	return strings.Join(messages, "; ")
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// OrNil returns v as an error only when it holds entries.
func (v *ValidationErrors) OrNil() error {
	if !v.HasErrors() {
		return nil
	}

	return v
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}

// IsValidationError reports whether err carries *ValidationErrors.
func IsValidationError(err error) bool {
	var target *ValidationErrors

	return errors.As(err, &target)
}
