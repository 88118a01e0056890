package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrValidationFailed indicates that a field value failed its format or length rule
	ErrValidationFailed = errors.New("validation failed")

	// ErrImmutable indicates an attempt to reassign a construct-only field
	ErrImmutable = errors.New("field is immutable")

	// ErrInvalidType indicates that an association was given something other than
	// an entity of the expected kind
	ErrInvalidType = errors.New("invalid type")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ImmutableError is returned when a write-once field is written after construction.
type ImmutableError struct {
	Field string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("field '%s' is immutable and cannot be changed", e.Field)
}

// Is reports whether target is ErrImmutable.
func (e *ImmutableError) Is(target error) bool {
	return target == ErrImmutable
}

// TypeError is returned when an article association does not point at a
// live entity of the expected kind.
type TypeError struct {
	Field string
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("field '%s' must be an instance of %s", e.Field, e.Want)
}

// Is reports whether target is ErrInvalidType.
func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}
