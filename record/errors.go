package record

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnknownField         = errors.New("unknown field")
	ErrNotObject            = errors.New("not an object")
	ErrNotScalar            = errors.New("not a scalar")
	ErrUnsupportedType      = errors.New("unsupported type")
	ErrInvalidTarget        = errors.New("invalid decode target")
)

// FieldError represents a field which could not be decoded
type FieldError struct {
	Path string // Field path (e.g., "$.attributes.key.fifths")
	Raw  string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// MissingFieldError represents a required field without a token
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrMissingRequiredField)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// Errors returns the individual failures held by an error returned from
// Decode.
func Errors(err error) []error {
	return multierr.Errors(err)
}
