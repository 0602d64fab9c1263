package constraint

import (
	"errors"
	"fmt"
)

var (
	ErrViolation       = errors.New("constraint violation")
	ErrMalformedNumber = errors.New("malformed numeric literal")
	ErrTrivialPattern  = errors.New("pattern accepts any input")
)

// ViolationError reports a present value which fails its pattern, range or
// set rule.
type ViolationError struct {
	Kind Kind
	Type string
	Raw  string
	Rule string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s %q: %s violates %s", e.Type, e.Raw, e.Kind, e.Rule)
}

func (e *ViolationError) Unwrap() error {
	return ErrViolation
}

// MalformedNumberError reports text which is not a numeric literal at all,
// before any range check took place.
type MalformedNumberError struct {
	Type string
	Raw  string
	Want string
	Err  error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%s %q: not a %s literal", e.Type, e.Raw, e.Want)
}

func (e *MalformedNumberError) Is(target error) bool {
	return target == ErrMalformedNumber
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}
