// Package enum decodes and encodes closed enumerations through their label
// tables. Decoding is exact: labels are case-sensitive and are not trimmed.
package enum

import (
	"errors"
	"fmt"

	"github.com/signadot/mxl/debug"
	"github.com/signadot/mxl/label"
)

var (
	ErrUnknownLabel   = errors.New("unknown label")
	ErrUnknownVariant = errors.New("unknown variant")
)

// UnknownLabelError reports a token which is not a label of the set.
type UnknownLabelError struct {
	Set string
	Raw string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("%s: unknown label %q", e.Set, e.Raw)
}

func (e *UnknownLabelError) Unwrap() error {
	return ErrUnknownLabel
}

// Decode maps raw to the variant whose label is exactly raw.
func Decode[V comparable](t *label.Table[V], raw string) (V, error) {
	v, ok := t.Lookup(raw)
	if debug.Decode() {
		debug.Logf("enum %s %s found=%t", t.Name(), debug.Raw(raw), ok)
	}
	if !ok {
		var zero V
		return zero, &UnknownLabelError{Set: t.Name(), Raw: raw}
	}
	return v, nil
}

// Encode returns the label of v. It only fails for a value outside the
// declared variants, e.g. a converted integer.
func Encode[V comparable](t *label.Table[V], v V) (string, error) {
	s, ok := t.Label(v)
	if !ok {
		return "", fmt.Errorf("%w: %s %v", ErrUnknownVariant, t.Name(), v)
	}
	return s, nil
}

// String is Encode for fmt.Stringer implementations.
func String[V comparable](t *label.Table[V], v V) string {
	s, ok := t.Label(v)
	if !ok {
		return fmt.Sprintf("<invalid %s %v>", t.Name(), v)
	}
	return s
}

func MarshalText[V comparable](t *label.Table[V], v V) ([]byte, error) {
	s, err := Encode(t, v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText decodes b into dst, leaving dst untouched on error.
func UnmarshalText[V comparable](t *label.Table[V], dst *V, b []byte) error {
	v, err := Decode(t, string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
