package simpletype

import (
	"slices"
	"strconv"

	"github.com/signadot/mxl/constraint"
)

// descriptors holds the constraint of every restricted scalar type by type
// name. It is only written during package initialisation.
var descriptors = map[string]constraint.Descriptor{}

func describe[D constraint.Descriptor](d D) D {
	if _, ok := descriptors[d.Name()]; ok {
		panic("simpletype: duplicate scalar " + d.Name())
	}
	descriptors[d.Name()] = d
	return d
}

// Descriptor returns the constraint of the scalar type called name, such as
// "midi-16" or "color".
func Descriptor(name string) (constraint.Descriptor, bool) {
	d, ok := descriptors[name]
	return d, ok
}

// Scalars returns the names of all scalar types, sorted.
func Scalars() []string {
	res := make([]string, 0, len(descriptors))
	for k := range descriptors {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func unmarshalInt[T ~int](r constraint.IntRange, dst *T, b []byte) error {
	v, err := constraint.ParseInt(r, string(b))
	if err != nil {
		return err
	}
	*dst = T(v)
	return nil
}

func marshalInt[T ~int](r constraint.IntRange, v T) ([]byte, error) {
	s := strconv.Itoa(int(v))
	if err := r.Check(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func unmarshalDecimal[T ~float64](r constraint.DecimalRange, dst *T, b []byte) error {
	v, err := constraint.ParseDecimal(r, string(b))
	if err != nil {
		return err
	}
	*dst = T(v)
	return nil
}

func marshalDecimal[T ~float64](r constraint.DecimalRange, v T) ([]byte, error) {
	s := formatDecimal(float64(v))
	if err := r.Check(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func unmarshalText[T ~string](d constraint.Descriptor, dst *T, b []byte) error {
	s := string(b)
	if err := constraint.Validate(d, s); err != nil {
		return err
	}
	*dst = T(s)
	return nil
}

func marshalText[T ~string](d constraint.Descriptor, v T) ([]byte, error) {
	if err := d.Check(string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

// formatDecimal never uses an exponent, which the decimal lexical form
// does not allow.
func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
