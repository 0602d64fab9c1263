package constraint

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Numeric literals follow the XML Schema lexical forms. Surrounding
// whitespace is not part of either form.
var (
	intLexical     = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalLexical = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
)

// IntRange bounds an integer type inclusively on both ends.
type IntRange struct {
	TypeName string
	Min, Max int64
}

func Ints(name string, min, max int64) IntRange {
	return IntRange{TypeName: name, Min: min, Max: max}
}

// AtLeast is a range with only a lower bound.
func AtLeast(name string, min int64) IntRange {
	return IntRange{TypeName: name, Min: min, Max: math.MaxInt64}
}

func AnyInt(name string) IntRange {
	return IntRange{TypeName: name, Min: math.MinInt64, Max: math.MaxInt64}
}

func (r IntRange) Kind() Kind   { return BoundedInteger }
func (r IntRange) Name() string { return r.TypeName }

func (r IntRange) Check(raw string) error {
	_, err := r.parse(raw)
	return err
}

// Rule describes the bounds with XML Schema facet names.
func (r IntRange) Rule() string {
	switch {
	case r.Min == math.MinInt64 && r.Max == math.MaxInt64:
		return "integer"
	case r.Max == math.MaxInt64:
		return fmt.Sprintf("minInclusive=%d", r.Min)
	case r.Min == math.MinInt64:
		return fmt.Sprintf("maxInclusive=%d", r.Max)
	}
	return fmt.Sprintf("minInclusive=%d maxInclusive=%d", r.Min, r.Max)
}

func (r IntRange) parse(raw string) (int64, error) {
	if !intLexical.MatchString(raw) {
		return 0, &MalformedNumberError{Type: r.TypeName, Raw: raw, Want: "integer"}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, &MalformedNumberError{Type: r.TypeName, Raw: raw, Want: "integer", Err: err}
		}
		// v is clamped to the int64 limit on the side of the overflow
	}
	switch {
	case v < r.Min || (err != nil && v == math.MinInt64):
		return 0, r.violation(raw, fmt.Sprintf("minInclusive=%d", r.Min))
	case v > r.Max || err != nil:
		return 0, r.violation(raw, fmt.Sprintf("maxInclusive=%d", r.Max))
	}
	return v, nil
}

func (r IntRange) violation(raw, rule string) error {
	return &ViolationError{Kind: BoundedInteger, Type: r.TypeName, Raw: raw, Rule: rule}
}

// ParseInt reads an integer literal and checks it against r.
func ParseInt(r IntRange, raw string) (int64, error) {
	v, err := r.parse(raw)
	trace(r.TypeName, raw, err)
	return v, err
}

// DecimalRange bounds a decimal type. Infinite bounds mean unbounded; the
// lower bound is exclusive when MinExclusive is set.
type DecimalRange struct {
	TypeName     string
	Min, Max     float64
	MinExclusive bool
}

func Decimals(name string, min, max float64) DecimalRange {
	return DecimalRange{TypeName: name, Min: min, Max: max}
}

func DecimalAtLeast(name string, min float64) DecimalRange {
	return DecimalRange{TypeName: name, Min: min, Max: math.Inf(1)}
}

func AnyDecimal(name string) DecimalRange {
	return DecimalRange{TypeName: name, Min: math.Inf(-1), Max: math.Inf(1)}
}

// Positive accepts decimals strictly greater than zero.
func Positive(name string) DecimalRange {
	return DecimalRange{TypeName: name, Min: 0, Max: math.Inf(1), MinExclusive: true}
}

func (r DecimalRange) Kind() Kind   { return BoundedDecimal }
func (r DecimalRange) Name() string { return r.TypeName }

func (r DecimalRange) Check(raw string) error {
	_, err := r.parse(raw)
	return err
}

func (r DecimalRange) Rule() string {
	var lo, hi string
	if !math.IsInf(r.Min, -1) {
		facet := "minInclusive"
		if r.MinExclusive {
			facet = "minExclusive"
		}
		lo = facet + "=" + formatDecimal(r.Min)
	}
	if !math.IsInf(r.Max, 1) {
		hi = "maxInclusive=" + formatDecimal(r.Max)
	}
	switch {
	case lo == "" && hi == "":
		return "decimal"
	case hi == "":
		return lo
	case lo == "":
		return hi
	}
	return lo + " " + hi
}

func (r DecimalRange) parse(raw string) (float64, error) {
	if !decimalLexical.MatchString(raw) {
		return 0, &MalformedNumberError{Type: r.TypeName, Raw: raw, Want: "decimal"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &MalformedNumberError{Type: r.TypeName, Raw: raw, Want: "decimal", Err: err}
	}
	switch {
	case v < r.Min || (r.MinExclusive && v == r.Min) || math.IsInf(v, -1):
		return 0, r.violation(raw, r.minRule())
	case v > r.Max || math.IsInf(v, 1):
		return 0, r.violation(raw, r.maxRule())
	}
	return v, nil
}

func (r DecimalRange) violation(raw, rule string) error {
	return &ViolationError{Kind: BoundedDecimal, Type: r.TypeName, Raw: raw, Rule: rule}
}

// minRule and maxRule name one bound; an unbounded side is limited by
// float64.
func (r DecimalRange) minRule() string {
	facet := "minInclusive="
	if r.MinExclusive {
		facet = "minExclusive="
	}
	if math.IsInf(r.Min, -1) {
		return facet + strconv.FormatFloat(-math.MaxFloat64, 'g', -1, 64)
	}
	return facet + formatDecimal(r.Min)
}

func (r DecimalRange) maxRule() string {
	if math.IsInf(r.Max, 1) {
		return "maxInclusive=" + strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64)
	}
	return "maxInclusive=" + formatDecimal(r.Max)
}

// ParseDecimal reads a decimal literal and checks it against r.
func ParseDecimal(r DecimalRange, raw string) (float64, error) {
	v, err := r.parse(raw)
	trace(r.TypeName, raw, err)
	return v, err
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
