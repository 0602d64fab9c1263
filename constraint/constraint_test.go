package constraint

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var color = MustPattern("color", PatternText, `#[0-9A-F]{6}([0-9A-F][0-9A-F])?`)

func TestPatternAnchored(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"#800080", true},
		{"#40800080", true},
		{"#80080", false},
		{"#8000807", false},
		{"x#800080", false},
		{"#800080 ", false},
		{"#ff0000", false},
		{"", false},
	}
	for _, tc := range tests {
		got, err := Match(color, tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("%q: %v", tc.in, err)
			} else if got != tc.in {
				t.Errorf("got %q want %q", got, tc.in)
			}
			continue
		}
		if !errors.Is(err, ErrViolation) {
			t.Errorf("%q: got %v want violation", tc.in, err)
		}
	}
}

func TestTrivialPattern(t *testing.T) {
	_, err := NewPattern("yyyy-mm-dd", DateString, `[^:Z]*`)
	if !errors.Is(err, ErrTrivialPattern) {
		t.Errorf("got %v want %v", err, ErrTrivialPattern)
	}
	if _, err := NewPattern("ending-number", PatternText, `([ ]*)|([1-9][0-9]*(, ?[1-9][0-9]*)*)`); err != nil {
		t.Errorf("ending-number: %v", err)
	}
	if _, err := NewPattern("bad", PatternText, `(`); err == nil {
		t.Errorf("expected compile error")
	}
}

func TestIntRange(t *testing.T) {
	midi16 := Ints("midi-16", 1, 16)
	tests := []struct {
		r    IntRange
		in   string
		want int64
		err  error
	}{
		{midi16, "1", 1, nil},
		{midi16, "16", 16, nil},
		{midi16, "+7", 7, nil},
		{midi16, "0", 0, ErrViolation},
		{midi16, "17", 0, ErrViolation},
		{midi16, "seven", 0, ErrMalformedNumber},
		{midi16, " 7", 0, ErrMalformedNumber},
		{midi16, "", 0, ErrMalformedNumber},
		{AtLeast("positive-integer", 1), "99999999999999999999", 0, ErrViolation},
		{AnyInt("fifths"), "-7", -7, nil},
	}
	for _, tc := range tests {
		got, err := ParseInt(tc.r, tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s %q: got %v want %v", tc.r.TypeName, tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %q: %v", tc.r.TypeName, tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("got %d want %d", got, tc.want)
		}
	}
}

func TestDecimalRange(t *testing.T) {
	percent := Decimals("percent", 0, 100)
	tests := []struct {
		r    DecimalRange
		in   string
		want float64
		err  error
	}{
		{percent, "0", 0, nil},
		{percent, "100", 100, nil},
		{percent, "37.5", 37.5, nil},
		{percent, ".5", 0.5, nil},
		{percent, "5.", 5, nil},
		{percent, "100.0001", 0, ErrViolation},
		{percent, "-1", 0, ErrViolation},
		{percent, "1e2", 0, ErrMalformedNumber},
		{percent, "NaN", 0, ErrMalformedNumber},
		{percent, ".", 0, ErrMalformedNumber},
		{Positive("positive-divisions"), "0", 0, ErrViolation},
		{Positive("positive-divisions"), "0.25", 0.25, nil},
		{DecimalAtLeast("non-negative-decimal", 0), "0", 0, nil},
		{Decimals("rotation-degrees", -180, 180), "-180", -180, nil},
		{Decimals("rotation-degrees", -180, 180), "180.5", 0, ErrViolation},
	}
	for _, tc := range tests {
		got, err := ParseDecimal(tc.r, tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s %q: got %v want %v", tc.r.TypeName, tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %q: %v", tc.r.TypeName, tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("got %v want %v", got, tc.want)
		}
	}
}

func TestRule(t *testing.T) {
	tests := []struct {
		d    interface{ Rule() string }
		want string
	}{
		{Ints("midi-16", 1, 16), "minInclusive=1 maxInclusive=16"},
		{AtLeast("positive-integer", 1), "minInclusive=1"},
		{AnyInt("fifths"), "integer"},
		{Positive("positive-divisions"), "minExclusive=0"},
		{Decimals("percent", 0, 100), "minInclusive=0 maxInclusive=100"},
		{AnyDecimal("tenths"), "decimal"},
	}
	for _, tc := range tests {
		if got := tc.d.Rule(); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}

func TestViolatedBound(t *testing.T) {
	tests := []struct {
		d    Descriptor
		in   string
		want string
	}{
		{Ints("midi-16", 1, 16), "0", "minInclusive=1"},
		{Ints("midi-16", 1, 16), "17", "maxInclusive=16"},
		{Ints("midi-16", 1, 16), "99999999999999999999", "maxInclusive=16"},
		{AtLeast("staff-number", 1), "99999999999999999999", "maxInclusive=9223372036854775807"},
		{AnyInt("fifths"), "-99999999999999999999", "minInclusive=-9223372036854775808"},
		{Decimals("percent", 0, 100), "100.0001", "maxInclusive=100"},
		{Decimals("percent", 0, 100), "-1", "minInclusive=0"},
		{Positive("positive-decimal"), "0", "minExclusive=0"},
		{AnyDecimal("tenths"), "1" + strings.Repeat("0", 400), "maxInclusive=1.7976931348623157e+308"},
		{AnyDecimal("tenths"), "-1" + strings.Repeat("0", 400), "minInclusive=-1.7976931348623157e+308"},
	}
	for _, tc := range tests {
		err := tc.d.Check(tc.in)
		var v *ViolationError
		if !errors.As(err, &v) {
			t.Errorf("%s %.20q: got %v want violation", tc.d.Name(), tc.in, err)
			continue
		}
		if v.Rule != tc.want {
			t.Errorf("%s %.20q: got %q want %q", tc.d.Name(), tc.in, v.Rule, tc.want)
		}
	}
}

func TestViolationMessage(t *testing.T) {
	err := Validate(Ints("midi-16", 1, 16), "17")
	want := `midi-16 "17": bounded-integer violates maxInclusive=16`
	if err == nil || err.Error() != want {
		t.Errorf("got %v want %q", err, want)
	}
	var v *ViolationError
	if !errors.As(err, &v) || v.Kind != BoundedInteger {
		t.Errorf("got %#v", err)
	}
}

func TestList(t *testing.T) {
	timeOnly := NewList("time-only", MustPattern("time-only item", PatternText, `[1-9][0-9]*`), true)
	tests := []struct {
		in   string
		want []string
	}{
		{"1", []string{"1"}},
		{"1, 2,3", []string{"1", "2", "3"}},
		{"2, 10", []string{"2", "10"}},
		{"", nil},
		{"0", nil},
		{"1,,2", nil},
		{"1,  2", nil},
		{"3, 2", nil},
		{"1, 1", nil},
		{"1,", nil},
	}
	for _, tc := range tests {
		got, err := timeOnly.Items(tc.in)
		if tc.want == nil {
			if !errors.Is(err, ErrViolation) {
				t.Errorf("%q: got %v want violation", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
			}
		}
	}
}

func TestDate(t *testing.T) {
	d := Date{TypeName: "yyyy-mm-dd"}
	good := map[string]time.Time{
		"2024-02-29": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		"1999-12-31": time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		"0001-01-01": time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range good {
		got, err := d.Time(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("got %v want %v", got, want)
		}
	}
	for _, in := range []string{"2023-02-29", "2024-04-31", "2024-13-01", "2024-1-01", "24-01-01", "2024-01-01Z", "2024-01-01T00:00:00", ""} {
		if err := Validate(d, in); !errors.Is(err, ErrViolation) {
			t.Errorf("%q: got %v want violation", in, err)
		}
	}
}

func TestSet(t *testing.T) {
	normal := NewSet("normal", "normal")
	if err := Validate(normal, "normal"); err != nil {
		t.Error(err)
	}
	for _, in := range []string{"Normal", " normal", ""} {
		if err := Validate(normal, in); !errors.Is(err, ErrViolation) {
			t.Errorf("%q: got %v want violation", in, err)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := PatternText.String(); got != "pattern-text" {
		t.Errorf("got %q want %q", got, "pattern-text")
	}
	if got := Kind(99).String(); got != "<unknown kind 99>" {
		t.Errorf("got %q", got)
	}
}
