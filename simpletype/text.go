package simpletype

import (
	"strconv"
	"strings"
	"time"

	"github.com/signadot/mxl/constraint"
)

// Color is an RGB triple or an ARGB tuple in upper case hexadecimal, such as
// "#800080" or "#40800080".
type Color string

var colorPattern = describe(constraint.MustPattern("color", constraint.PatternText,
	`#[0-9A-F]{6}([0-9A-F]{2})?`))

func (c Color) MarshalText() ([]byte, error) {
	return marshalText(colorPattern, c)
}

func (c *Color) UnmarshalText(b []byte) error {
	return unmarshalText(colorPattern, c, b)
}

// CommaSeparatedText is a list of text items such as a font family list.
type CommaSeparatedText string

var commaSeparatedTextPattern = describe(constraint.MustPattern("comma-separated-text", constraint.PatternText,
	`[^,]+(, ?[^,]+)*`))

func (c CommaSeparatedText) MarshalText() ([]byte, error) {
	return marshalText(commaSeparatedTextPattern, c)
}

func (c *CommaSeparatedText) UnmarshalText(b []byte) error {
	return unmarshalText(commaSeparatedTextPattern, c, b)
}

// Items splits c at its commas, dropping the optional space after each.
func (c CommaSeparatedText) Items() []string {
	if c == "" {
		return nil
	}
	items := strings.Split(string(c), ",")
	for i := 1; i < len(items); i++ {
		items[i] = strings.TrimPrefix(items[i], " ")
	}
	return items
}

// EndingNumber is a list of positive integers without leading zeros, or
// zero or more spaces when an ending exists but its number is unknown.
type EndingNumber string

var endingNumberPattern = describe(constraint.MustPattern("ending-number", constraint.PatternText,
	`([ ]*)|([1-9][0-9]*(, ?[1-9][0-9]*)*)`))

func (e EndingNumber) MarshalText() ([]byte, error) {
	return marshalText(endingNumberPattern, e)
}

func (e *EndingNumber) UnmarshalText(b []byte) error {
	return unmarshalText(endingNumberPattern, e, b)
}

// Numbers returns the ending numbers, or nil for the spaces form.
func (e EndingNumber) Numbers() ([]int, error) {
	if strings.TrimLeft(string(e), " ") == "" {
		return nil, nil
	}
	if err := endingNumberPattern.Check(string(e)); err != nil {
		return nil, err
	}
	return atois(CommaSeparatedText(e).Items())
}

// TimeOnly lists the times through a repeated section an element applies to,
// in ascending order.
type TimeOnly string

var timeOnlyList = describe(constraint.NewList("time-only",
	constraint.MustPattern("time-only item", constraint.PatternText, `[1-9][0-9]*`), true))

func (t TimeOnly) MarshalText() ([]byte, error) {
	return marshalText(timeOnlyList, t)
}

func (t *TimeOnly) UnmarshalText(b []byte) error {
	return unmarshalText(timeOnlyList, t, b)
}

func (t TimeOnly) Times() ([]int, error) {
	items, err := timeOnlyList.Items(string(t))
	if err != nil {
		return nil, err
	}
	return atois(items)
}

// YYYYMMDD is a calendar date without a time zone.
type YYYYMMDD string

var yyyymmddDate = describe(constraint.Date{TypeName: "yyyy-mm-dd"})

func (d YYYYMMDD) MarshalText() ([]byte, error) {
	return marshalText(yyyymmddDate, d)
}

func (d *YYYYMMDD) UnmarshalText(b []byte) error {
	return unmarshalText(yyyymmddDate, d, b)
}

// Time returns the date at midnight UTC.
func (d YYYYMMDD) Time() (time.Time, error) {
	return yyyymmddDate.Time(string(d))
}

func atois(items []string) ([]int, error) {
	res := make([]int, len(items))
	for i, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

// The following are open text types: applications may define their own
// values beyond the ones MusicXML lists.
type (
	// DistanceType is e.g. "beam" or "hyphen".
	DistanceType string
	// LineWidthType is e.g. "beam", "light barline" or "tuplet bracket".
	LineWidthType string
	// Mode is e.g. "major", "minor" or "dorian".
	Mode string
)

var (
	_ = describe(constraint.Text{TypeName: "distance-type"})
	_ = describe(constraint.Text{TypeName: "line-width-type"})
	_ = describe(constraint.Text{TypeName: "mode"})
)
