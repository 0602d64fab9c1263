// Package constraint validates raw scalar tokens against the rules of a
// restricted simple type: anchored patterns, inclusive numeric ranges,
// keyword sets, separated lists and calendar dates.
//
// Descriptors are immutable once built and every check is a pure function of
// its input, so descriptors are shared freely between goroutines.
package constraint

import (
	"fmt"

	"github.com/signadot/mxl/debug"
)

// Kind identifies the shape of a scalar type.
type Kind int

const (
	FreeText Kind = iota
	PatternText
	BoundedInteger
	BoundedDecimal
	DateString
	CommaList
	Keyword
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		FreeText:       "free-text",
		PatternText:    "pattern-text",
		BoundedInteger: "bounded-integer",
		BoundedDecimal: "bounded-decimal",
		DateString:     "date-string",
		CommaList:      "comma-list",
		Keyword:        "keyword",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

// Descriptor is a constraint attached to one named scalar type.
type Descriptor interface {
	Kind() Kind
	// Name is the name of the scalar type, e.g. "color".
	Name() string
	// Check accepts raw or returns a *ViolationError or
	// *MalformedNumberError.
	Check(raw string) error
}

// Validate checks raw against d.
func Validate(d Descriptor, raw string) error {
	err := d.Check(raw)
	trace(d.Name(), raw, err)
	return err
}

func trace(name, raw string, err error) {
	if !debug.Decode() {
		return
	}
	if err != nil {
		debug.Logf("constraint %s %s: %v", name, debug.Raw(raw), err)
		return
	}
	debug.Logf("constraint %s %s: ok", name, debug.Raw(raw))
}

// Text is the descriptor of unrestricted text.
type Text struct {
	TypeName string
}

func (t Text) Kind() Kind             { return FreeText }
func (t Text) Name() string           { return t.TypeName }
func (t Text) Check(raw string) error { return nil }
