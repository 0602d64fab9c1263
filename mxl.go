// Package mxl decodes MusicXML values and elements into typed Go values.
//
// Element records live in package complextype and simple types in package
// simpletype. The functions here read a document in one of the supported
// wire formats and assemble it into a record:
//
//	var attrs complextype.Attributes
//	if err := mxl.DecodeXML(data, &attrs); err != nil {
//		for _, fe := range record.Errors(err) {
//			...
//		}
//	}
package mxl

import (
	"errors"
	"fmt"

	"github.com/signadot/mxl/complextype"
	"github.com/signadot/mxl/constraint"
	"github.com/signadot/mxl/debug"
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/ir"
	"github.com/signadot/mxl/label"
	"github.com/signadot/mxl/record"
	"github.com/signadot/mxl/simpletype"
	"github.com/signadot/mxl/wire"
)

var (
	ErrUnknownElement = errors.New("unknown element")
	ErrUnknownType    = errors.New("unknown simple type")
)

// Decode assembles the record v points to from node.
func Decode(node *ir.Node, v any, opts ...record.Option) error {
	return record.Decode(node, v, opts...)
}

// DecodeXML decodes the root element of data into v.
func DecodeXML(data []byte, v any, opts ...record.Option) error {
	node, err := wire.FromXML(data)
	if err != nil {
		return err
	}
	return record.Decode(node, v, opts...)
}

// DecodeYAML decodes the first YAML document of data into v.
func DecodeYAML(data []byte, v any, opts ...record.Option) error {
	node, err := wire.FromYAML(data)
	if err != nil {
		return err
	}
	return record.Decode(node, v, opts...)
}

func DecodeTOML(data []byte, v any, opts ...record.Option) error {
	node, err := wire.FromTOML(data)
	if err != nil {
		return err
	}
	return record.Decode(node, v, opts...)
}

// DecodeElement decodes an XML element into the record type registered for
// its tag name and returns a pointer to it, e.g. *complextype.Sound for
// <sound>. On a decoding error the partially filled record is returned with
// the error.
func DecodeElement(data []byte, opts ...record.Option) (any, error) {
	name, node, err := wire.FromXMLElement(data)
	if err != nil {
		return nil, err
	}
	v, ok := complextype.ForElement(name)
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrUnknownElement, name)
	}
	if debug.Record() {
		debug.Logf("element <%s> as %T", name, v)
	}
	return v, record.Decode(node, v, opts...)
}

// Enumeration returns the label set of the named enumeration, such as
// "accidental-value".
func Enumeration(name string) (label.Set, bool) {
	s := label.Lookup(name)
	return s, s != nil
}

// Enumerations returns the names of all enumerations, sorted.
func Enumerations() []string {
	return label.Names()
}

var unions = map[string]func(string) error{
	"number-or-normal": func(raw string) error {
		_, err := simpletype.ParseNumberOrNormal(raw)
		return err
	},
	"positive-integer-or-empty": func(raw string) error {
		_, err := simpletype.ParsePositiveIntegerOrEmpty(raw)
		return err
	},
	"yes-no-number": func(raw string) error {
		_, err := simpletype.ParseYesNoNumber(raw)
		return err
	},
	"font-size": func(raw string) error {
		_, err := simpletype.ParseFontSize(raw)
		return err
	},
}

// Validate checks raw against the simple type called typeName: a scalar
// such as "midi-128", an enumeration such as "yes-no" or a union such as
// "font-size".
func Validate(typeName, raw string) error {
	if d, ok := simpletype.Descriptor(typeName); ok {
		return constraint.Validate(d, raw)
	}
	if s := label.Lookup(typeName); s != nil {
		if !s.Contains(raw) {
			return &enum.UnknownLabelError{Set: typeName, Raw: raw}
		}
		return nil
	}
	if parse, ok := unions[typeName]; ok {
		return parse(raw)
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, typeName)
}
