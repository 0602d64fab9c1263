// Package complextype defines MusicXML elements as records of simple types.
// The structs are decoded with the record package; their fields map to
// attributes and child elements by the kebab case of the field name.
package complextype

import (
	"reflect"
	"slices"

	"github.com/signadot/mxl/simpletype"
)

// Position is the position attribute group. Default values are relative to
// the top or left of the enclosing element, relative ones to the default
// position.
type Position struct {
	DefaultX  *simpletype.Tenths
	DefaultY  *simpletype.Tenths
	RelativeX *simpletype.Tenths
	RelativeY *simpletype.Tenths
}

// Font is the font attribute group.
type Font struct {
	FontFamily *simpletype.CommaSeparatedText
	FontStyle  *simpletype.FontStyle
	FontSize   *simpletype.FontSize
	FontWeight *simpletype.FontWeight
}

type PrintStyle struct {
	Position
	Font
	Color *simpletype.Color
}

type Key struct {
	Fifths simpletype.Fifths
	Mode   simpletype.Mode
}

// Time is a time signature. A missing beat type reads as 0.
type Time struct {
	Beats    int
	BeatType int `mxl:"default=0"`
}

type Attributes struct {
	Divisions int
	Key       Key
	Time      Time
}

// Accidental is the accidental printed with a note.
type Accidental struct {
	Value      simpletype.AccidentalValue `mxl:"text"`
	Cautionary *simpletype.YesNo
	Editorial  *simpletype.YesNo
	Bracket    *simpletype.YesNo
	Size       *simpletype.SymbolSize
	PrintStyle
}

// AccidentalMark is an accidental above or below an ornament.
type AccidentalMark struct {
	Value     simpletype.AccidentalValue `mxl:"text"`
	Placement *simpletype.AboveBelow
	PrintStyle
}

// Ending is a volta bracket. Its text is what is printed, e.g. "1, 2.".
type Ending struct {
	Text        string `mxl:"text"`
	Number      simpletype.EndingNumber
	Type        simpletype.StartStopDiscontinue
	PrintObject *simpletype.YesNo
	EndLength   *simpletype.Tenths
	PrintStyle
}

// Sound holds playback data for a measure or direction.
type Sound struct {
	TimeOnly       *simpletype.TimeOnly
	Tempo          *simpletype.NonNegativeDecimal
	Dynamics       *simpletype.NonNegativeDecimal
	Pan            *simpletype.RotationDegrees
	Elevation      *simpletype.RotationDegrees
	DamperPedal    *simpletype.YesNoNumber
	SoftPedal      *simpletype.YesNoNumber
	SostenutoPedal *simpletype.YesNoNumber
	ForwardRepeat  *simpletype.YesNo
}

// FormattedText is text with font, alignment and spacing attributes, as in
// credit-words or words.
type FormattedText struct {
	Value         string `mxl:"text"`
	Justify       *simpletype.LeftCenterRight
	Halign        *simpletype.LeftCenterRight
	Valign        *simpletype.Valign
	LetterSpacing *simpletype.NumberOrNormal
	LineHeight    *simpletype.NumberOrNormal
	Dir           *simpletype.TextDirection
	Rotation      *simpletype.RotationDegrees
	Underline     *simpletype.NumberOfLines
	Enclosure     *simpletype.EnclosureShape
	PrintStyle
}

var elements = map[string]reflect.Type{
	"attributes":      reflect.TypeFor[Attributes](),
	"key":             reflect.TypeFor[Key](),
	"time":            reflect.TypeFor[Time](),
	"accidental":      reflect.TypeFor[Accidental](),
	"accidental-mark": reflect.TypeFor[AccidentalMark](),
	"ending":          reflect.TypeFor[Ending](),
	"sound":           reflect.TypeFor[Sound](),
	"words":           reflect.TypeFor[FormattedText](),
	"credit-words":    reflect.TypeFor[FormattedText](),
}

// ForElement returns a pointer to a new zero record for the element name,
// e.g. *Key for "key".
func ForElement(name string) (any, bool) {
	typ, ok := elements[name]
	if !ok {
		return nil, false
	}
	return reflect.New(typ).Interface(), true
}

// Elements returns the element names ForElement knows, sorted.
func Elements() []string {
	res := make([]string, 0, len(elements))
	for name := range elements {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
