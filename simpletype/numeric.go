package simpletype

import "github.com/signadot/mxl/constraint"

// AccordionMiddle is the number of dots in the middle section of an accordion
// registration symbol.
type AccordionMiddle int

var accordionMiddleRange = describe(constraint.Ints("accordion-middle", 1, 3))

func (v AccordionMiddle) MarshalText() ([]byte, error) {
	return marshalInt(accordionMiddleRange, v)
}

func (v *AccordionMiddle) UnmarshalText(b []byte) error {
	return unmarshalInt(accordionMiddleRange, v, b)
}

// BeamLevel identifies one of eight concurrent beams, up to 1024th notes.
type BeamLevel int

var beamLevelRange = describe(constraint.Ints("beam-level", 1, 8))

func (v BeamLevel) MarshalText() ([]byte, error) {
	return marshalInt(beamLevelRange, v)
}

func (v *BeamLevel) UnmarshalText(b []byte) error {
	return unmarshalInt(beamLevelRange, v, b)
}

// Fifths is the number of flats (negative) or sharps (positive) in a key
// signature.
type Fifths int

var fifthsRange = describe(constraint.AnyInt("fifths"))

func (v Fifths) MarshalText() ([]byte, error) {
	return marshalInt(fifthsRange, v)
}

func (v *Fifths) UnmarshalText(b []byte) error {
	return unmarshalInt(fifthsRange, v, b)
}

type Midi16 int

var midi16Range = describe(constraint.Ints("midi-16", 1, 16))

func (v Midi16) MarshalText() ([]byte, error) {
	return marshalInt(midi16Range, v)
}

func (v *Midi16) UnmarshalText(b []byte) error {
	return unmarshalInt(midi16Range, v, b)
}

type Midi128 int

var midi128Range = describe(constraint.Ints("midi-128", 1, 128))

func (v Midi128) MarshalText() ([]byte, error) {
	return marshalInt(midi128Range, v)
}

func (v *Midi128) UnmarshalText(b []byte) error {
	return unmarshalInt(midi128Range, v, b)
}

type Midi16384 int

var midi16384Range = describe(constraint.Ints("midi-16384", 1, 16384))

func (v Midi16384) MarshalText() ([]byte, error) {
	return marshalInt(midi16384Range, v)
}

func (v *Midi16384) UnmarshalText(b []byte) error {
	return unmarshalInt(midi16384Range, v, b)
}

// NumberLevel distinguishes up to six overlapping objects of the same type.
type NumberLevel int

var numberLevelRange = describe(constraint.Ints("number-level", 1, 6))

func (v NumberLevel) MarshalText() ([]byte, error) {
	return marshalInt(numberLevelRange, v)
}

func (v *NumberLevel) UnmarshalText(b []byte) error {
	return unmarshalInt(numberLevelRange, v, b)
}

type NumberOfLines int

var numberOfLinesRange = describe(constraint.Ints("number-of-lines", 0, 3))

func (v NumberOfLines) MarshalText() ([]byte, error) {
	return marshalInt(numberOfLinesRange, v)
}

func (v *NumberOfLines) UnmarshalText(b []byte) error {
	return unmarshalInt(numberOfLinesRange, v, b)
}

// Octave 4 is the octave started by middle C.
type Octave int

var octaveRange = describe(constraint.Ints("octave", 0, 9))

func (v Octave) MarshalText() ([]byte, error) {
	return marshalInt(octaveRange, v)
}

func (v *Octave) UnmarshalText(b []byte) error {
	return unmarshalInt(octaveRange, v, b)
}

// StaffLine numbers staff lines from the bottom, starting at 1.
type StaffLine int

var staffLineRange = describe(constraint.AnyInt("staff-line"))

func (v StaffLine) MarshalText() ([]byte, error) {
	return marshalInt(staffLineRange, v)
}

func (v *StaffLine) UnmarshalText(b []byte) error {
	return unmarshalInt(staffLineRange, v, b)
}

type StaffNumber int

var staffNumberRange = describe(constraint.AtLeast("staff-number", 1))

func (v StaffNumber) MarshalText() ([]byte, error) {
	return marshalInt(staffNumberRange, v)
}

func (v *StaffNumber) UnmarshalText(b []byte) error {
	return unmarshalInt(staffNumberRange, v, b)
}

// StringNumber numbers strings from high to low, starting at 1.
type StringNumber int

var stringNumberRange = describe(constraint.AtLeast("string-number", 1))

func (v StringNumber) MarshalText() ([]byte, error) {
	return marshalInt(stringNumberRange, v)
}

func (v *StringNumber) UnmarshalText(b []byte) error {
	return unmarshalInt(stringNumberRange, v, b)
}

type TremoloMarks int

var tremoloMarksRange = describe(constraint.Ints("tremolo-marks", 0, 8))

func (v TremoloMarks) MarshalText() ([]byte, error) {
	return marshalInt(tremoloMarksRange, v)
}

func (v *TremoloMarks) UnmarshalText(b []byte) error {
	return unmarshalInt(tremoloMarksRange, v, b)
}

// Divisions is a duration in the divisions of a quarter note set by the
// divisions element.
type Divisions float64

var divisionsRange = describe(constraint.AnyDecimal("divisions"))

func (v Divisions) MarshalText() ([]byte, error) {
	return marshalDecimal(divisionsRange, v)
}

func (v *Divisions) UnmarshalText(b []byte) error {
	return unmarshalDecimal(divisionsRange, v, b)
}

type Millimeters float64

var millimetersRange = describe(constraint.AnyDecimal("millimeters"))

func (v Millimeters) MarshalText() ([]byte, error) {
	return marshalDecimal(millimetersRange, v)
}

func (v *Millimeters) UnmarshalText(b []byte) error {
	return unmarshalDecimal(millimetersRange, v, b)
}

type NonNegativeDecimal float64

var nonNegativeDecimalRange = describe(constraint.DecimalAtLeast("non-negative-decimal", 0))

func (v NonNegativeDecimal) MarshalText() ([]byte, error) {
	return marshalDecimal(nonNegativeDecimalRange, v)
}

func (v *NonNegativeDecimal) UnmarshalText(b []byte) error {
	return unmarshalDecimal(nonNegativeDecimalRange, v, b)
}

type Percent float64

var percentRange = describe(constraint.Decimals("percent", 0, 100))

func (v Percent) MarshalText() ([]byte, error) {
	return marshalDecimal(percentRange, v)
}

func (v *Percent) UnmarshalText(b []byte) error {
	return unmarshalDecimal(percentRange, v, b)
}

type PositiveDecimal float64

var positiveDecimalRange = describe(constraint.Positive("positive-decimal"))

func (v PositiveDecimal) MarshalText() ([]byte, error) {
	return marshalDecimal(positiveDecimalRange, v)
}

func (v *PositiveDecimal) UnmarshalText(b []byte) error {
	return unmarshalDecimal(positiveDecimalRange, v, b)
}

type PositiveDivisions float64

var positiveDivisionsRange = describe(constraint.Positive("positive-divisions"))

func (v PositiveDivisions) MarshalText() ([]byte, error) {
	return marshalDecimal(positiveDivisionsRange, v)
}

func (v *PositiveDivisions) UnmarshalText(b []byte) error {
	return unmarshalDecimal(positiveDivisionsRange, v, b)
}

// RotationDegrees is a rotation, pan or elevation in degrees.
type RotationDegrees float64

var rotationDegreesRange = describe(constraint.Decimals("rotation-degrees", -180, 180))

func (v RotationDegrees) MarshalText() ([]byte, error) {
	return marshalDecimal(rotationDegreesRange, v)
}

func (v *RotationDegrees) UnmarshalText(b []byte) error {
	return unmarshalDecimal(rotationDegreesRange, v, b)
}

// Semitones is a chromatic alteration; -1 is a flat and 0.5 a quarter tone
// sharp.
type Semitones float64

var semitonesRange = describe(constraint.AnyDecimal("semitones"))

func (v Semitones) MarshalText() ([]byte, error) {
	return marshalDecimal(semitonesRange, v)
}

func (v *Semitones) UnmarshalText(b []byte) error {
	return unmarshalDecimal(semitonesRange, v, b)
}

// Tenths is a distance in tenths of interline staff space.
type Tenths float64

var tenthsRange = describe(constraint.AnyDecimal("tenths"))

func (v Tenths) MarshalText() ([]byte, error) {
	return marshalDecimal(tenthsRange, v)
}

func (v *Tenths) UnmarshalText(b []byte) error {
	return unmarshalDecimal(tenthsRange, v, b)
}

type TrillBeats float64

var trillBeatsRange = describe(constraint.DecimalAtLeast("trill-beats", 2))

func (v TrillBeats) MarshalText() ([]byte, error) {
	return marshalDecimal(trillBeatsRange, v)
}

func (v *TrillBeats) UnmarshalText(b []byte) error {
	return unmarshalDecimal(trillBeatsRange, v, b)
}
