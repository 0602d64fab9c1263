package simpletype

import (
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/label"
)

// AccidentalValue is a notated accidental. The numbered sharps and flats are the
// superscripted signs of Turkish folk music.
type AccidentalValue int

const (
	AccidentalValueSharp AccidentalValue = iota
	AccidentalValueNatural
	AccidentalValueFlat
	AccidentalValueDoubleSharp
	AccidentalValueSharpSharp
	AccidentalValueFlatFlat
	AccidentalValueNaturalSharp
	AccidentalValueNaturalFlat
	AccidentalValueQuarterFlat
	AccidentalValueQuarterSharp
	AccidentalValueThreeQuartersFlat
	AccidentalValueThreeQuartersSharp
	AccidentalValueSharpDown
	AccidentalValueSharpUp
	AccidentalValueNaturalDown
	AccidentalValueNaturalUp
	AccidentalValueFlatDown
	AccidentalValueFlatUp
	AccidentalValueDoubleSharpDown
	AccidentalValueDoubleSharpUp
	AccidentalValueFlatFlatDown
	AccidentalValueFlatFlatUp
	AccidentalValueArrowDown
	AccidentalValueArrowUp
	AccidentalValueTripleSharp
	AccidentalValueTripleFlat
	AccidentalValueSlashQuarterSharp
	AccidentalValueSlashSharp
	AccidentalValueSlashFlat
	AccidentalValueDoubleSlashFlat
	AccidentalValueSharp1
	AccidentalValueSharp2
	AccidentalValueSharp3
	AccidentalValueSharp5
	AccidentalValueFlat1
	AccidentalValueFlat2
	AccidentalValueFlat3
	AccidentalValueFlat4
	AccidentalValueSori
	AccidentalValueKoron
	AccidentalValueOther
)

var accidentalValueLabels = label.Define("accidental-value", label.Kebab,
	label.E(AccidentalValueSharp, "Sharp"),
	label.E(AccidentalValueNatural, "Natural"),
	label.E(AccidentalValueFlat, "Flat"),
	label.E(AccidentalValueDoubleSharp, "DoubleSharp"),
	label.E(AccidentalValueSharpSharp, "SharpSharp"),
	label.E(AccidentalValueFlatFlat, "FlatFlat"),
	label.E(AccidentalValueNaturalSharp, "NaturalSharp"),
	label.E(AccidentalValueNaturalFlat, "NaturalFlat"),
	label.E(AccidentalValueQuarterFlat, "QuarterFlat"),
	label.E(AccidentalValueQuarterSharp, "QuarterSharp"),
	label.E(AccidentalValueThreeQuartersFlat, "ThreeQuartersFlat"),
	label.E(AccidentalValueThreeQuartersSharp, "ThreeQuartersSharp"),
	label.E(AccidentalValueSharpDown, "SharpDown"),
	label.E(AccidentalValueSharpUp, "SharpUp"),
	label.E(AccidentalValueNaturalDown, "NaturalDown"),
	label.E(AccidentalValueNaturalUp, "NaturalUp"),
	label.E(AccidentalValueFlatDown, "FlatDown"),
	label.E(AccidentalValueFlatUp, "FlatUp"),
	label.E(AccidentalValueDoubleSharpDown, "DoubleSharpDown"),
	label.E(AccidentalValueDoubleSharpUp, "DoubleSharpUp"),
	label.E(AccidentalValueFlatFlatDown, "FlatFlatDown"),
	label.E(AccidentalValueFlatFlatUp, "FlatFlatUp"),
	label.E(AccidentalValueArrowDown, "ArrowDown"),
	label.E(AccidentalValueArrowUp, "ArrowUp"),
	label.E(AccidentalValueTripleSharp, "TripleSharp"),
	label.E(AccidentalValueTripleFlat, "TripleFlat"),
	label.E(AccidentalValueSlashQuarterSharp, "SlashQuarterSharp"),
	label.E(AccidentalValueSlashSharp, "SlashSharp"),
	label.E(AccidentalValueSlashFlat, "SlashFlat"),
	label.E(AccidentalValueDoubleSlashFlat, "DoubleSlashFlat"),
	label.As(AccidentalValueSharp1, "Sharp1", "sharp-1"),
	label.As(AccidentalValueSharp2, "Sharp2", "sharp-2"),
	label.As(AccidentalValueSharp3, "Sharp3", "sharp-3"),
	label.As(AccidentalValueSharp5, "Sharp5", "sharp-5"),
	label.As(AccidentalValueFlat1, "Flat1", "flat-1"),
	label.As(AccidentalValueFlat2, "Flat2", "flat-2"),
	label.As(AccidentalValueFlat3, "Flat3", "flat-3"),
	label.As(AccidentalValueFlat4, "Flat4", "flat-4"),
	label.E(AccidentalValueSori, "Sori"),
	label.E(AccidentalValueKoron, "Koron"),
	label.E(AccidentalValueOther, "Other"),
)

func (v AccidentalValue) String() string {
	return enum.String(accidentalValueLabels, v)
}

func (v AccidentalValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(accidentalValueLabels, v)
}

func (v *AccidentalValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(accidentalValueLabels, v, b)
}

// ArrowDirection uses Unicode arrow terminology.
type ArrowDirection int

const (
	ArrowDirectionLeft ArrowDirection = iota
	ArrowDirectionUp
	ArrowDirectionRight
	ArrowDirectionDown
	ArrowDirectionNorthwest
	ArrowDirectionNortheast
	ArrowDirectionSoutheast
	ArrowDirectionSouthwest
	ArrowDirectionLeftRight
	ArrowDirectionUpDown
	ArrowDirectionNorthwestSoutheast
	ArrowDirectionNortheastSouthwest
	ArrowDirectionOther
)

var arrowDirectionLabels = label.Define("arrow-direction", label.Lower,
	label.E(ArrowDirectionLeft, "Left"),
	label.E(ArrowDirectionUp, "Up"),
	label.E(ArrowDirectionRight, "Right"),
	label.E(ArrowDirectionDown, "Down"),
	label.E(ArrowDirectionNorthwest, "Northwest"),
	label.E(ArrowDirectionNortheast, "Northeast"),
	label.E(ArrowDirectionSoutheast, "Southeast"),
	label.E(ArrowDirectionSouthwest, "Southwest"),
	label.As(ArrowDirectionLeftRight, "LeftRight", "left right"),
	label.As(ArrowDirectionUpDown, "UpDown", "up down"),
	label.As(ArrowDirectionNorthwestSoutheast, "NorthwestSoutheast", "northwest southeast"),
	label.As(ArrowDirectionNortheastSouthwest, "NortheastSouthwest", "northeast southwest"),
	label.E(ArrowDirectionOther, "Other"),
)

func (v ArrowDirection) String() string {
	return enum.String(arrowDirectionLabels, v)
}

func (v ArrowDirection) MarshalText() ([]byte, error) {
	return enum.MarshalText(arrowDirectionLabels, v)
}

func (v *ArrowDirection) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(arrowDirectionLabels, v, b)
}

type ArrowStyle int

const (
	ArrowStyleSingle ArrowStyle = iota
	ArrowStyleDouble
	ArrowStyleFilled
	ArrowStyleHollow
	ArrowStylePaired
	ArrowStyleCombined
	ArrowStyleOther
)

var arrowStyleLabels = label.Define("arrow-style", label.Lower,
	label.E(ArrowStyleSingle, "Single"),
	label.E(ArrowStyleDouble, "Double"),
	label.E(ArrowStyleFilled, "Filled"),
	label.E(ArrowStyleHollow, "Hollow"),
	label.E(ArrowStylePaired, "Paired"),
	label.E(ArrowStyleCombined, "Combined"),
	label.E(ArrowStyleOther, "Other"),
)

func (v ArrowStyle) String() string {
	return enum.String(arrowStyleLabels, v)
}

func (v ArrowStyle) MarshalText() ([]byte, error) {
	return enum.MarshalText(arrowStyleLabels, v)
}

func (v *ArrowStyle) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(arrowStyleLabels, v, b)
}

type BarStyle int

const (
	BarStyleRegular BarStyle = iota
	BarStyleDotted
	BarStyleDashed
	BarStyleHeavy
	BarStyleLightLight
	BarStyleLightHeavy
	BarStyleHeavyLight
	BarStyleHeavyHeavy
	BarStyleTick
	BarStyleShort
	BarStyleNone
)

var barStyleLabels = label.Define("bar-style", label.Kebab,
	label.E(BarStyleRegular, "Regular"),
	label.E(BarStyleDotted, "Dotted"),
	label.E(BarStyleDashed, "Dashed"),
	label.E(BarStyleHeavy, "Heavy"),
	label.E(BarStyleLightLight, "LightLight"),
	label.E(BarStyleLightHeavy, "LightHeavy"),
	label.E(BarStyleHeavyLight, "HeavyLight"),
	label.E(BarStyleHeavyHeavy, "HeavyHeavy"),
	label.E(BarStyleTick, "Tick"),
	label.E(BarStyleShort, "Short"),
	label.E(BarStyleNone, "None"),
)

func (v BarStyle) String() string {
	return enum.String(barStyleLabels, v)
}

func (v BarStyle) MarshalText() ([]byte, error) {
	return enum.MarshalText(barStyleLabels, v)
}

func (v *BarStyle) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(barStyleLabels, v, b)
}

type BreathMarkValue int

const (
	BreathMarkValueComma BreathMarkValue = iota
	BreathMarkValueTick
	BreathMarkValueUpbow
	BreathMarkValueSalzedo
)

var breathMarkValueLabels = label.Define("breath-mark-value", label.Lower,
	label.E(BreathMarkValueComma, "Comma"),
	label.E(BreathMarkValueTick, "Tick"),
	label.E(BreathMarkValueUpbow, "Upbow"),
	label.E(BreathMarkValueSalzedo, "Salzedo"),
)

func (v BreathMarkValue) String() string {
	return enum.String(breathMarkValueLabels, v)
}

func (v BreathMarkValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(breathMarkValueLabels, v)
}

func (v *BreathMarkValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(breathMarkValueLabels, v, b)
}

// CancelLocation places a key cancellation relative to the new key signature.
type CancelLocation int

const (
	CancelLocationLeft CancelLocation = iota
	CancelLocationRight
	CancelLocationBeforeBarline
)

var cancelLocationLabels = label.Define("cancel-location", label.Kebab,
	label.E(CancelLocationLeft, "Left"),
	label.E(CancelLocationRight, "Right"),
	label.E(CancelLocationBeforeBarline, "BeforeBarline"),
)

func (v CancelLocation) String() string {
	return enum.String(cancelLocationLabels, v)
}

func (v CancelLocation) MarshalText() ([]byte, error) {
	return enum.MarshalText(cancelLocationLabels, v)
}

func (v *CancelLocation) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(cancelLocationLabels, v, b)
}

type CircularArrow int

const (
	CircularArrowClockwise CircularArrow = iota
	CircularArrowAnticlockwise
)

var circularArrowLabels = label.Define("circular-arrow", label.Lower,
	label.E(CircularArrowClockwise, "Clockwise"),
	label.E(CircularArrowAnticlockwise, "Anticlockwise"),
)

func (v CircularArrow) String() string {
	return enum.String(circularArrowLabels, v)
}

func (v CircularArrow) MarshalText() ([]byte, error) {
	return enum.MarshalText(circularArrowLabels, v)
}

func (v *CircularArrow) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(circularArrowLabels, v, b)
}

// ClefSign is a clef symbol. The letter clefs and TAB are upper case on the
// wire.
type ClefSign int

const (
	ClefSignG ClefSign = iota
	ClefSignF
	ClefSignC
	ClefSignPercussion
	ClefSignTAB
	ClefSignJianpu
	ClefSignNone
)

var clefSignLabels = label.Define("clef-sign", label.Lower,
	label.As(ClefSignG, "G", "G"),
	label.As(ClefSignF, "F", "F"),
	label.As(ClefSignC, "C", "C"),
	label.E(ClefSignPercussion, "Percussion"),
	label.As(ClefSignTAB, "TAB", "TAB"),
	label.E(ClefSignJianpu, "Jianpu"),
	label.E(ClefSignNone, "None"),
)

func (v ClefSign) String() string {
	return enum.String(clefSignLabels, v)
}

func (v ClefSign) MarshalText() ([]byte, error) {
	return enum.MarshalText(clefSignLabels, v)
}

func (v *ClefSign) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(clefSignLabels, v, b)
}

// Fan is beam fanning for accelerando and ritardando.
type Fan int

const (
	FanAccel Fan = iota
	FanRit
	FanNone
)

var fanLabels = label.Define("fan", label.Lower,
	label.E(FanAccel, "Accel"),
	label.E(FanRit, "Rit"),
	label.E(FanNone, "None"),
)

func (v Fan) String() string {
	return enum.String(fanLabels, v)
}

func (v Fan) MarshalText() ([]byte, error) {
	return enum.MarshalText(fanLabels, v)
}

func (v *Fan) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(fanLabels, v, b)
}

type FermataShape int

const (
	FermataShapeNormal FermataShape = iota
	FermataShapeAngled
	FermataShapeSquare
	FermataShapeDoubleAngled
	FermataShapeDoubleSquare
	FermataShapeDoubleDot
	FermataShapeHalfCurve
	FermataShapeCurlew
)

var fermataShapeLabels = label.Define("fermata-shape", label.Kebab,
	label.E(FermataShapeNormal, "Normal"),
	label.E(FermataShapeAngled, "Angled"),
	label.E(FermataShapeSquare, "Square"),
	label.E(FermataShapeDoubleAngled, "DoubleAngled"),
	label.E(FermataShapeDoubleSquare, "DoubleSquare"),
	label.E(FermataShapeDoubleDot, "DoubleDot"),
	label.E(FermataShapeHalfCurve, "HalfCurve"),
	label.E(FermataShapeCurlew, "Curlew"),
)

func (v FermataShape) String() string {
	return enum.String(fermataShapeLabels, v)
}

func (v FermataShape) MarshalText() ([]byte, error) {
	return enum.MarshalText(fermataShapeLabels, v)
}

func (v *FermataShape) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(fermataShapeLabels, v, b)
}

// GroupBarlineValue tells whether barlines connect the staves of a group.
type GroupBarlineValue int

const (
	GroupBarlineValueYes GroupBarlineValue = iota
	GroupBarlineValueNo
	GroupBarlineValueMensurstrich
)

var groupBarlineValueLabels = label.Define("group-barline-value", label.Lower,
	label.E(GroupBarlineValueYes, "Yes"),
	label.E(GroupBarlineValueNo, "No"),
	label.As(GroupBarlineValueMensurstrich, "Mensurstrich", "Mensurstrich"),
)

func (v GroupBarlineValue) String() string {
	return enum.String(groupBarlineValueLabels, v)
}

func (v GroupBarlineValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(groupBarlineValueLabels, v)
}

func (v *GroupBarlineValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(groupBarlineValueLabels, v, b)
}

type GroupSymbolValue int

const (
	GroupSymbolValueNone GroupSymbolValue = iota
	GroupSymbolValueBrace
	GroupSymbolValueLine
	GroupSymbolValueBracket
	GroupSymbolValueSquare
)

var groupSymbolValueLabels = label.Define("group-symbol-value", label.Lower,
	label.E(GroupSymbolValueNone, "None"),
	label.E(GroupSymbolValueBrace, "Brace"),
	label.E(GroupSymbolValueLine, "Line"),
	label.E(GroupSymbolValueBracket, "Bracket"),
	label.E(GroupSymbolValueSquare, "Square"),
)

func (v GroupSymbolValue) String() string {
	return enum.String(groupSymbolValueLabels, v)
}

func (v GroupSymbolValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(groupSymbolValueLabels, v)
}

func (v *GroupSymbolValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(groupSymbolValueLabels, v, b)
}

type LineEnd int

const (
	LineEndUp LineEnd = iota
	LineEndDown
	LineEndBoth
	LineEndArrow
	LineEndNone
)

var lineEndLabels = label.Define("line-end", label.Lower,
	label.E(LineEndUp, "Up"),
	label.E(LineEndDown, "Down"),
	label.E(LineEndBoth, "Both"),
	label.E(LineEndArrow, "Arrow"),
	label.E(LineEndNone, "None"),
)

func (v LineEnd) String() string {
	return enum.String(lineEndLabels, v)
}

func (v LineEnd) MarshalText() ([]byte, error) {
	return enum.MarshalText(lineEndLabels, v)
}

func (v *LineEnd) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(lineEndLabels, v, b)
}

type LineShape int

const (
	LineShapeStraight LineShape = iota
	LineShapeCurved
)

var lineShapeLabels = label.Define("line-shape", label.Lower,
	label.E(LineShapeStraight, "Straight"),
	label.E(LineShapeCurved, "Curved"),
)

func (v LineShape) String() string {
	return enum.String(lineShapeLabels, v)
}

func (v LineShape) MarshalText() ([]byte, error) {
	return enum.MarshalText(lineShapeLabels, v)
}

func (v *LineShape) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(lineShapeLabels, v, b)
}

type LineType int

const (
	LineTypeSolid LineType = iota
	LineTypeDashed
	LineTypeDotted
	LineTypeWavy
)

var lineTypeLabels = label.Define("line-type", label.Lower,
	label.E(LineTypeSolid, "Solid"),
	label.E(LineTypeDashed, "Dashed"),
	label.E(LineTypeDotted, "Dotted"),
	label.E(LineTypeWavy, "Wavy"),
)

func (v LineType) String() string {
	return enum.String(lineTypeLabels, v)
}

func (v LineType) MarshalText() ([]byte, error) {
	return enum.MarshalText(lineTypeLabels, v)
}

func (v *LineType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(lineTypeLabels, v, b)
}

// NoteheadValue is the shape of a notehead. The shape note heads do, re, mi,
// fa, so, la and ti follow Aikin's seven shape system.
type NoteheadValue int

const (
	NoteheadValueSlash NoteheadValue = iota
	NoteheadValueTriangle
	NoteheadValueDiamond
	NoteheadValueSquare
	NoteheadValueCross
	NoteheadValueX
	NoteheadValueCircleX
	NoteheadValueInvertedTriangle
	NoteheadValueArrowDown
	NoteheadValueArrowUp
	NoteheadValueCircled
	NoteheadValueSlashed
	NoteheadValueBackSlashed
	NoteheadValueNormal
	NoteheadValueCluster
	NoteheadValueCircleDot
	NoteheadValueLeftTriangle
	NoteheadValueRectangle
	NoteheadValueNone
	NoteheadValueDo
	NoteheadValueRe
	NoteheadValueMi
	NoteheadValueFa
	NoteheadValueFaUp
	NoteheadValueSo
	NoteheadValueLa
	NoteheadValueTi
	NoteheadValueOther
)

var noteheadValueLabels = label.Define("notehead-value", label.Lower,
	label.E(NoteheadValueSlash, "Slash"),
	label.E(NoteheadValueTriangle, "Triangle"),
	label.E(NoteheadValueDiamond, "Diamond"),
	label.E(NoteheadValueSquare, "Square"),
	label.E(NoteheadValueCross, "Cross"),
	label.E(NoteheadValueX, "X"),
	label.As(NoteheadValueCircleX, "CircleX", "circle-x"),
	label.As(NoteheadValueInvertedTriangle, "InvertedTriangle", "inverted triangle"),
	label.As(NoteheadValueArrowDown, "ArrowDown", "arrow down"),
	label.As(NoteheadValueArrowUp, "ArrowUp", "arrow up"),
	label.E(NoteheadValueCircled, "Circled"),
	label.E(NoteheadValueSlashed, "Slashed"),
	label.As(NoteheadValueBackSlashed, "BackSlashed", "back slashed"),
	label.E(NoteheadValueNormal, "Normal"),
	label.E(NoteheadValueCluster, "Cluster"),
	label.As(NoteheadValueCircleDot, "CircleDot", "circle dot"),
	label.As(NoteheadValueLeftTriangle, "LeftTriangle", "left triangle"),
	label.E(NoteheadValueRectangle, "Rectangle"),
	label.E(NoteheadValueNone, "None"),
	label.E(NoteheadValueDo, "Do"),
	label.E(NoteheadValueRe, "Re"),
	label.E(NoteheadValueMi, "Mi"),
	label.E(NoteheadValueFa, "Fa"),
	label.As(NoteheadValueFaUp, "FaUp", "fa up"),
	label.E(NoteheadValueSo, "So"),
	label.E(NoteheadValueLa, "La"),
	label.E(NoteheadValueTi, "Ti"),
	label.E(NoteheadValueOther, "Other"),
)

func (v NoteheadValue) String() string {
	return enum.String(noteheadValueLabels, v)
}

func (v NoteheadValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(noteheadValueLabels, v)
}

func (v *NoteheadValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(noteheadValueLabels, v, b)
}

type NoteSizeType int

const (
	NoteSizeTypeCue NoteSizeType = iota
	NoteSizeTypeGrace
	NoteSizeTypeGraceCue
	NoteSizeTypeLarge
)

var noteSizeTypeLabels = label.Define("note-size-type", label.Lower,
	label.E(NoteSizeTypeCue, "Cue"),
	label.E(NoteSizeTypeGrace, "Grace"),
	label.As(NoteSizeTypeGraceCue, "GraceCue", "grace-cue"),
	label.E(NoteSizeTypeLarge, "Large"),
)

func (v NoteSizeType) String() string {
	return enum.String(noteSizeTypeLabels, v)
}

func (v NoteSizeType) MarshalText() ([]byte, error) {
	return enum.MarshalText(noteSizeTypeLabels, v)
}

func (v *NoteSizeType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(noteSizeTypeLabels, v, b)
}

// NoteTypeValue is a graphic note duration, from the 1024th to the maxima.
type NoteTypeValue int

const (
	NoteTypeValue1024th NoteTypeValue = iota
	NoteTypeValue512th
	NoteTypeValue256th
	NoteTypeValue128th
	NoteTypeValue64th
	NoteTypeValue32nd
	NoteTypeValue16th
	NoteTypeValueEighth
	NoteTypeValueQuarter
	NoteTypeValueHalf
	NoteTypeValueWhole
	NoteTypeValueBreve
	NoteTypeValueLong
	NoteTypeValueMaxima
)

var noteTypeValueLabels = label.Define("note-type-value", label.Lower,
	label.E(NoteTypeValue1024th, "1024th"),
	label.E(NoteTypeValue512th, "512th"),
	label.E(NoteTypeValue256th, "256th"),
	label.E(NoteTypeValue128th, "128th"),
	label.E(NoteTypeValue64th, "64th"),
	label.E(NoteTypeValue32nd, "32nd"),
	label.E(NoteTypeValue16th, "16th"),
	label.E(NoteTypeValueEighth, "Eighth"),
	label.E(NoteTypeValueQuarter, "Quarter"),
	label.E(NoteTypeValueHalf, "Half"),
	label.E(NoteTypeValueWhole, "Whole"),
	label.E(NoteTypeValueBreve, "Breve"),
	label.E(NoteTypeValueLong, "Long"),
	label.E(NoteTypeValueMaxima, "Maxima"),
)

func (v NoteTypeValue) String() string {
	return enum.String(noteTypeValueLabels, v)
}

func (v NoteTypeValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(noteTypeValueLabels, v)
}

func (v *NoteTypeValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(noteTypeValueLabels, v, b)
}

// PrincipalVoiceSymbol marks principal and secondary voices. The German
// symbol names are capitalised.
type PrincipalVoiceSymbol int

const (
	PrincipalVoiceSymbolHauptstimme PrincipalVoiceSymbol = iota
	PrincipalVoiceSymbolNebenstimme
	PrincipalVoiceSymbolPlain
	PrincipalVoiceSymbolNone
)

var principalVoiceSymbolLabels = label.Define("principal-voice-symbol", label.Lower,
	label.As(PrincipalVoiceSymbolHauptstimme, "Hauptstimme", "Hauptstimme"),
	label.As(PrincipalVoiceSymbolNebenstimme, "Nebenstimme", "Nebenstimme"),
	label.E(PrincipalVoiceSymbolPlain, "Plain"),
	label.E(PrincipalVoiceSymbolNone, "None"),
)

func (v PrincipalVoiceSymbol) String() string {
	return enum.String(principalVoiceSymbolLabels, v)
}

func (v PrincipalVoiceSymbol) MarshalText() ([]byte, error) {
	return enum.MarshalText(principalVoiceSymbolLabels, v)
}

func (v *PrincipalVoiceSymbol) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(principalVoiceSymbolLabels, v, b)
}

type ShowTuplet int

const (
	ShowTupletActual ShowTuplet = iota
	ShowTupletBoth
	ShowTupletNone
)

var showTupletLabels = label.Define("show-tuplet", label.Lower,
	label.E(ShowTupletActual, "Actual"),
	label.E(ShowTupletBoth, "Both"),
	label.E(ShowTupletNone, "None"),
)

func (v ShowTuplet) String() string {
	return enum.String(showTupletLabels, v)
}

func (v ShowTuplet) MarshalText() ([]byte, error) {
	return enum.MarshalText(showTupletLabels, v)
}

func (v *ShowTuplet) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(showTupletLabels, v, b)
}

type StaffType int

const (
	StaffTypeOssia StaffType = iota
	StaffTypeEditorial
	StaffTypeCue
	StaffTypeAlternate
	StaffTypeRegular
)

var staffTypeLabels = label.Define("staff-type", label.Lower,
	label.E(StaffTypeOssia, "Ossia"),
	label.E(StaffTypeEditorial, "Editorial"),
	label.E(StaffTypeCue, "Cue"),
	label.E(StaffTypeAlternate, "Alternate"),
	label.E(StaffTypeRegular, "Regular"),
)

func (v StaffType) String() string {
	return enum.String(staffTypeLabels, v)
}

func (v StaffType) MarshalText() ([]byte, error) {
	return enum.MarshalText(staffTypeLabels, v)
}

func (v *StaffType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(staffTypeLabels, v, b)
}

type StemValue int

const (
	StemValueDown StemValue = iota
	StemValueUp
	StemValueDouble
	StemValueNone
)

var stemValueLabels = label.Define("stem-value", label.Lower,
	label.E(StemValueDown, "Down"),
	label.E(StemValueUp, "Up"),
	label.E(StemValueDouble, "Double"),
	label.E(StemValueNone, "None"),
)

func (v StemValue) String() string {
	return enum.String(stemValueLabels, v)
}

func (v StemValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(stemValueLabels, v)
}

func (v *StemValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(stemValueLabels, v, b)
}

// Step is a diatonic pitch letter.
type Step int

const (
	StepA Step = iota
	StepB
	StepC
	StepD
	StepE
	StepF
	StepG
)

var stepLabels = label.Define("step", label.Verbatim,
	label.E(StepA, "A"),
	label.E(StepB, "B"),
	label.E(StepC, "C"),
	label.E(StepD, "D"),
	label.E(StepE, "E"),
	label.E(StepF, "F"),
	label.E(StepG, "G"),
)

func (v Step) String() string {
	return enum.String(stepLabels, v)
}

func (v Step) MarshalText() ([]byte, error) {
	return enum.MarshalText(stepLabels, v)
}

func (v *Step) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(stepLabels, v, b)
}

type SymbolSize int

const (
	SymbolSizeFull SymbolSize = iota
	SymbolSizeCue
	SymbolSizeGraceCue
	SymbolSizeLarge
)

var symbolSizeLabels = label.Define("symbol-size", label.Lower,
	label.E(SymbolSizeFull, "Full"),
	label.E(SymbolSizeCue, "Cue"),
	label.As(SymbolSizeGraceCue, "GraceCue", "grace-cue"),
	label.E(SymbolSizeLarge, "Large"),
)

func (v SymbolSize) String() string {
	return enum.String(symbolSizeLabels, v)
}

func (v SymbolSize) MarshalText() ([]byte, error) {
	return enum.MarshalText(symbolSizeLabels, v)
}

func (v *SymbolSize) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(symbolSizeLabels, v, b)
}

type TimeRelation int

const (
	TimeRelationParentheses TimeRelation = iota
	TimeRelationBracket
	TimeRelationEquals
	TimeRelationSlash
	TimeRelationSpace
	TimeRelationHyphen
)

var timeRelationLabels = label.Define("time-relation", label.Lower,
	label.E(TimeRelationParentheses, "Parentheses"),
	label.E(TimeRelationBracket, "Bracket"),
	label.E(TimeRelationEquals, "Equals"),
	label.E(TimeRelationSlash, "Slash"),
	label.E(TimeRelationSpace, "Space"),
	label.E(TimeRelationHyphen, "Hyphen"),
)

func (v TimeRelation) String() string {
	return enum.String(timeRelationLabels, v)
}

func (v TimeRelation) MarshalText() ([]byte, error) {
	return enum.MarshalText(timeRelationLabels, v)
}

func (v *TimeRelation) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(timeRelationLabels, v, b)
}

type TimeSeparator int

const (
	TimeSeparatorNone TimeSeparator = iota
	TimeSeparatorHorizontal
	TimeSeparatorDiagonal
	TimeSeparatorVertical
	TimeSeparatorAdjacent
)

var timeSeparatorLabels = label.Define("time-separator", label.Lower,
	label.E(TimeSeparatorNone, "None"),
	label.E(TimeSeparatorHorizontal, "Horizontal"),
	label.E(TimeSeparatorDiagonal, "Diagonal"),
	label.E(TimeSeparatorVertical, "Vertical"),
	label.E(TimeSeparatorAdjacent, "Adjacent"),
)

func (v TimeSeparator) String() string {
	return enum.String(timeSeparatorLabels, v)
}

func (v TimeSeparator) MarshalText() ([]byte, error) {
	return enum.MarshalText(timeSeparatorLabels, v)
}

func (v *TimeSeparator) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(timeSeparatorLabels, v, b)
}

// TimeSymbol is the way a time signature is drawn.
type TimeSymbol int

const (
	TimeSymbolCommon TimeSymbol = iota
	TimeSymbolCut
	TimeSymbolSingleNumber
	TimeSymbolNote
	TimeSymbolDottedNote
	TimeSymbolNormal
)

var timeSymbolLabels = label.Define("time-symbol", label.Kebab,
	label.E(TimeSymbolCommon, "Common"),
	label.E(TimeSymbolCut, "Cut"),
	label.E(TimeSymbolSingleNumber, "SingleNumber"),
	label.E(TimeSymbolNote, "Note"),
	label.E(TimeSymbolDottedNote, "DottedNote"),
	label.E(TimeSymbolNormal, "Normal"),
)

func (v TimeSymbol) String() string {
	return enum.String(timeSymbolLabels, v)
}

func (v TimeSymbol) MarshalText() ([]byte, error) {
	return enum.MarshalText(timeSymbolLabels, v)
}

func (v *TimeSymbol) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(timeSymbolLabels, v, b)
}

type TipDirection int

const (
	TipDirectionUp TipDirection = iota
	TipDirectionDown
	TipDirectionLeft
	TipDirectionRight
	TipDirectionNorthwest
	TipDirectionNortheast
	TipDirectionSoutheast
	TipDirectionSouthwest
)

var tipDirectionLabels = label.Define("tip-direction", label.Lower,
	label.E(TipDirectionUp, "Up"),
	label.E(TipDirectionDown, "Down"),
	label.E(TipDirectionLeft, "Left"),
	label.E(TipDirectionRight, "Right"),
	label.E(TipDirectionNorthwest, "Northwest"),
	label.E(TipDirectionNortheast, "Northeast"),
	label.E(TipDirectionSoutheast, "Southeast"),
	label.E(TipDirectionSouthwest, "Southwest"),
)

func (v TipDirection) String() string {
	return enum.String(tipDirectionLabels, v)
}

func (v TipDirection) MarshalText() ([]byte, error) {
	return enum.MarshalText(tipDirectionLabels, v)
}

func (v *TipDirection) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(tipDirectionLabels, v, b)
}

type WedgeType int

const (
	WedgeTypeCrescendo WedgeType = iota
	WedgeTypeDiminuendo
	WedgeTypeStop
	WedgeTypeContinue
)

var wedgeTypeLabels = label.Define("wedge-type", label.Lower,
	label.E(WedgeTypeCrescendo, "Crescendo"),
	label.E(WedgeTypeDiminuendo, "Diminuendo"),
	label.E(WedgeTypeStop, "Stop"),
	label.E(WedgeTypeContinue, "Continue"),
)

func (v WedgeType) String() string {
	return enum.String(wedgeTypeLabels, v)
}

func (v WedgeType) MarshalText() ([]byte, error) {
	return enum.MarshalText(wedgeTypeLabels, v)
}

func (v *WedgeType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(wedgeTypeLabels, v, b)
}

// Winged tells whether a repeat sign has wings.
type Winged int

const (
	WingedNone Winged = iota
	WingedStraight
	WingedCurved
	WingedDoubleStraight
	WingedDoubleCurved
)

var wingedLabels = label.Define("winged", label.Kebab,
	label.E(WingedNone, "None"),
	label.E(WingedStraight, "Straight"),
	label.E(WingedCurved, "Curved"),
	label.E(WingedDoubleStraight, "DoubleStraight"),
	label.E(WingedDoubleCurved, "DoubleCurved"),
)

func (v Winged) String() string {
	return enum.String(wingedLabels, v)
}

func (v Winged) MarshalText() ([]byte, error) {
	return enum.MarshalText(wingedLabels, v)
}

func (v *Winged) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(wingedLabels, v, b)
}
