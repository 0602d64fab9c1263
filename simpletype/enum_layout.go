package simpletype

import (
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/label"
)

// AboveBelow places one element above or below another.
type AboveBelow int

const (
	AboveBelowAbove AboveBelow = iota
	AboveBelowBelow
)

var aboveBelowLabels = label.Define("above-below", label.Lower,
	label.E(AboveBelowAbove, "Above"),
	label.E(AboveBelowBelow, "Below"),
)

func (v AboveBelow) String() string {
	return enum.String(aboveBelowLabels, v)
}

func (v AboveBelow) MarshalText() ([]byte, error) {
	return enum.MarshalText(aboveBelowLabels, v)
}

func (v *AboveBelow) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(aboveBelowLabels, v, b)
}

// CSSFontSize is a CSS font size keyword.
type CSSFontSize int

const (
	CSSFontSizeXxSmall CSSFontSize = iota
	CSSFontSizeXSmall
	CSSFontSizeSmall
	CSSFontSizeMedium
	CSSFontSizeLarge
	CSSFontSizeXLarge
	CSSFontSizeXxLarge
)

var cssFontSizeLabels = label.Define("css-font-size", label.Kebab,
	label.E(CSSFontSizeXxSmall, "XxSmall"),
	label.E(CSSFontSizeXSmall, "XSmall"),
	label.E(CSSFontSizeSmall, "Small"),
	label.E(CSSFontSizeMedium, "Medium"),
	label.E(CSSFontSizeLarge, "Large"),
	label.E(CSSFontSizeXLarge, "XLarge"),
	label.E(CSSFontSizeXxLarge, "XxLarge"),
)

func (v CSSFontSize) String() string {
	return enum.String(cssFontSizeLabels, v)
}

func (v CSSFontSize) MarshalText() ([]byte, error) {
	return enum.MarshalText(cssFontSizeLabels, v)
}

func (v *CSSFontSize) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(cssFontSizeLabels, v, b)
}

type EnclosureShape int

const (
	EnclosureShapeRectangle EnclosureShape = iota
	EnclosureShapeSquare
	EnclosureShapeOval
	EnclosureShapeCircle
	EnclosureShapeBracket
	EnclosureShapeInvertedBracket
	EnclosureShapeTriangle
	EnclosureShapeDiamond
	EnclosureShapePentagon
	EnclosureShapeHexagon
	EnclosureShapeHeptagon
	EnclosureShapeOctagon
	EnclosureShapeNonagon
	EnclosureShapeDecagon
	EnclosureShapeNone
)

var enclosureShapeLabels = label.Define("enclosure-shape", label.Kebab,
	label.E(EnclosureShapeRectangle, "Rectangle"),
	label.E(EnclosureShapeSquare, "Square"),
	label.E(EnclosureShapeOval, "Oval"),
	label.E(EnclosureShapeCircle, "Circle"),
	label.E(EnclosureShapeBracket, "Bracket"),
	label.E(EnclosureShapeInvertedBracket, "InvertedBracket"),
	label.E(EnclosureShapeTriangle, "Triangle"),
	label.E(EnclosureShapeDiamond, "Diamond"),
	label.E(EnclosureShapePentagon, "Pentagon"),
	label.E(EnclosureShapeHexagon, "Hexagon"),
	label.E(EnclosureShapeHeptagon, "Heptagon"),
	label.E(EnclosureShapeOctagon, "Octagon"),
	label.E(EnclosureShapeNonagon, "Nonagon"),
	label.E(EnclosureShapeDecagon, "Decagon"),
	label.E(EnclosureShapeNone, "None"),
)

func (v EnclosureShape) String() string {
	return enum.String(enclosureShapeLabels, v)
}

func (v EnclosureShape) MarshalText() ([]byte, error) {
	return enum.MarshalText(enclosureShapeLabels, v)
}

func (v *EnclosureShape) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(enclosureShapeLabels, v, b)
}

type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

var fontStyleLabels = label.Define("font-style", label.Lower,
	label.E(FontStyleNormal, "Normal"),
	label.E(FontStyleItalic, "Italic"),
)

func (v FontStyle) String() string {
	return enum.String(fontStyleLabels, v)
}

func (v FontStyle) MarshalText() ([]byte, error) {
	return enum.MarshalText(fontStyleLabels, v)
}

func (v *FontStyle) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(fontStyleLabels, v, b)
}

type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

var fontWeightLabels = label.Define("font-weight", label.Lower,
	label.E(FontWeightNormal, "Normal"),
	label.E(FontWeightBold, "Bold"),
)

func (v FontWeight) String() string {
	return enum.String(fontWeightLabels, v)
}

func (v FontWeight) MarshalText() ([]byte, error) {
	return enum.MarshalText(fontWeightLabels, v)
}

func (v *FontWeight) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(fontWeightLabels, v, b)
}

type LeftCenterRight int

const (
	LeftCenterRightLeft LeftCenterRight = iota
	LeftCenterRightCenter
	LeftCenterRightRight
)

var leftCenterRightLabels = label.Define("left-center-right", label.Lower,
	label.E(LeftCenterRightLeft, "Left"),
	label.E(LeftCenterRightCenter, "Center"),
	label.E(LeftCenterRightRight, "Right"),
)

func (v LeftCenterRight) String() string {
	return enum.String(leftCenterRightLabels, v)
}

func (v LeftCenterRight) MarshalText() ([]byte, error) {
	return enum.MarshalText(leftCenterRightLabels, v)
}

func (v *LeftCenterRight) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(leftCenterRightLabels, v, b)
}

type LeftRight int

const (
	LeftRightLeft LeftRight = iota
	LeftRightRight
)

var leftRightLabels = label.Define("left-right", label.Lower,
	label.E(LeftRightLeft, "Left"),
	label.E(LeftRightRight, "Right"),
)

func (v LeftRight) String() string {
	return enum.String(leftRightLabels, v)
}

func (v LeftRight) MarshalText() ([]byte, error) {
	return enum.MarshalText(leftRightLabels, v)
}

func (v *LeftRight) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(leftRightLabels, v, b)
}

// MarginType tells which pages a margin applies to.
type MarginType int

const (
	MarginTypeOdd MarginType = iota
	MarginTypeEven
	MarginTypeBoth
)

var marginTypeLabels = label.Define("margin-type", label.Lower,
	label.E(MarginTypeOdd, "Odd"),
	label.E(MarginTypeEven, "Even"),
	label.E(MarginTypeBoth, "Both"),
)

func (v MarginType) String() string {
	return enum.String(marginTypeLabels, v)
}

func (v MarginType) MarshalText() ([]byte, error) {
	return enum.MarshalText(marginTypeLabels, v)
}

func (v *MarginType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(marginTypeLabels, v, b)
}

type MeasureNumbering int

const (
	MeasureNumberingNone MeasureNumbering = iota
	MeasureNumberingMeasure
	MeasureNumberingSystem
)

var measureNumberingLabels = label.Define("measure-numbering-value", label.Lower,
	label.E(MeasureNumberingNone, "None"),
	label.E(MeasureNumberingMeasure, "Measure"),
	label.E(MeasureNumberingSystem, "System"),
)

func (v MeasureNumbering) String() string {
	return enum.String(measureNumberingLabels, v)
}

func (v MeasureNumbering) MarshalText() ([]byte, error) {
	return enum.MarshalText(measureNumberingLabels, v)
}

func (v *MeasureNumbering) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(measureNumberingLabels, v, b)
}

type OverUnder int

const (
	OverUnderOver OverUnder = iota
	OverUnderUnder
)

var overUnderLabels = label.Define("over-under", label.Lower,
	label.E(OverUnderOver, "Over"),
	label.E(OverUnderUnder, "Under"),
)

func (v OverUnder) String() string {
	return enum.String(overUnderLabels, v)
}

func (v OverUnder) MarshalText() ([]byte, error) {
	return enum.MarshalText(overUnderLabels, v)
}

func (v *OverUnder) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(overUnderLabels, v, b)
}

type RightLeftMiddle int

const (
	RightLeftMiddleRight RightLeftMiddle = iota
	RightLeftMiddleLeft
	RightLeftMiddleMiddle
)

var rightLeftMiddleLabels = label.Define("right-left-middle", label.Lower,
	label.E(RightLeftMiddleRight, "Right"),
	label.E(RightLeftMiddleLeft, "Left"),
	label.E(RightLeftMiddleMiddle, "Middle"),
)

func (v RightLeftMiddle) String() string {
	return enum.String(rightLeftMiddleLabels, v)
}

func (v RightLeftMiddle) MarshalText() ([]byte, error) {
	return enum.MarshalText(rightLeftMiddleLabels, v)
}

func (v *RightLeftMiddle) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(rightLeftMiddleLabels, v, b)
}

// TextDirection is a Unicode bidirectional override.
type TextDirection int

const (
	TextDirectionLtr TextDirection = iota
	TextDirectionRtl
	TextDirectionLro
	TextDirectionRlo
)

var textDirectionLabels = label.Define("text-direction", label.Lower,
	label.E(TextDirectionLtr, "Ltr"),
	label.E(TextDirectionRtl, "Rtl"),
	label.E(TextDirectionLro, "Lro"),
	label.E(TextDirectionRlo, "Rlo"),
)

func (v TextDirection) String() string {
	return enum.String(textDirectionLabels, v)
}

func (v TextDirection) MarshalText() ([]byte, error) {
	return enum.MarshalText(textDirectionLabels, v)
}

func (v *TextDirection) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(textDirectionLabels, v, b)
}

type TopBottom int

const (
	TopBottomTop TopBottom = iota
	TopBottomBottom
)

var topBottomLabels = label.Define("top-bottom", label.Lower,
	label.E(TopBottomTop, "Top"),
	label.E(TopBottomBottom, "Bottom"),
)

func (v TopBottom) String() string {
	return enum.String(topBottomLabels, v)
}

func (v TopBottom) MarshalText() ([]byte, error) {
	return enum.MarshalText(topBottomLabels, v)
}

func (v *TopBottom) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(topBottomLabels, v, b)
}

type UpDown int

const (
	UpDownUp UpDown = iota
	UpDownDown
)

var upDownLabels = label.Define("up-down", label.Lower,
	label.E(UpDownUp, "Up"),
	label.E(UpDownDown, "Down"),
)

func (v UpDown) String() string {
	return enum.String(upDownLabels, v)
}

func (v UpDown) MarshalText() ([]byte, error) {
	return enum.MarshalText(upDownLabels, v)
}

func (v *UpDown) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(upDownLabels, v, b)
}

type UprightInverted int

const (
	UprightInvertedUpright UprightInverted = iota
	UprightInvertedInverted
)

var uprightInvertedLabels = label.Define("upright-inverted", label.Lower,
	label.E(UprightInvertedUpright, "Upright"),
	label.E(UprightInvertedInverted, "Inverted"),
)

func (v UprightInverted) String() string {
	return enum.String(uprightInvertedLabels, v)
}

func (v UprightInverted) MarshalText() ([]byte, error) {
	return enum.MarshalText(uprightInvertedLabels, v)
}

func (v *UprightInverted) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(uprightInvertedLabels, v, b)
}

// Valign is vertical alignment against the text baseline.
type Valign int

const (
	ValignTop Valign = iota
	ValignMiddle
	ValignBottom
	ValignBaseline
)

var valignLabels = label.Define("valign", label.Lower,
	label.E(ValignTop, "Top"),
	label.E(ValignMiddle, "Middle"),
	label.E(ValignBottom, "Bottom"),
	label.E(ValignBaseline, "Baseline"),
)

func (v Valign) String() string {
	return enum.String(valignLabels, v)
}

func (v Valign) MarshalText() ([]byte, error) {
	return enum.MarshalText(valignLabels, v)
}

func (v *Valign) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(valignLabels, v, b)
}

type ValignImage int

const (
	ValignImageTop ValignImage = iota
	ValignImageMiddle
	ValignImageBottom
)

var valignImageLabels = label.Define("valign-image", label.Lower,
	label.E(ValignImageTop, "Top"),
	label.E(ValignImageMiddle, "Middle"),
	label.E(ValignImageBottom, "Bottom"),
)

func (v ValignImage) String() string {
	return enum.String(valignImageLabels, v)
}

func (v ValignImage) MarshalText() ([]byte, error) {
	return enum.MarshalText(valignImageLabels, v)
}

func (v *ValignImage) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(valignImageLabels, v, b)
}
