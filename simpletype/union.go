package simpletype

import (
	"github.com/signadot/mxl/constraint"
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/union"
)

var (
	anyDecimal      = constraint.AnyDecimal("decimal")
	positiveInteger = constraint.AtLeast("positive-integer", 1)
	normalKeyword   = constraint.NewSet("normal", "normal")
	emptyKeyword    = constraint.NewSet("empty", "")
)

// NumberOrNormal is a decimal or the keyword "normal", as used for line
// height and letter spacing. The decimal reading is tried first.
type NumberOrNormal struct {
	Number float64
	Normal bool
}

var numberOrNormal = union.Must("number-or-normal",
	union.Candidate[NumberOrNormal]{Shape: "decimal", Parse: func(raw string) (NumberOrNormal, error) {
		v, err := constraint.ParseDecimal(anyDecimal, raw)
		if err != nil {
			return NumberOrNormal{}, err
		}
		return NumberOrNormal{Number: v}, nil
	}},
	union.Candidate[NumberOrNormal]{Shape: "normal", Parse: func(raw string) (NumberOrNormal, error) {
		if err := normalKeyword.Check(raw); err != nil {
			return NumberOrNormal{}, err
		}
		return NumberOrNormal{Normal: true}, nil
	}},
)

func ParseNumberOrNormal(raw string) (NumberOrNormal, error) {
	v, _, err := numberOrNormal.Resolve(raw)
	return v, err
}

func (n NumberOrNormal) Shape() string {
	if n.Normal {
		return "normal"
	}
	return "decimal"
}

func (n NumberOrNormal) MarshalText() ([]byte, error) {
	if n.Normal {
		return []byte("normal"), nil
	}
	return marshalDecimal(anyDecimal, n.Number)
}

func (n *NumberOrNormal) UnmarshalText(b []byte) error {
	v, err := ParseNumberOrNormal(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// PositiveIntegerOrEmpty is a positive integer or the empty string. The
// integer reading is tried first.
type PositiveIntegerOrEmpty struct {
	Integer int
	Empty   bool
}

var positiveIntegerOrEmpty = union.Must("positive-integer-or-empty",
	union.Candidate[PositiveIntegerOrEmpty]{Shape: "positive-integer", Parse: func(raw string) (PositiveIntegerOrEmpty, error) {
		v, err := constraint.ParseInt(positiveInteger, raw)
		if err != nil {
			return PositiveIntegerOrEmpty{}, err
		}
		return PositiveIntegerOrEmpty{Integer: int(v)}, nil
	}},
	union.Candidate[PositiveIntegerOrEmpty]{Shape: "empty", Parse: func(raw string) (PositiveIntegerOrEmpty, error) {
		if err := emptyKeyword.Check(raw); err != nil {
			return PositiveIntegerOrEmpty{}, err
		}
		return PositiveIntegerOrEmpty{Empty: true}, nil
	}},
)

func ParsePositiveIntegerOrEmpty(raw string) (PositiveIntegerOrEmpty, error) {
	v, _, err := positiveIntegerOrEmpty.Resolve(raw)
	return v, err
}

func (p PositiveIntegerOrEmpty) Shape() string {
	if p.Empty {
		return "empty"
	}
	return "positive-integer"
}

func (p PositiveIntegerOrEmpty) MarshalText() ([]byte, error) {
	if p.Empty {
		return []byte{}, nil
	}
	return marshalInt(positiveInteger, p.Integer)
}

func (p *PositiveIntegerOrEmpty) UnmarshalText(b []byte) error {
	v, err := ParsePositiveIntegerOrEmpty(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// YesNoNumber is "yes", "no" or a decimal. The yes-no reading is tried
// first.
type YesNoNumber struct {
	YesNo    YesNo
	Number   float64
	IsNumber bool
}

var yesNoNumber = union.Must("yes-no-number",
	union.Candidate[YesNoNumber]{Shape: "yes-no", Parse: func(raw string) (YesNoNumber, error) {
		v, err := enum.Decode(yesNoLabels, raw)
		if err != nil {
			return YesNoNumber{}, err
		}
		return YesNoNumber{YesNo: v}, nil
	}},
	union.Candidate[YesNoNumber]{Shape: "decimal", Parse: func(raw string) (YesNoNumber, error) {
		v, err := constraint.ParseDecimal(anyDecimal, raw)
		if err != nil {
			return YesNoNumber{}, err
		}
		return YesNoNumber{Number: v, IsNumber: true}, nil
	}},
)

func ParseYesNoNumber(raw string) (YesNoNumber, error) {
	v, _, err := yesNoNumber.Resolve(raw)
	return v, err
}

func (y YesNoNumber) Shape() string {
	if y.IsNumber {
		return "decimal"
	}
	return "yes-no"
}

func (y YesNoNumber) MarshalText() ([]byte, error) {
	if y.IsNumber {
		return marshalDecimal(anyDecimal, y.Number)
	}
	return y.YesNo.MarshalText()
}

func (y *YesNoNumber) UnmarshalText(b []byte) error {
	v, err := ParseYesNoNumber(string(b))
	if err != nil {
		return err
	}
	*y = v
	return nil
}

// FontSize is a point size or a CSS font size keyword. The point size is
// tried first.
type FontSize struct {
	Points float64
	CSS    CSSFontSize
	IsCSS  bool
}

var fontSize = union.Must("font-size",
	union.Candidate[FontSize]{Shape: "decimal", Parse: func(raw string) (FontSize, error) {
		v, err := constraint.ParseDecimal(anyDecimal, raw)
		if err != nil {
			return FontSize{}, err
		}
		return FontSize{Points: v}, nil
	}},
	union.Candidate[FontSize]{Shape: "css-font-size", Parse: func(raw string) (FontSize, error) {
		v, err := enum.Decode(cssFontSizeLabels, raw)
		if err != nil {
			return FontSize{}, err
		}
		return FontSize{CSS: v, IsCSS: true}, nil
	}},
)

func ParseFontSize(raw string) (FontSize, error) {
	v, _, err := fontSize.Resolve(raw)
	return v, err
}

func (f FontSize) Shape() string {
	if f.IsCSS {
		return "css-font-size"
	}
	return "decimal"
}

func (f FontSize) MarshalText() ([]byte, error) {
	if f.IsCSS {
		return f.CSS.MarshalText()
	}
	return marshalDecimal(anyDecimal, f.Points)
}

func (f *FontSize) UnmarshalText(b []byte) error {
	v, err := ParseFontSize(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Unions returns the member shapes of every union type by type name, in
// resolution order.
func Unions() map[string][]string {
	return map[string][]string{
		numberOrNormal.Name():         numberOrNormal.Shapes(),
		positiveIntegerOrEmpty.Name(): positiveIntegerOrEmpty.Shapes(),
		yesNoNumber.Name():            yesNoNumber.Shapes(),
		fontSize.Name():               fontSize.Shapes(),
	}
}
