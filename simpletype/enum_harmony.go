package simpletype

import (
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/label"
)

type DegreeSymbolValue int

const (
	DegreeSymbolValueMajor DegreeSymbolValue = iota
	DegreeSymbolValueMinor
	DegreeSymbolValueAugmented
	DegreeSymbolValueDiminished
	DegreeSymbolValueHalfDiminished
)

var degreeSymbolValueLabels = label.Define("degree-symbol-value", label.Kebab,
	label.E(DegreeSymbolValueMajor, "Major"),
	label.E(DegreeSymbolValueMinor, "Minor"),
	label.E(DegreeSymbolValueAugmented, "Augmented"),
	label.E(DegreeSymbolValueDiminished, "Diminished"),
	label.E(DegreeSymbolValueHalfDiminished, "HalfDiminished"),
)

func (v DegreeSymbolValue) String() string {
	return enum.String(degreeSymbolValueLabels, v)
}

func (v DegreeSymbolValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(degreeSymbolValueLabels, v)
}

func (v *DegreeSymbolValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(degreeSymbolValueLabels, v, b)
}

// DegreeTypeValue tells whether a degree adds to, alters or subtracts from the
// chord kind.
type DegreeTypeValue int

const (
	DegreeTypeValueAdd DegreeTypeValue = iota
	DegreeTypeValueAlter
	DegreeTypeValueSubtract
)

var degreeTypeValueLabels = label.Define("degree-type-value", label.Lower,
	label.E(DegreeTypeValueAdd, "Add"),
	label.E(DegreeTypeValueAlter, "Alter"),
	label.E(DegreeTypeValueSubtract, "Subtract"),
)

func (v DegreeTypeValue) String() string {
	return enum.String(degreeTypeValueLabels, v)
}

func (v DegreeTypeValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(degreeTypeValueLabels, v)
}

func (v *DegreeTypeValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(degreeTypeValueLabels, v, b)
}

type HarmonyType int

const (
	HarmonyTypeExplicit HarmonyType = iota
	HarmonyTypeImplied
	HarmonyTypeAlternate
)

var harmonyTypeLabels = label.Define("harmony-type", label.Lower,
	label.E(HarmonyTypeExplicit, "Explicit"),
	label.E(HarmonyTypeImplied, "Implied"),
	label.E(HarmonyTypeAlternate, "Alternate"),
)

func (v HarmonyType) String() string {
	return enum.String(harmonyTypeLabels, v)
}

func (v HarmonyType) MarshalText() ([]byte, error) {
	return enum.MarshalText(harmonyTypeLabels, v)
}

func (v *HarmonyType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(harmonyTypeLabels, v, b)
}

// KindValue is the kind of a chord in a harmony element. The augmented sixth
// chords use their national names, capitalised.
type KindValue int

const (
	KindValueMajor KindValue = iota
	KindValueMinor
	KindValueAugmented
	KindValueDiminished
	KindValueDominant
	KindValueMajorSeventh
	KindValueMinorSeventh
	KindValueDiminishedSeventh
	KindValueAugmentedSeventh
	KindValueHalfDiminished
	KindValueMajorMinor
	KindValueMajorSixth
	KindValueMinorSixth
	KindValueDominantNinth
	KindValueMajorNinth
	KindValueMinorNinth
	KindValueDominant11th
	KindValueMajor11th
	KindValueMinor11th
	KindValueDominant13th
	KindValueMajor13th
	KindValueMinor13th
	KindValueSuspendedSecond
	KindValueSuspendedFourth
	KindValueNeapolitan
	KindValueItalian
	KindValueFrench
	KindValueGerman
	KindValuePedal
	KindValuePower
	KindValueTristan
	KindValueOther
	KindValueNone
)

var kindValueLabels = label.Define("kind-value", label.Kebab,
	label.E(KindValueMajor, "Major"),
	label.E(KindValueMinor, "Minor"),
	label.E(KindValueAugmented, "Augmented"),
	label.E(KindValueDiminished, "Diminished"),
	label.E(KindValueDominant, "Dominant"),
	label.E(KindValueMajorSeventh, "MajorSeventh"),
	label.E(KindValueMinorSeventh, "MinorSeventh"),
	label.E(KindValueDiminishedSeventh, "DiminishedSeventh"),
	label.E(KindValueAugmentedSeventh, "AugmentedSeventh"),
	label.E(KindValueHalfDiminished, "HalfDiminished"),
	label.E(KindValueMajorMinor, "MajorMinor"),
	label.E(KindValueMajorSixth, "MajorSixth"),
	label.E(KindValueMinorSixth, "MinorSixth"),
	label.E(KindValueDominantNinth, "DominantNinth"),
	label.E(KindValueMajorNinth, "MajorNinth"),
	label.E(KindValueMinorNinth, "MinorNinth"),
	label.As(KindValueDominant11th, "Dominant11th", "dominant-11th"),
	label.As(KindValueMajor11th, "Major11th", "major-11th"),
	label.As(KindValueMinor11th, "Minor11th", "minor-11th"),
	label.As(KindValueDominant13th, "Dominant13th", "dominant-13th"),
	label.As(KindValueMajor13th, "Major13th", "major-13th"),
	label.As(KindValueMinor13th, "Minor13th", "minor-13th"),
	label.E(KindValueSuspendedSecond, "SuspendedSecond"),
	label.E(KindValueSuspendedFourth, "SuspendedFourth"),
	label.As(KindValueNeapolitan, "Neapolitan", "Neapolitan"),
	label.As(KindValueItalian, "Italian", "Italian"),
	label.As(KindValueFrench, "French", "French"),
	label.As(KindValueGerman, "German", "German"),
	label.E(KindValuePedal, "Pedal"),
	label.E(KindValuePower, "Power"),
	label.As(KindValueTristan, "Tristan", "Tristan"),
	label.E(KindValueOther, "Other"),
	label.E(KindValueNone, "None"),
)

func (v KindValue) String() string {
	return enum.String(kindValueLabels, v)
}

func (v KindValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(kindValueLabels, v)
}

func (v *KindValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(kindValueLabels, v, b)
}
