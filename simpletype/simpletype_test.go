package simpletype

import (
	"encoding"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/mxl/constraint"
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/label"
	"github.com/signadot/mxl/union"
)

func TestRegisteredTablesRoundTrip(t *testing.T) {
	sets := label.All()
	if len(sets) < 80 {
		t.Fatalf("only %d enumerations registered", len(sets))
	}
	for name, s := range sets {
		for _, l := range s.Labels() {
			v, ok := s.LookupAny(l)
			if !ok {
				t.Errorf("%s: %q not found", name, l)
				continue
			}
			got, ok := s.LabelAny(v)
			if !ok || got != l {
				t.Errorf("%s: got %q want %q", name, got, l)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		dst  encoding.TextUnmarshaler
		in   string
		want any
	}{
		{new(AboveBelow), "below", AboveBelowBelow},
		{new(AccidentalValue), "double-sharp", AccidentalValueDoubleSharp},
		{new(AccidentalValue), "sharp-1", AccidentalValueSharp1},
		{new(AccidentalValue), "three-quarters-flat", AccidentalValueThreeQuartersFlat},
		{new(ArrowDirection), "left right", ArrowDirectionLeftRight},
		{new(ArrowDirection), "northwest", ArrowDirectionNorthwest},
		{new(ClefSign), "G", ClefSignG},
		{new(ClefSign), "TAB", ClefSignTAB},
		{new(ClefSign), "percussion", ClefSignPercussion},
		{new(CSSFontSize), "x-small", CSSFontSizeXSmall},
		{new(CSSFontSize), "xx-large", CSSFontSizeXxLarge},
		{new(GroupBarlineValue), "Mensurstrich", GroupBarlineValueMensurstrich},
		{new(GroupBarlineValue), "yes", GroupBarlineValueYes},
		{new(KindValue), "Neapolitan", KindValueNeapolitan},
		{new(KindValue), "dominant-ninth", KindValueDominantNinth},
		{new(KindValue), "major-13th", KindValueMajor13th},
		{new(KindValue), "suspended-fourth", KindValueSuspendedFourth},
		{new(Membrane), "snare drum snares off", MembraneSnareDrumSnaresOff},
		{new(Metal), "Chinese cymbal", MetalChineseCymbal},
		{new(Metal), "domed gong", MetalDomedGong},
		{new(Metal), "hi-hat", MetalHiHat},
		{new(Metal), "high-hat cymbals", MetalHighHatCymbals},
		{new(Metal), "cowbell", MetalCowbell},
		{new(NoteheadValue), "circle-x", NoteheadValueCircleX},
		{new(NoteheadValue), "inverted triangle", NoteheadValueInvertedTriangle},
		{new(NoteTypeValue), "1024th", NoteTypeValue1024th},
		{new(NoteTypeValue), "32nd", NoteTypeValue32nd},
		{new(NoteTypeValue), "eighth", NoteTypeValueEighth},
		{new(PrincipalVoiceSymbol), "Hauptstimme", PrincipalVoiceSymbolHauptstimme},
		{new(PrincipalVoiceSymbol), "plain", PrincipalVoiceSymbolPlain},
		{new(Step), "A", StepA},
		{new(StickLocation), "cymbal bell", StickLocationCymbalBell},
		{new(Winged), "double-curved", WingedDoubleCurved},
	}
	for _, tc := range tests {
		if err := tc.dst.UnmarshalText([]byte(tc.in)); err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		got := reflect.ValueOf(tc.dst).Elem().Interface()
		if got != tc.want {
			t.Errorf("got %v want %v", got, tc.want)
		}
		b, err := got.(encoding.TextMarshaler).MarshalText()
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if string(b) != tc.in {
			t.Errorf("got %q want %q", b, tc.in)
		}
	}
}

func TestUnknownLabels(t *testing.T) {
	tests := []struct {
		dst encoding.TextUnmarshaler
		in  string
	}{
		{new(GroupBarlineValue), "mensurstrich"},
		{new(ClefSign), "g"},
		{new(ClefSign), "tab"},
		{new(Step), "a"},
		{new(NoteTypeValue), "32th"},
		{new(NoteTypeValue), "eight"},
		{new(Metal), "doomed gong"},
		{new(ArrowDirection), "left-right"},
		{new(AccidentalValue), "sharp1"},
		{new(KindValue), "dominant-rinth"},
		{new(YesNo), "Yes"},
		{new(YesNo), " yes"},
	}
	for _, tc := range tests {
		err := tc.dst.UnmarshalText([]byte(tc.in))
		if !errors.Is(err, enum.ErrUnknownLabel) {
			t.Errorf("%q: got %v want %v", tc.in, err, enum.ErrUnknownLabel)
		}
	}
}

func TestPatternScalarsAnchored(t *testing.T) {
	edges := func(s string) []string {
		return []string{"x" + s, s + " ", s + ","}
	}
	samples := map[string]struct {
		ok  string
		bad []string
	}{
		"color":         {"#800080", edges("#800080")},
		"ending-number": {"1, 2", edges("1, 2")},
		"time-only":     {"1, 3", edges("1, 3")},
		"yyyy-mm-dd":    {"2024-02-29", edges("2024-02-29")},
		// items are free text, so only the separators can break it
		"comma-separated-text": {"Times, serif", []string{",Times, serif", "Times, serif,", "Times,, serif"}},
	}
	for _, name := range Scalars() {
		d, _ := Descriptor(name)
		switch d.Kind() {
		case constraint.PatternText, constraint.CommaList, constraint.DateString:
		default:
			continue
		}
		sample, ok := samples[name]
		if !ok {
			t.Errorf("%s: no sample for %s", name, d.Kind())
			continue
		}
		if err := d.Check(sample.ok); err != nil {
			t.Errorf("%s %q: %v", name, sample.ok, err)
		}
		for _, in := range sample.bad {
			if err := d.Check(in); !errors.Is(err, constraint.ErrViolation) {
				t.Errorf("%s %q: got %v want %v", name, in, err, constraint.ErrViolation)
			}
		}
	}
}

func TestScalars(t *testing.T) {
	tests := []struct {
		dst  encoding.TextUnmarshaler
		in   string
		want any
		err  error
	}{
		{new(Midi16), "16", Midi16(16), nil},
		{new(Midi16), "0", nil, constraint.ErrViolation},
		{new(Midi16), "sixteen", nil, constraint.ErrMalformedNumber},
		{new(Midi16384), "16384", Midi16384(16384), nil},
		{new(Octave), "9", Octave(9), nil},
		{new(Octave), "10", nil, constraint.ErrViolation},
		{new(Fifths), "-7", Fifths(-7), nil},
		{new(Percent), "100", Percent(100), nil},
		{new(Percent), "100.0001", nil, constraint.ErrViolation},
		{new(Percent), "-1", nil, constraint.ErrViolation},
		{new(PositiveDivisions), "0", nil, constraint.ErrViolation},
		{new(PositiveDivisions), "0.5", PositiveDivisions(0.5), nil},
		{new(TrillBeats), "1.5", nil, constraint.ErrViolation},
		{new(TrillBeats), "2", TrillBeats(2), nil},
		{new(RotationDegrees), "-180", RotationDegrees(-180), nil},
		{new(Tenths), " 5", nil, constraint.ErrMalformedNumber},
		{new(Color), "#800080", Color("#800080"), nil},
		{new(Color), "#40800080", Color("#40800080"), nil},
		{new(Color), "#80080", nil, constraint.ErrViolation},
		{new(Color), "#8000807", nil, constraint.ErrViolation},
		{new(Color), "#ff0000", nil, constraint.ErrViolation},
		{new(EndingNumber), "1, 2", EndingNumber("1, 2"), nil},
		{new(EndingNumber), "", EndingNumber(""), nil},
		{new(EndingNumber), "  ", EndingNumber("  "), nil},
		{new(EndingNumber), "01", nil, constraint.ErrViolation},
		{new(TimeOnly), "1, 3", TimeOnly("1, 3"), nil},
		{new(TimeOnly), "3, 1", nil, constraint.ErrViolation},
		{new(YYYYMMDD), "2024-02-29", YYYYMMDD("2024-02-29"), nil},
		{new(YYYYMMDD), "2023-02-29", nil, constraint.ErrViolation},
		{new(CommaSeparatedText), "Times, serif", CommaSeparatedText("Times, serif"), nil},
		{new(CommaSeparatedText), "Times,,serif", nil, constraint.ErrViolation},
	}
	for _, tc := range tests {
		err := tc.dst.UnmarshalText([]byte(tc.in))
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%T %q: got %v want %v", tc.dst, tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%T %q: %v", tc.dst, tc.in, err)
			continue
		}
		if got := reflect.ValueOf(tc.dst).Elem().Interface(); got != tc.want {
			t.Errorf("got %v want %v", got, tc.want)
		}
	}
}

func TestMarshalOutOfRange(t *testing.T) {
	if _, err := Midi16(17).MarshalText(); !errors.Is(err, constraint.ErrViolation) {
		t.Errorf("got %v want %v", err, constraint.ErrViolation)
	}
	b, err := Percent(12.5).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "12.5" {
		t.Errorf("got %q want %q", b, "12.5")
	}
}

func TestTextHelpers(t *testing.T) {
	times, err := TimeOnly("1, 2,4").Times()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 4}, times); diff != "" {
		t.Errorf("times (-want +got):\n%s", diff)
	}
	nums, err := EndingNumber("1,2").Numbers()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, nums); diff != "" {
		t.Errorf("numbers (-want +got):\n%s", diff)
	}
	if nums, err := EndingNumber(" ").Numbers(); err != nil || nums != nil {
		t.Errorf("got %v %v", nums, err)
	}
	if diff := cmp.Diff([]string{"Times", "serif"}, CommaSeparatedText("Times, serif").Items()); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestUnions(t *testing.T) {
	t.Run("number-or-normal", func(t *testing.T) {
		v, err := ParseNumberOrNormal("42")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(NumberOrNormal{Number: 42}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		v, err = ParseNumberOrNormal("normal")
		if err != nil {
			t.Fatal(err)
		}
		if v.Shape() != "normal" {
			t.Errorf("got %s want normal", v.Shape())
		}
		_, err = ParseNumberOrNormal("abc")
		if !errors.Is(err, union.ErrUnresolved) {
			t.Errorf("got %v want %v", err, union.ErrUnresolved)
		}
	})
	t.Run("positive-integer-or-empty", func(t *testing.T) {
		v, err := ParsePositiveIntegerOrEmpty("5")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(PositiveIntegerOrEmpty{Integer: 5}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		v, err = ParsePositiveIntegerOrEmpty("")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(PositiveIntegerOrEmpty{Empty: true}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		for _, in := range []string{"-5", "0", " ", "five"} {
			if _, err := ParsePositiveIntegerOrEmpty(in); !errors.Is(err, union.ErrUnresolved) {
				t.Errorf("%q: got %v want %v", in, err, union.ErrUnresolved)
			}
		}
		var ue *union.UnresolvedError
		_, err = ParsePositiveIntegerOrEmpty("-5")
		if !errors.As(err, &ue) {
			t.Fatalf("got %T", err)
		}
		if diff := cmp.Diff([]string{"positive-integer", "empty"}, ue.Tried); diff != "" {
			t.Errorf("tried (-want +got):\n%s", diff)
		}
		if !errors.Is(err, constraint.ErrViolation) {
			t.Errorf("range violation not among causes: %v", err)
		}
	})
	t.Run("yes-no-number", func(t *testing.T) {
		v, err := ParseYesNoNumber("yes")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(YesNoNumber{YesNo: YesNoYes}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		v, err = ParseYesNoNumber("2.5")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(YesNoNumber{Number: 2.5, IsNumber: true}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		if _, err := ParseYesNoNumber("maybe"); !errors.Is(err, union.ErrUnresolved) {
			t.Errorf("got %v want %v", err, union.ErrUnresolved)
		}
	})
	t.Run("font-size", func(t *testing.T) {
		v, err := ParseFontSize("12")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(FontSize{Points: 12}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		v, err = ParseFontSize("x-large")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(FontSize{CSS: CSSFontSizeXLarge, IsCSS: true}, v); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		b, err := v.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "x-large" {
			t.Errorf("got %q want %q", b, "x-large")
		}
	})
}

func TestUnionsListing(t *testing.T) {
	want := map[string][]string{
		"number-or-normal":          {"decimal", "normal"},
		"positive-integer-or-empty": {"positive-integer", "empty"},
		"yes-no-number":             {"yes-no", "decimal"},
		"font-size":                 {"decimal", "css-font-size"},
	}
	if diff := cmp.Diff(want, Unions()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDescriptors(t *testing.T) {
	d, ok := Descriptor("midi-16")
	if !ok {
		t.Fatal("midi-16 not described")
	}
	if d.Kind() != constraint.BoundedInteger {
		t.Errorf("got %s want %s", d.Kind(), constraint.BoundedInteger)
	}
	for _, name := range []string{"color", "percent", "time-only", "yyyy-mm-dd", "mode", "ending-number"} {
		if _, ok := Descriptor(name); !ok {
			t.Errorf("%s not described", name)
		}
	}
	if n := len(Scalars()); n != 31 {
		t.Errorf("got %d scalars want 31", n)
	}
}

func TestConcurrentDecode(t *testing.T) {
	const n = 64
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				var m Metal
				if err := m.UnmarshalText([]byte("Chinese cymbal")); err != nil {
					errs <- err
					return
				}
				if m != MetalChineseCymbal {
					errs <- errors.New("wrong variant " + m.String())
					return
				}
				if _, err := ParseNumberOrNormal("normal"); err != nil {
					errs <- err
					return
				}
				var c Color
				if err := c.UnmarshalText([]byte("#800080")); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
