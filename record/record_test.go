package record

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/mxl/constraint"
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/ir"
	"github.com/signadot/mxl/simpletype"
)

type key struct {
	Fifths simpletype.Fifths
	Mode   simpletype.Mode
}

type timeSig struct {
	Beats    int
	BeatType int `mxl:"default=4"`
}

type attrs struct {
	Divisions simpletype.PositiveDivisions
	Key       key
	Time      timeSig
}

type position struct {
	DefaultX *simpletype.Tenths
	DefaultY *simpletype.Tenths
}

type accidental struct {
	Value      simpletype.AccidentalValue `mxl:"text"`
	Cautionary *simpletype.YesNo
	position
}

func obj(kvs ...any) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	for i := 0; i < len(kvs); i += 2 {
		var v *ir.Node
		switch x := kvs[i+1].(type) {
		case string:
			v = ir.FromString(x)
		case *ir.Node:
			v = x
		}
		res.Append(kvs[i].(string), v)
	}
	return res
}

func TestDecode(t *testing.T) {
	node := obj(
		"divisions", "24",
		"key", obj("fifths", "-3", "mode", "minor"),
		"time", obj("beats", "6", "beat-type", "8"),
	)
	var got attrs
	if err := Decode(node, &got); err != nil {
		t.Fatal(err)
	}
	want := attrs{
		Divisions: 24,
		Key:       key{Fifths: -3, Mode: "minor"},
		Time:      timeSig{Beats: 6, BeatType: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDefault(t *testing.T) {
	var got timeSig
	if err := Decode(obj("beats", "3"), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(timeSig{Beats: 3, BeatType: 4}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	type badDefault struct {
		Channel simpletype.Midi16 `mxl:"default=0"`
	}
	var bd badDefault
	err := Decode(obj(), &bd)
	if !errors.Is(err, constraint.ErrViolation) {
		t.Errorf("got %v want %v", err, constraint.ErrViolation)
	}
}

func TestMissing(t *testing.T) {
	var got key
	err := Decode(obj("mode", "major"), &got)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("got %v want %v", err, ErrMissingRequiredField)
	}
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) || mfe.Path != "$.fifths" {
		t.Errorf("got %v", err)
	}
	if got.Mode != "major" {
		t.Errorf("valid sibling not populated: %+v", got)
	}
}

func TestAllErrorsReported(t *testing.T) {
	node := obj(
		"divisions", "0",
		"key", obj("fifths", "three", "mode", "minor"),
		"time", obj("beat-type", "8", "symbol", "common"),
	)
	var got attrs
	err := Decode(node, &got)
	errs := Errors(err)
	paths := make([]string, len(errs))
	for i, e := range errs {
		switch e := e.(type) {
		case *FieldError:
			paths[i] = e.Path
		case *MissingFieldError:
			paths[i] = e.Path
		default:
			t.Errorf("unexpected %T: %v", e, e)
		}
	}
	want := []string{"$.divisions", "$.key.fifths", "$.time.beats", "$.time.symbol"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
	if !errors.Is(errs[0], constraint.ErrViolation) {
		t.Errorf("divisions: got %v", errs[0])
	}
	if !errors.Is(errs[1], constraint.ErrMalformedNumber) {
		t.Errorf("fifths: got %v", errs[1])
	}
	if !errors.Is(errs[3], ErrUnknownField) {
		t.Errorf("symbol: got %v", errs[3])
	}
	if got.Key.Mode != "minor" || got.Time.BeatType != 8 {
		t.Errorf("valid fields not populated: %+v", got)
	}
}

func TestStopOnFirstError(t *testing.T) {
	node := obj("divisions", "0", "key", obj("fifths", "x", "mode", "minor"))
	var got attrs
	err := Decode(node, &got, StopOnFirstError(true))
	if n := len(Errors(err)); n != 1 {
		t.Errorf("got %d errors want 1: %v", n, err)
	}
}

func TestAllowUnknownAndPrefix(t *testing.T) {
	var got key
	err := Decode(obj("fifths", "2", "mode", "major", "color", "#FF0000"), &got, AllowUnknown(true))
	if err != nil {
		t.Fatal(err)
	}
	err = Decode(obj("fifths", "x", "mode", "major"), &got, PathPrefix("$.part[0].key"))
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Path != "$.part[0].key.fifths" || fe.Raw != "x" {
		t.Errorf("got %v", err)
	}
}

func TestTextAndEmbedded(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		want accidental
	}{
		{
			name: "text only",
			in:   ir.FromString("sharp"),
			want: accidental{Value: simpletype.AccidentalValueSharp},
		},
		{
			name: "attributes and text",
			in: func() *ir.Node {
				n := obj("cautionary", "yes", "default-x", "-5.5")
				n.String = "flat-flat"
				return n
			}(),
			want: accidental{
				Value:      simpletype.AccidentalValueFlatFlat,
				Cautionary: ptr(simpletype.YesNoYes),
				position:   position{DefaultX: ptr(simpletype.Tenths(-5.5))},
			},
		},
		{
			name: "text as field",
			in:   obj("value", "natural", "default-y", "10"),
			want: accidental{
				Value:    simpletype.AccidentalValueNatural,
				position: position{DefaultY: ptr(simpletype.Tenths(10))},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got accidental
			if err := Decode(tc.in, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(accidental{})); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	var got accidental
	err := Decode(ir.FromString("sharp-sharp-sharp"), &got)
	if !errors.Is(err, enum.ErrUnknownLabel) {
		t.Errorf("got %v want %v", err, enum.ErrUnknownLabel)
	}
}

func TestEmptyElement(t *testing.T) {
	var pos position
	for _, in := range []string{"", "\n  "} {
		if err := Decode(ir.FromString(in), &pos); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}

	var k key
	errs := Errors(Decode(ir.FromString(""), &k))
	if len(errs) != 2 {
		t.Fatalf("got %d errors want 2: %v", len(errs), errs)
	}
	for i, want := range []string{"$.fifths", "$.mode"} {
		var mf *MissingFieldError
		if !errors.As(errs[i], &mf) || mf.Path != want {
			t.Errorf("got %v want missing %s", errs[i], want)
		}
	}

	if err := Decode(ir.FromString("C major"), &k); !errors.Is(err, ErrNotObject) {
		t.Errorf("got %v want %v", err, ErrNotObject)
	}
}

func TestMissingText(t *testing.T) {
	for _, in := range []*ir.Node{obj("cautionary", "yes"), ir.FromString(" ")} {
		var got accidental
		err := Decode(in, &got)
		errs := Errors(err)
		if len(errs) != 1 || !errors.Is(errs[0], ErrMissingRequiredField) {
			t.Errorf("got %v want %v", err, ErrMissingRequiredField)
		}
	}

	type words struct {
		Value string `mxl:"text"`
		Lang  *string
	}
	var got words
	if err := Decode(obj("lang", "it"), &got); err != nil {
		t.Fatal(err)
	}
	if got.Value != "" || got.Lang == nil || *got.Lang != "it" {
		t.Errorf("got %+v", got)
	}
}

func TestNativeKinds(t *testing.T) {
	type native struct {
		I8    int8
		U     uint
		F     float32
		B     bool
		S     string
		Items []int `mxl:"field=item"`
	}
	var got native
	node := obj("i8", "-128", "u", "7", "f", "1.5", "b", "1", "s", " x ",
		"item", ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.FromString("2")}))
	if err := Decode(node, &got); err != nil {
		t.Fatal(err)
	}
	want := native{I8: -128, U: 7, F: 1.5, B: true, S: " x ", Items: []int{1, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	err := Decode(obj("i8", "128", "u", "-1", "f", "1e3", "b", "yes", "s", "", "item", "3"), &got)
	errs := Errors(err)
	if len(errs) != 4 {
		t.Fatalf("got %d errors: %v", len(errs), err)
	}
	if diff := cmp.Diff([]int{3}, got.Items); diff != "" {
		t.Errorf("single item (-want +got):\n%s", diff)
	}
	var fe *FieldError
	if !errors.As(errs[3], &fe) || fe.Path != "$.b" {
		t.Errorf("got %v", errs[3])
	}
}

func TestInvalidTarget(t *testing.T) {
	var k key
	for _, v := range []any{k, (*key)(nil), new(int)} {
		if err := Decode(obj(), v); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("%T: got %v want %v", v, err, ErrInvalidTarget)
		}
	}
	if err := Decode(ir.FromSlice(nil), &k); !errors.Is(err, ErrNotObject) {
		t.Errorf("got %v want %v", err, ErrNotObject)
	}
}

func TestParseStructTag(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]string
	}{
		{"", map[string]string{}},
		{"optional", map[string]string{"optional": ""}},
		{"field=beat-type,default=4", map[string]string{"field": "beat-type", "default": "4"}},
		{"default='light barline', optional", map[string]string{"default": "light barline", "optional": ""}},
		{`default="a,b"`, map[string]string{"default": "a,b"}},
	}
	for _, tc := range tests {
		got, err := ParseStructTag(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
	for _, in := range []string{"=x", "default='x"} {
		if _, err := ParseStructTag(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestGetStructFields(t *testing.T) {
	fields, err := GetStructFields(reflect.TypeFor[accidental]())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range fields {
		names = append(names, f.WireName)
	}
	if diff := cmp.Diff([]string{"value", "cautionary", "default-x", "default-y"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 0}, fields[2].Index); diff != "" {
		t.Errorf("index (-want +got):\n%s", diff)
	}

	type conflict struct {
		A int `mxl:"field=x"`
		B int `mxl:"field=x"`
	}
	if _, err := GetStructFields(reflect.TypeFor[conflict]()); err == nil {
		t.Error("expected conflict error")
	}
	type badKey struct {
		A int `mxl:"optinal"`
	}
	if _, err := GetStructFields(reflect.TypeFor[badKey]()); err == nil {
		t.Error("expected unknown key error")
	}
}

func TestConcurrentDecode(t *testing.T) {
	node := obj("fifths", "1", "mode", "major")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got key
			if err := Decode(node, &got); err != nil {
				t.Error(err)
				return
			}
			if got.Fifths != 1 {
				t.Errorf("got %d want 1", got.Fifths)
			}
		}()
	}
	wg.Wait()
}

func ptr[T any](v T) *T {
	return &v
}
