package wire

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/mxl/ir"
)

// kv is an ordered object in plain form.
type kv struct {
	K string
	V any
}

type text struct {
	Fields []kv
	Text   string
}

func plain(n *ir.Node) any {
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.StringType:
		return n.String
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = plain(v)
		}
		return res
	}
	res := make([]kv, len(n.Fields))
	for i, f := range n.Fields {
		res[i] = kv{K: f, V: plain(n.Values[i])}
	}
	if n.String != "" {
		return text{Fields: res, Text: n.String}
	}
	return res
}

func TestFromXML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!-- attributes of the first measure -->
<attributes xmlns="http://www.musicxml.org">
  <divisions>24</divisions>
  <key print-object="no">
    <fifths>-3</fifths>
    <mode>minor</mode>
  </key>
  <time><beats>6</beats><beat-type>8</beat-type></time>
  <clef number="1"><sign>G</sign></clef>
  <clef number="2"><sign>F</sign></clef>
  <accidental cautionary="yes">flat</accidental>
  <ending number=" "/>
  <empty></empty>
</attributes>`
	node, err := FromXML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []kv{
		{"divisions", "24"},
		{"key", []kv{{"print-object", "no"}, {"fifths", "-3"}, {"mode", "minor"}}},
		{"time", []kv{{"beats", "6"}, {"beat-type", "8"}}},
		{"clef", []any{
			[]kv{{"number", "1"}, {"sign", "G"}},
			[]kv{{"number", "2"}, {"sign", "F"}},
		}},
		{"accidental", text{Fields: []kv{{"cautionary", "yes"}}, Text: "flat"}},
		{"ending", []kv{{"number", " "}}},
		{"empty", ""},
	}
	if diff := cmp.Diff(any(want), plain(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	clef := ir.Get(node, "clef")
	if got, want := clef.Values[1].Values[1].Path(), "$.clef[1].sign"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestFromXMLElement(t *testing.T) {
	name, node, err := FromXMLElement([]byte(`<m:sound xmlns:m="urn:x" tempo="60"/>`))
	if err != nil {
		t.Fatal(err)
	}
	if name != "sound" {
		t.Errorf("got %q want %q", name, "sound")
	}
	if diff := cmp.Diff(any([]kv{{"tempo", "60"}}), plain(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromXMLErrors(t *testing.T) {
	for _, doc := range []string{"", "<!-- nothing -->", "<a><b></a>", "<a/><b/>"} {
		if _, err := FromXML([]byte(doc)); err == nil {
			t.Errorf("%q: expected error", doc)
		}
	}
	if _, err := FromXML(nil); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("got %v want %v", err, ErrEmptyDocument)
	}
}

func TestFromYAML(t *testing.T) {
	doc := `
divisions: 24
key:
  fifths: -3
  mode: minor
  print-object: no
time:
  beats: "6"
  beat-type: 08
  symbol: ~
tempo: 1.50
clef:
  - sign: G
  - sign: F
words: |
  Allegro
`
	node, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []kv{
		{"divisions", "24"},
		{"key", []kv{{"fifths", "-3"}, {"mode", "minor"}, {"print-object", "no"}}},
		{"time", []kv{{"beats", "6"}, {"beat-type", "08"}, {"symbol", nil}}},
		{"tempo", "1.50"},
		{"clef", []any{[]kv{{"sign", "G"}}, []kv{{"sign", "F"}}}},
		{"words", "Allegro\n"},
	}
	if diff := cmp.Diff(any(want), plain(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromYAMLErrors(t *testing.T) {
	if _, err := FromYAML([]byte("a: *missing")); err == nil {
		t.Error("expected error for alias")
	}
	if _, err := FromYAML([]byte("a: [")); err == nil {
		t.Error("expected syntax error")
	}
}

func TestFromTOML(t *testing.T) {
	doc := `
divisions = 24

[key]
mode = "minor"
fifths = -3

[time]
beats = 6
beat-type = 8

[[clef]]
sign = "G"
line = 2

[[clef]]
sign = "F"
line = 4
`
	node, err := FromTOML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []kv{
		{"divisions", "24"},
		{"key", []kv{{"mode", "minor"}, {"fifths", "-3"}}},
		{"time", []kv{{"beats", "6"}, {"beat-type", "8"}}},
		{"clef", []any{
			[]kv{{"sign", "G"}, {"line", "2"}},
			[]kv{{"sign", "F"}, {"line", "4"}},
		}},
	}
	if diff := cmp.Diff(any(want), plain(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := FromTOML([]byte("a = ")); err == nil {
		t.Error("expected syntax error")
	}
}

func TestFromMap(t *testing.T) {
	node := FromMap(map[string]any{
		"mode":   "major",
		"fifths": 2,
		"time":   map[string]any{"beats": "3"},
		"staves": []any{1.5, nil},
	})
	want := []kv{
		{"fifths", "2"},
		{"mode", "major"},
		{"staves", []any{"1.5", nil}},
		{"time", []kv{{"beats", "3"}}},
	}
	if diff := cmp.Diff(any(want), plain(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	beats := ir.Get(ir.Get(node, "time"), "beats")
	if got, want := beats.Path(), "$.time.beats"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
