package label

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySet         = errors.New("empty variant set")
	ErrEmptyLabel       = errors.New("empty label")
	ErrDuplicateLabel   = errors.New("duplicate label")
	ErrDuplicateVariant = errors.New("duplicate variant")
)

// Entry declares one variant of an enumeration. Name is the variant's
// identifier; Label, when set, is the wire label and overrides the table's
// casing rule.
type Entry[V comparable] struct {
	Value V
	Name  string
	Label string
}

// E declares a variant whose label follows the table's casing rule.
func E[V comparable](v V, name string) Entry[V] {
	return Entry[V]{Value: v, Name: name}
}

// As declares a variant with an explicit wire label.
func As[V comparable](v V, name, label string) Entry[V] {
	return Entry[V]{Value: v, Name: name, Label: label}
}

// Table is the immutable label registry of one enumeration: an ordered,
// non-empty set of (variant, label) pairs in which both variants and labels
// are unique.
type Table[V comparable] struct {
	name    string
	rule    Case
	entries []Entry[V]
	byLabel map[string]int
	byValue map[V]int
}

// New builds a table. Labels are resolved once here, explicit labels taking
// precedence over rule.
func New[V comparable](name string, rule Case, entries ...Entry[V]) (*Table[V], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySet, name)
	}
	t := &Table[V]{
		name:    name,
		rule:    rule,
		entries: make([]Entry[V], len(entries)),
		byLabel: make(map[string]int, len(entries)),
		byValue: make(map[V]int, len(entries)),
	}
	for i, e := range entries {
		if e.Label == "" {
			e.Label = rule.Apply(e.Name)
		}
		if e.Label == "" {
			return nil, fmt.Errorf("%w: %s variant %d", ErrEmptyLabel, name, i)
		}
		if j, ok := t.byLabel[e.Label]; ok {
			return nil, fmt.Errorf("%w: %s %q used by %s and %s", ErrDuplicateLabel, name, e.Label, t.entries[j].Name, e.Name)
		}
		if j, ok := t.byValue[e.Value]; ok {
			return nil, fmt.Errorf("%w: %s %s and %s", ErrDuplicateVariant, name, t.entries[j].Name, e.Name)
		}
		t.entries[i] = e
		t.byLabel[e.Label] = i
		t.byValue[e.Value] = i
	}
	return t, nil
}

// Must is like New but panics on error. It is meant for package level
// definitions.
func Must[V comparable](name string, rule Case, entries ...Entry[V]) *Table[V] {
	t, err := New(name, rule, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Define builds a table with Must and registers it.
func Define[V comparable](name string, rule Case, entries ...Entry[V]) *Table[V] {
	t := Must(name, rule, entries...)
	if err := Register(t); err != nil {
		panic(err)
	}
	return t
}

func (t *Table[V]) Name() string { return t.name }
func (t *Table[V]) Rule() Case   { return t.rule }
func (t *Table[V]) Len() int     { return len(t.entries) }

// Label returns the wire label of v.
func (t *Table[V]) Label(v V) (string, bool) {
	i, ok := t.byValue[v]
	if !ok {
		return "", false
	}
	return t.entries[i].Label, true
}

// Lookup returns the variant whose label is exactly label.
func (t *Table[V]) Lookup(label string) (V, bool) {
	i, ok := t.byLabel[label]
	if !ok {
		var zero V
		return zero, false
	}
	return t.entries[i].Value, true
}

// VariantName returns the identifier v was declared with.
func (t *Table[V]) VariantName(v V) (string, bool) {
	i, ok := t.byValue[v]
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

func (t *Table[V]) Contains(label string) bool {
	_, ok := t.byLabel[label]
	return ok
}

// Labels returns the labels in declaration order.
func (t *Table[V]) Labels() []string {
	res := make([]string, len(t.entries))
	for i := range t.entries {
		res[i] = t.entries[i].Label
	}
	return res
}

// Values returns the variants in declaration order.
func (t *Table[V]) Values() []V {
	res := make([]V, len(t.entries))
	for i := range t.entries {
		res[i] = t.entries[i].Value
	}
	return res
}

// Entries returns a copy of the resolved entries.
func (t *Table[V]) Entries() []Entry[V] {
	res := make([]Entry[V], len(t.entries))
	copy(res, t.entries)
	return res
}

// LookupAny is Lookup for callers which only know the table as a Set.
func (t *Table[V]) LookupAny(label string) (any, bool) {
	v, ok := t.Lookup(label)
	if !ok {
		return nil, false
	}
	return v, true
}

// LabelAny is Label for callers which only know the table as a Set.
func (t *Table[V]) LabelAny(v any) (string, bool) {
	vv, ok := v.(V)
	if !ok {
		return "", false
	}
	return t.Label(vv)
}
