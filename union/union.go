// Package union resolves untagged unions: a token is tried against each
// member shape in a fixed order and the first shape which accepts it wins.
//
// The order is part of a union's definition. Text such as "5" would satisfy
// both a numeric member and a permissive text member, and only the declared
// order decides between them.
package union

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/mxl/debug"
)

var (
	ErrUnresolved     = errors.New("no union member accepts value")
	ErrNoCandidates   = errors.New("union without members")
	ErrDuplicateShape = errors.New("duplicate union member")
)

// Candidate is one member shape of a union producing values of type U.
type Candidate[U any] struct {
	Shape string
	Parse func(raw string) (U, error)
}

// List is an ordered, immutable candidate list.
type List[U any] struct {
	name       string
	candidates []Candidate[U]
}

func New[U any](name string, candidates ...Candidate[U]) (*List[U], error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidates, name)
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c.Shape] {
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicateShape, name, c.Shape)
		}
		if c.Parse == nil {
			return nil, fmt.Errorf("union %s: member %s has no parser", name, c.Shape)
		}
		seen[c.Shape] = true
	}
	cs := make([]Candidate[U], len(candidates))
	copy(cs, candidates)
	return &List[U]{name: name, candidates: cs}, nil
}

func Must[U any](name string, candidates ...Candidate[U]) *List[U] {
	l, err := New(name, candidates...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *List[U]) Name() string { return l.name }

// Shapes returns the member shapes in resolution order.
func (l *List[U]) Shapes() []string {
	res := make([]string, len(l.candidates))
	for i := range l.candidates {
		res[i] = l.candidates[i].Shape
	}
	return res
}

// Resolve returns the value produced by the first member accepting raw
// together with that member's shape.
func (l *List[U]) Resolve(raw string) (U, string, error) {
	var causes []error
	for _, c := range l.candidates {
		v, err := c.Parse(raw)
		if err == nil {
			if debug.Union() {
				debug.Logf("union %s %s as %s after %d", l.name, debug.Raw(raw), c.Shape, len(causes))
			}
			return v, c.Shape, nil
		}
		causes = append(causes, err)
	}
	if debug.Union() {
		debug.Logf("union %s %s unresolved, tried %v", l.name, debug.Raw(raw), l.Shapes())
	}
	var zero U
	return zero, "", &UnresolvedError{Union: l.name, Raw: raw, Tried: l.Shapes(), Causes: causes}
}

// UnresolvedError reports a token rejected by every member. Causes holds
// the rejection of each member in Tried order.
type UnresolvedError struct {
	Union  string
	Raw    string
	Tried  []string
	Causes []error
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s %q: not one of %s", e.Union, e.Raw, strings.Join(e.Tried, ", "))
}

func (e *UnresolvedError) Is(target error) bool {
	return target == ErrUnresolved
}

func (e *UnresolvedError) Unwrap() []error {
	return e.Causes
}
