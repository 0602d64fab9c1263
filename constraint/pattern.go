package constraint

import (
	"fmt"
	"regexp"
)

// trivialSample is matched against every new pattern together with the empty
// string. An expression accepting both accepts anything and cannot be a
// meaningful restriction.
const trivialSample = "\x00,\x00"

// Pattern is a regular expression matched against the whole token.
type Pattern struct {
	name string
	kind Kind
	expr string
	re   *regexp.Regexp
}

// NewPattern compiles expr anchored at both ends, so that a token is only
// accepted when the expression matches all of it.
func NewPattern(name string, kind Kind, expr string) (*Pattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", name, err)
	}
	if re.MatchString("") && re.MatchString(trivialSample) {
		return nil, fmt.Errorf("%w: %s %q", ErrTrivialPattern, name, expr)
	}
	return &Pattern{name: name, kind: kind, expr: expr, re: re}, nil
}

func MustPattern(name string, kind Kind, expr string) *Pattern {
	p, err := NewPattern(name, kind, expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Kind() Kind   { return p.kind }
func (p *Pattern) Name() string { return p.name }
func (p *Pattern) Expr() string { return p.expr }

func (p *Pattern) Check(raw string) error {
	if p.re.MatchString(raw) {
		return nil
	}
	return &ViolationError{Kind: p.kind, Type: p.name, Raw: raw, Rule: "pattern " + p.expr}
}

// Match returns raw unchanged if it matches p.
func Match(p *Pattern, raw string) (string, error) {
	err := p.Check(raw)
	trace(p.name, raw, err)
	if err != nil {
		return "", err
	}
	return raw, nil
}
