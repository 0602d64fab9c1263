package label

import (
	"fmt"
	"strings"
	"unicode"
)

// Case is the default spelling rule of a table. It derives a wire label from
// a variant's identifier and only applies to entries without an explicit
// label.
type Case int

const (
	// Verbatim uses the identifier unchanged.
	Verbatim Case = iota
	// Lower lowercases the identifier: "Northwest" -> "northwest".
	Lower
	// Kebab splits the identifier before each upper case letter, joins the
	// words with '-' and lowercases them: "DoubleSharp" -> "double-sharp".
	// Digits do not start a word: "Sharp1" -> "sharp1".
	Kebab
)

func (c Case) String() string {
	s, ok := map[Case]string{
		Verbatim: "verbatim",
		Lower:    "lowercase",
		Kebab:    "kebab-case",
	}[c]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown case %d>", int(c))
}

func (c Case) Apply(name string) string {
	switch c {
	case Lower:
		return strings.ToLower(name)
	case Kebab:
		return kebab(name)
	default:
		return name
	}
}

func kebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
