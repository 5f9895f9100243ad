package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// goName derives an exported Go identifier from an IRI local name or a
// context term. Separators common in vocabulary terms (dashes, dots,
// colons) become word boundaries.
func goName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '.' || r == ':' || r == ' ' || r == '_':
			b.WriteRune('_')
		}
	}
	name := inflect.Camelize(b.String())
	if name == "" {
		return "X"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "X" + name
	}
	return name
}

// unexportedName returns the unexported form of a Go identifier.
func unexportedName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
