// Package charset restricts generated candidates to a class of
// permissible characters.
package charset

import (
	"fmt"
	"iter"
	"unicode"
)

// Class reports whether a rune is acceptable in generated output.
type Class func(r rune) bool

var (
	// DNS keeps lowercase letters, digits and hyphen, the characters
	// allowed in a registrable domain label.
	DNS Class = func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || r == '-'
	}

	// Alphanumeric keeps letters and digits from any script.
	Alphanumeric Class = func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}

	// Printable keeps everything Go considers printable.
	Printable Class = unicode.IsPrint

	// Any keeps everything.
	Any Class = func(r rune) bool { return true }
)

// Lookup resolves a class by its configuration name.
func Lookup(name string) (Class, error) {
	switch name {
	case "dns":
		return DNS, nil
	case "alnum":
		return Alphanumeric, nil
	case "print":
		return Printable, nil
	case "any":
		return Any, nil
	}
	return nil, fmt.Errorf("unknown character class %q", name)
}

// Valid reports whether every rune of s belongs to the class.
func Valid(s string, class Class) bool {
	for _, r := range s {
		if !class(r) {
			return false
		}
	}
	return true
}

// Filter narrows a sequence down to the values whose runes all belong
// to the class. The result is as lazy and restartable as the input.
func Filter(seq iter.Seq[string], class Class) iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range seq {
			if !Valid(v, class) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
