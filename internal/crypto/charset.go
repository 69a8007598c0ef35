package crypto

import (
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+"
)

// CharacterClass is a named set of characters a password may be drawn from.
type CharacterClass uint8

// Declaration order is the order alphabets are concatenated in.
const (
	Uppercase CharacterClass = iota
	Lowercase
	Digit
	Symbol
)

// AllClasses lists every character class in definition order.
var AllClasses = []CharacterClass{Uppercase, Lowercase, Digit, Symbol}

// Alphabet returns the fixed, ordered characters of the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digits"
	case Symbol:
		return "symbols"
	}
	return fmt.Sprintf("CharacterClass(%d)", uint8(c))
}

// ParseCharacterClass maps a class name (as produced by String, plus a few
// common aliases) back to its CharacterClass.
func ParseCharacterClass(name string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uppercase", "upper":
		return Uppercase, nil
	case "lowercase", "lower":
		return Lowercase, nil
	case "digits", "digit", "numbers", "number":
		return Digit, nil
	case "symbols", "symbol":
		return Symbol, nil
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// ClassSet is the set of enabled character classes for one request.
type ClassSet uint8

// NewClassSet returns a set containing the given classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is enabled.
func (s ClassSet) Has(c CharacterClass) bool {
	return s&(1<<c) != 0
}

// With returns a copy of s with c enabled.
func (s ClassSet) With(c CharacterClass) ClassSet {
	return s | 1<<c
}

// Without returns a copy of s with c disabled.
func (s ClassSet) Without(c CharacterClass) ClassSet {
	return s &^ (1 << c)
}

// Toggle flips c.
func (s ClassSet) Toggle(c CharacterClass) ClassSet {
	return s ^ 1<<c
}

// Set enables or disables c depending on on.
func (s ClassSet) Set(c CharacterClass, on bool) ClassSet {
	if on {
		return s.With(c)
	}
	return s.Without(c)
}

func (s ClassSet) IsEmpty() bool {
	return s == 0
}

// Classes returns the enabled classes in definition order.
func (s ClassSet) Classes() []CharacterClass {
	out := make([]CharacterClass, 0, len(AllClasses))
	for _, c := range AllClasses {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the enabled class names in definition order.
func (s ClassSet) Names() []string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

func (s ClassSet) String() string {
	return strings.Join(s.Names(), "+")
}

// UnionAlphabet concatenates the alphabets of every enabled class, in
// definition order. An empty set yields an empty alphabet.
func UnionAlphabet(s ClassSet) string {
	var b strings.Builder
	for _, c := range s.Classes() {
		b.WriteString(c.Alphabet())
	}
	return b.String()
}
