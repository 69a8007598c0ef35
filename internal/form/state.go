// Package form holds the generator form state owned by a presentation layer.
// Every mutation returns a new State; the receiver is never modified.
package form

import (
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/validation"
)

// DefaultClasses is the class selection restored by Reset.
var DefaultClasses = crypto.NewClassSet(crypto.Lowercase, crypto.Digit, crypto.Symbol)

// State is a snapshot of the form.
type State struct {
	Length    string
	Classes   crypto.ClassSet
	Password  string
	Generated bool

	// Err is the result of validating Length; nil means valid.
	Err error
	// Touched is set once the length has been edited since the last reset.
	Touched bool

	length int
}

// Reset returns the default state: empty length, lowercase, digits and
// symbols enabled, nothing generated. The empty length is reported as
// required so generation stays disabled until a length is entered.
func Reset() State {
	s := State{Classes: DefaultClasses}
	s.length, s.Err = validation.ValidateLength(s.Length)
	return s
}

// SetLength stores the raw length input, marks it touched and re-validates it.
func (s State) SetLength(raw string) State {
	s.Length = raw
	s.Touched = true
	s.length, s.Err = validation.ValidateLength(raw)
	return s
}

// Toggle flips one character class.
func (s State) Toggle(c crypto.CharacterClass) State {
	s.Classes = s.Classes.Toggle(c)
	return s
}

// SetClass enables or disables one character class.
func (s State) SetClass(c crypto.CharacterClass, on bool) State {
	s.Classes = s.Classes.Set(c, on)
	return s
}

// CanGenerate reports whether the generate action is enabled.
func (s State) CanGenerate() bool {
	return s.Err == nil
}

// Generate submits the form. It returns the validation error unchanged while
// the length is invalid, and a *crypto.ConfigurationError when no class is
// enabled. On failure the returned State is s.
func (s State) Generate(gen *crypto.Generator) (State, error) {
	if s.Err != nil {
		return s, s.Err
	}

	password, err := gen.Generate(s.length, s.Classes)
	if err != nil {
		return s, err
	}

	s.Password = password
	s.Generated = true
	return s, nil
}
