package crypto

import "testing"

func TestUnionAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		classes ClassSet
		want    string
	}{
		{"empty", 0, ""},
		{"lowercase and digits", NewClassSet(Digit, Lowercase), lowercaseChars + digitChars},
		{"definition order", NewClassSet(Symbol, Digit, Lowercase, Uppercase), uppercaseChars + lowercaseChars + digitChars + symbolChars},
		{"symbols", NewClassSet(Symbol), "!@#$%^&*()_+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnionAlphabet(tt.classes); got != tt.want {
				t.Errorf("UnionAlphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassSetOperations(t *testing.T) {
	s := NewClassSet(Lowercase)

	s = s.With(Digit)
	if !s.Has(Digit) || !s.Has(Lowercase) {
		t.Fatalf("With() = %v, want lowercase+digits", s)
	}

	s = s.Toggle(Lowercase)
	if s.Has(Lowercase) {
		t.Errorf("Toggle() left lowercase enabled: %v", s)
	}

	s = s.Set(Symbol, true).Without(Digit)
	if got := s.String(); got != "symbols" {
		t.Errorf("String() = %q, want %q", got, "symbols")
	}

	if !s.Without(Symbol).IsEmpty() {
		t.Error("Without() on last class should leave an empty set")
	}
}

func TestParseCharacterClass(t *testing.T) {
	for _, c := range AllClasses {
		got, err := ParseCharacterClass(c.String())
		if err != nil {
			t.Fatalf("ParseCharacterClass(%q) unexpected error: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCharacterClass(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if got, _ := ParseCharacterClass(" Numbers "); got != Digit {
		t.Errorf("ParseCharacterClass(numbers) = %v, want %v", got, Digit)
	}
	if _, err := ParseCharacterClass("emoji"); err == nil {
		t.Error("ParseCharacterClass() expected error for unknown class")
	}
}
