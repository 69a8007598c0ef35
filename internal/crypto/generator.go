package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinLength = 4
	MaxLength = 16
)

var (
	ErrNoCharacterClasses = errors.New("at least one character class must be selected")
	ErrLengthOutOfRange   = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
)

// ConfigurationError reports a class selection that leaves nothing to sample from.
type ConfigurationError struct {
	Classes ClassSet
}

func (e *ConfigurationError) Error() string {
	return ErrNoCharacterClasses.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return ErrNoCharacterClasses
}

// Generator produces passwords from a union alphabet using its Source.
type Generator struct {
	source Source
}

// NewGenerator returns a Generator drawing from src. A nil src means crypto/rand.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{source: src}
}

// Generate builds a password of exactly length characters, each drawn
// independently and uniformly from the union alphabet of classes. There is no
// guarantee that every selected class appears.
func (g *Generator) Generate(length int, classes ClassSet) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	alphabet := UnionAlphabet(classes)
	if alphabet == "" {
		return "", &ConfigurationError{Classes: classes}
	}

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := g.source.IntN(len(alphabet))
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		sb.WriteByte(alphabet[idx])
	}

	return sb.String(), nil
}

// Generate creates a password with crypto/rand.
func Generate(length int, classes ClassSet) (string, error) {
	return NewGenerator(nil).Generate(length, classes)
}
