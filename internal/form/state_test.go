package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/validation"
)

func TestReset(t *testing.T) {
	s := Reset()

	assert.Equal(t, "", s.Length)
	assert.True(t, s.Classes.Has(crypto.Lowercase))
	assert.False(t, s.Classes.Has(crypto.Uppercase))
	assert.True(t, s.Classes.Has(crypto.Digit))
	assert.True(t, s.Classes.Has(crypto.Symbol))
	assert.Empty(t, s.Password)
	assert.False(t, s.Generated)
	assert.False(t, s.Touched)
	assert.False(t, s.CanGenerate(), "empty length must keep generation disabled")
}

func TestClearedLengthIsTouched(t *testing.T) {
	s := Reset().SetLength("8").SetLength("")

	assert.True(t, s.Touched)
	assert.EqualError(t, s.Err, validation.MsgRequired)
	assert.False(t, s.CanGenerate())

	assert.False(t, Reset().Touched)
}

func TestResetAfterGenerate(t *testing.T) {
	gen := crypto.NewGenerator(crypto.NewSeededSource(1))

	s, err := Reset().
		SetLength("10").
		Toggle(crypto.Uppercase).
		Toggle(crypto.Symbol).
		Generate(gen)
	require.NoError(t, err)
	require.True(t, s.Generated)

	r := Reset()
	assert.Equal(t, Reset(), r)
	assert.Equal(t, DefaultClasses, r.Classes)
	assert.Empty(t, r.Password)
	assert.False(t, r.Generated)
}

func TestSetLengthRevalidates(t *testing.T) {
	s := Reset().SetLength("3")
	require.False(t, s.CanGenerate())
	assert.EqualError(t, s.Err, validation.MsgTooShort)

	s = s.SetLength("30")
	assert.EqualError(t, s.Err, validation.MsgTooLong)

	s = s.SetLength("8")
	assert.True(t, s.CanGenerate())
	assert.NoError(t, s.Err)
}

func TestGenerateBlockedWhileInvalid(t *testing.T) {
	gen := crypto.NewGenerator(nil)
	s := Reset().SetLength("abc")

	next, err := s.Generate(gen)

	var vErr *validation.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, validation.RuleNumeric, vErr.Rule)
	assert.Equal(t, s, next)
}

func TestGenerateWithNoClasses(t *testing.T) {
	gen := crypto.NewGenerator(nil)
	s := Reset().SetLength("8").
		SetClass(crypto.Lowercase, false).
		SetClass(crypto.Digit, false).
		SetClass(crypto.Symbol, false)

	_, err := s.Generate(gen)
	assert.ErrorIs(t, err, crypto.ErrNoCharacterClasses)
}

func TestGenerateUsesSelection(t *testing.T) {
	gen := crypto.NewGenerator(nil)
	s := Reset().SetLength("16").SetClass(crypto.Symbol, false)

	s, err := s.Generate(gen)
	require.NoError(t, err)
	assert.Len(t, s.Password, 16)
	for _, ch := range s.Password {
		assert.Contains(t, "abcdefghijklmnopqrstuvwxyz0123456789", string(ch))
	}
}
