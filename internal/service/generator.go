package service

import (
	"errors"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/validation"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	metrics   *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService. m may be nil.
func NewGeneratorService(gen *crypto.Generator, m *metrics.Metrics) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{generator: gen, metrics: m}
}

// ValidateLength checks a raw length input. Invalid input is a normal
// outcome here and is reported in the response, not as an error.
func (s *GeneratorService) ValidateLength(req model.ValidateRequest) model.ValidateResponse {
	n, err := validation.ValidateLength(string(req.Length))
	if err != nil {
		var vErr *validation.ValidationError
		errors.As(err, &vErr)
		s.metrics.LengthValidated(string(vErr.Rule))
		return model.ValidateResponse{Valid: false, Rule: string(vErr.Rule), Error: vErr.Message}
	}

	s.metrics.LengthValidated("")
	return model.ValidateResponse{Valid: true, Length: n}
}

// Generate validates the length, then produces a password from the selected
// classes. Omitted class flags take their reset defaults.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length, err := validation.ValidateLength(string(req.Length))
	if err != nil {
		s.metrics.GenerateFailed("validation")
		return model.GenerateResponse{}, err
	}

	classes := selectClasses(req)

	password, err := s.generator.Generate(length, classes)
	if err != nil {
		var cfgErr *crypto.ConfigurationError
		if errors.As(err, &cfgErr) {
			s.metrics.GenerateFailed("configuration")
		} else {
			s.metrics.GenerateFailed("internal")
			slog.Error("password generation failed", "error", err)
		}
		return model.GenerateResponse{}, err
	}

	s.metrics.PasswordGenerated(classes.String())

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Classes:  classes.Names(),
	}, nil
}

// Reset returns the default form state.
func (s *GeneratorService) Reset() model.FormState {
	return FormStateFrom(form.Reset())
}

// FormStateFrom converts a form snapshot to its wire form.
func FormStateFrom(st form.State) model.FormState {
	return model.FormState{
		Length: st.Length,
		Classes: model.ClassSelection{
			Uppercase: st.Classes.Has(crypto.Uppercase),
			Lowercase: st.Classes.Has(crypto.Lowercase),
			Numbers:   st.Classes.Has(crypto.Digit),
			Symbols:   st.Classes.Has(crypto.Symbol),
		},
		Password:  st.Password,
		Generated: st.Generated,
	}
}

func selectClasses(req model.GenerateRequest) crypto.ClassSet {
	d := form.DefaultClasses
	return crypto.ClassSet(0).
		Set(crypto.Uppercase, boolOrDefault(req.Uppercase, d.Has(crypto.Uppercase))).
		Set(crypto.Lowercase, boolOrDefault(req.Lowercase, d.Has(crypto.Lowercase))).
		Set(crypto.Digit, boolOrDefault(req.Numbers, d.Has(crypto.Digit))).
		Set(crypto.Symbol, boolOrDefault(req.Symbols, d.Has(crypto.Symbol)))
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
