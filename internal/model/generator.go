package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LengthInput is the raw password length. Clients may send it as a JSON
// number or as the text typed into a form field; both are kept as text so the
// validator sees exactly what was entered.
type LengthInput string

func (l *LengthInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LengthInput(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("length must be a number or a string: %w", err)
		}
		*l = LengthInput(n.String())
	}
	return nil
}

// ValidateRequest asks whether a length input is acceptable.
type ValidateRequest struct {
	Length LengthInput `json:"length"`
}

// ValidateResponse reports the outcome of length validation.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Length int    `json:"length,omitempty"`
	Rule   string `json:"rule,omitempty"`
	Error  string `json:"error,omitempty"`
}

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> form default) and explicit false.
type GenerateRequest struct {
	Length    LengthInput `json:"length"`
	Uppercase *bool       `json:"uppercase"`
	Lowercase *bool       `json:"lowercase"`
	Numbers   *bool       `json:"numbers"`
	Symbols   *bool       `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string   `json:"password"`
	Length   int      `json:"length"`
	Classes  []string `json:"classes"`
}

// ClassSelection is the per-class toggle state of the form.
type ClassSelection struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// FormState is the serialized form state returned by reset.
type FormState struct {
	Length    string         `json:"length"`
	Classes   ClassSelection `json:"classes"`
	Password  string         `json:"password"`
	Generated bool           `json:"generated"`
}
