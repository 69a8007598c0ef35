// Package validation checks the requested password length before generation.
package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Rule identifies which length check failed.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleNumeric  Rule = "numeric"
	RuleMin      Rule = "min"
	RuleMax      Rule = "max"
)

const (
	MsgRequired = "Password length is required"
	MsgNumeric  = "Password length must be a whole number"
	MsgTooShort = "Password length is too short - should be 4 chars minimum."
	MsgTooLong  = "Password length is too long - should be 16 chars maximum."
)

// ValidationError carries the violated rule and the message shown to the user.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type lengthCheck struct {
	rule Rule
	msg  string
	ok   func(n int) bool
}

// Checked in order after the input has parsed; first failure wins.
var boundChecks = []lengthCheck{
	{rule: RuleMin, msg: MsgTooShort, ok: func(n int) bool { return n >= crypto.MinLength }},
	{rule: RuleMax, msg: MsgTooLong, ok: func(n int) bool { return n <= crypto.MaxLength }},
}

// ValidateLength validates raw length input as typed by the user and returns
// the parsed value. Surrounding whitespace is ignored.
func ValidateLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Rule: RuleRequired, Message: MsgRequired}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// A whole number beyond int still fails on its bound.
			if strings.HasPrefix(raw, "-") {
				return 0, &ValidationError{Rule: RuleMin, Message: MsgTooShort}
			}
			return 0, &ValidationError{Rule: RuleMax, Message: MsgTooLong}
		}
		return 0, &ValidationError{Rule: RuleNumeric, Message: MsgNumeric}
	}

	if err := ValidateLengthValue(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateLengthValue applies the bound checks to an already parsed length.
func ValidateLengthValue(n int) error {
	for _, c := range boundChecks {
		if !c.ok(n) {
			return &ValidationError{Rule: c.rule, Message: c.msg}
		}
	}
	return nil
}
