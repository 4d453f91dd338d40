package sequence

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrEmpty          = errors.New("sequence is empty")
	ErrInvalidChars   = errors.New("sequence contains characters outside the alphabet")
	ErrLengthMismatch = errors.New("sequences differ in length")
)

// ValidateField checks a single form value against the alphabet and, when
// both are non-empty, against the length of its sibling field.
func ValidateField(value, sibling string) error {
	if value == "" {
		return ErrEmpty
	}
	if !MatchesAlphabet(value) {
		return ErrInvalidChars
	}
	if sibling != "" && utf8.RuneCountInString(value) != utf8.RuneCountInString(sibling) {
		return ErrLengthMismatch
	}
	return nil
}

// PairErrors holds the validation outcome of both form fields.
type PairErrors struct {
	First  error
	Second error
}

// Valid reports whether both fields passed validation.
func (p PairErrors) Valid() bool {
	return p.First == nil && p.Second == nil
}

// ValidatePair validates both fields against each other.
func ValidatePair(first, second string) PairErrors {
	return PairErrors{
		First:  ValidateField(first, second),
		Second: ValidateField(second, first),
	}
}
