package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Latin letters (accented, ñ/Ñ, ü/Ü included) in single-space separated
	// words. No digits, no symbols, no leading or trailing spaces.
	nameRegex = regexp.MustCompile(`^[a-zA-ZñÑáéíóúÁÉÍÓÚüÜ]+(?: [a-zA-ZñÑáéíóúÁÉÍÓÚüÜ]+)*$`)

	// Conventional ASCII local part, domain with a TLD of 2+ letters
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Spanish mobile/landline: exactly 9 digits starting with 6, 7 or 9
	phoneRegex = regexp.MustCompile(`^[679]\d{8}$`)

	// Strict calendar date string: 4-2-2 digit groups, dash separated
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("candidate_name", CandidateName)
	_ = v.RegisterValidation("strict_email", StrictEmail)
	_ = v.RegisterValidation("spanish_phone", SpanishPhone)
	_ = v.RegisterValidation("strict_date", StrictDate)
}

// CandidateName validates that a string is a person name: letters and single
// inner spaces only. Whitespace is not trimmed first, so a padded or
// blank-only value fails.
func CandidateName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// StrictEmail validates an email address. Stricter than the builtin "email"
// tag: non-ASCII local parts and single-letter TLDs are rejected.
func StrictEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// SpanishPhone validates a 9-digit phone number starting with 6, 7 or 9.
// Combine with omitempty when the field is optional.
func SpanishPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// StrictDate validates a YYYY-MM-DD date string. Any other separator or
// digit grouping fails.
func StrictDate(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}
