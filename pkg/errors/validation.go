package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// idRegex matches well-formed menuboard identifiers (products, groups, slides).
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateID validates an identifier used in templates and catalogs
// (product IDs, group IDs, slide IDs).
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - Must start with an alphanumeric character
//   - Only alphanumerics, dots, underscores, and hyphens
//   - Maximum length of 128 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "identifier cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidID, "identifier too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "identifier contains control characters")
		}
	}

	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidID, "invalid identifier: %q", id)
	}

	return nil
}

// ValidateScreenWidth validates a screen width in pixels.
// A zero width is allowed and means "use the default".
func ValidateScreenWidth(width float64) error {
	if width < 0 {
		return New(ErrCodeInvalidWidth, "screen width cannot be negative")
	}
	if width > 0 && width < 320 {
		return New(ErrCodeInvalidWidth, "screen width too small (min 320px)")
	}
	if width > 16384 {
		return New(ErrCodeInvalidWidth, "screen width too large (max 16384px)")
	}
	return nil
}

// ValidateCurrency validates a currency symbol or ISO code for display.
// Accepts short symbols ("€", "$") and three-letter codes ("EUR").
func ValidateCurrency(currency string) error {
	if currency == "" {
		return nil // empty means "no currency display"
	}
	if len(currency) > 5 {
		return New(ErrCodeInvalidInput, "currency symbol too long: %q", currency)
	}
	if strings.ContainsFunc(currency, unicode.IsControl) {
		return New(ErrCodeInvalidInput, "currency symbol contains control characters")
	}
	return nil
}
