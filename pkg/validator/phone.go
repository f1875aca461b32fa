package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyPhone indicates the phone number is empty.
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidFormat indicates the phone number contains invalid characters.
	ErrInvalidFormat = errors.New("phone number can only contain digits, with an optional leading +")

	// ErrInvalidLength indicates the phone number is outside 8..15 digits.
	ErrInvalidLength = errors.New("phone number must have between 8 and 15 digits")
)

// digitsRegex matches digits only, after separators are stripped.
var digitsRegex = regexp.MustCompile(`^\d+$`)

// PhoneValidator normalizes passenger contact numbers into a canonical
// digits-only form before they are stored.
type PhoneValidator struct{}

// NewPhoneValidator creates a new phone validator instance.
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Normalize strips common separators and validates the result. Accepts
// forms like 070123456, 070 123 456, 070-123-456 or +38970123456 and
// returns the digits-only form (international numbers keep the leading +
// converted to 00).
func (v *PhoneValidator) Normalize(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)

	if !digitsRegex.MatchString(sanitized) {
		return "", ErrInvalidFormat
	}
	digits := strings.TrimPrefix(sanitized, "00")
	if len(digits) < 8 || len(digits) > 15 {
		return "", ErrInvalidLength
	}

	return sanitized, nil
}

// Sanitize removes spaces, dashes, dots and parentheses, and rewrites a
// leading + as the 00 dial prefix.
func (v *PhoneValidator) Sanitize(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		phone = "00" + phone[1:]
	}
	for _, sep := range []string{" ", "-", "(", ")", "."} {
		phone = strings.ReplaceAll(phone, sep, "")
	}
	return phone
}

// IsValid is a convenience method that returns true if the phone number
// normalizes cleanly.
func (v *PhoneValidator) IsValid(phone string) bool {
	_, err := v.Normalize(phone)
	return err == nil
}
