package entities

import (
	"errors"
	"strings"
)

const (
	minPhoneDigits    = 10
	brazilCountryCode = "55"
	brazilNationalMax = 11
)

var ErrInvalidPhone = errors.New("invalid phone")

// StripNonDigits keeps only ASCII digits.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone returns the WhatsApp handle for a customer phone: digits only,
// prefixed with the Brazilian country code when the input is a national
// number (DDD + subscriber, 10 or 11 digits).
func NormalizePhone(raw string) (string, error) {
	digits := StripNonDigits(raw)
	if len(digits) < minPhoneDigits {
		return "", ErrInvalidPhone
	}
	if len(digits) <= brazilNationalMax {
		return brazilCountryCode + digits, nil
	}
	return digits, nil
}
