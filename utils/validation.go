// utils/validation.go
package utils

import (
	"strings"
)

// NormalizeEmail trims and lower-cases an email so stored values match
// case-insensitively on a single form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone trims surrounding whitespace. Digits and punctuation are
// stored as provided; lookups match the trimmed form exactly.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
