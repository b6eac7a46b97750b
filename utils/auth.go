// utils/auth.go
package utils

import (
	"crypto/subtle"
)

// CheckPIN compares a submitted admin PIN against the configured secret in
// constant time. Success is binary; there is no lockout or session issuance.
func CheckPIN(submitted, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(secret)) == 1
}
