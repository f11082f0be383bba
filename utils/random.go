package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns a 64-character hex string for verification and
// password-reset links.
func RandomToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
