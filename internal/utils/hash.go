package utils

import (
	"crypto/sha256"
	"fmt"
)

// HashToken returns the hex SHA-256 digest of a bearer token. Revoked tokens
// are cached by digest so raw token material never lands in the cache.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", sum)
}

// ValidateHash reports whether hash is a well-formed hex SHA-256 digest.
func ValidateHash(hash string) bool {
	if len(hash) != 64 {
		return false
	}

	for _, char := range hash {
		if !((char >= '0' && char <= '9') || (char >= 'a' && char <= 'f')) {
			return false
		}
	}

	return true
}
