// Package keygen produces the short alphanumeric keys that address shared
// content, and validates key shape on the retrieval path.
package keygen

import (
	"crypto/rand"
	"log"
	"regexp"
)

// KeyLength is the number of characters in every generated key.
const KeyLength = 6

// alphabet holds the 62 symbols keys are drawn from.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Retrieval accepts 4 to 6 characters even though generation always emits 6,
// so shorter keys minted outside this service keep resolving.
var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9]{4,6}$`)

// Generate returns a 6-character key with each character drawn uniformly
// from the alphabet. A generated key carries no uniqueness guarantee; the
// unique index on the short_key column is the authority on collisions.
func Generate() string {
	// Rejection sampling keeps the draw uniform: 248 is the largest
	// multiple of 62 below 256, bytes at or above it are re-drawn.
	const limit = byte(248)

	key := make([]byte, 0, KeyLength)
	buf := make([]byte, KeyLength)
	for len(key) < KeyLength {
		if _, err := rand.Read(buf); err != nil {
			log.Fatalf("entropy source failed: %v", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			key = append(key, alphabet[int(b)%len(alphabet)])
			if len(key) == KeyLength {
				break
			}
		}
	}
	return string(key)
}

// ValidKey reports whether key has an acceptable shape for retrieval:
// 4 to 6 characters, alphanumeric only.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}
