// Package auth provides password hashing, API key generation and the
// authenticated-caller request context.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// Key format: fb_{secret}
// Example: fb_4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b
const (
	keyPrefix      = "fb"
	keySecretBytes = 16 // 128 bits of entropy, hex encoded to 32 chars
)

// keyFormatRegex validates the key format.
var keyFormatRegex = regexp.MustCompile(`^fb_[a-f0-9]{32}$`)

// GenerateAPIKey mints a fresh opaque bearer token. The secret is
// 128 bits of crypto/rand entropy, so collisions between concurrently
// generated keys are cryptographically negligible.
func GenerateAPIKey() (string, error) {
	secret := make([]byte, keySecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generate key material: %w", err)
	}
	return keyPrefix + "_" + hex.EncodeToString(secret), nil
}

// ValidKeyFormat reports whether key matches the expected shape.
func ValidKeyFormat(key string) bool {
	return keyFormatRegex.MatchString(key)
}
