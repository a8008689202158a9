package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/eqb/projects-api/internal/constants"
)

// GenerateToken mints an opaque bearer token: 16 bytes of crypto/rand
// randomness, hex-encoded to 32 characters.
func GenerateToken() (string, error) {
	bytes := make([]byte, constants.TokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
