package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// generateCredential returns a fresh random credential for a new assistant or
// supervisor: 4 random bytes rendered as 8 hex characters. It is handed to
// the caller exactly once, at creation time, and never re-derived.
func generateCredential() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate credential: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
