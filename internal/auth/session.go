package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionTokenBytes is the entropy of a raw session token.
const SessionTokenBytes = 32

// DefaultSessionTTL is used when config leaves the TTL unset.
const DefaultSessionTTL = 24 * time.Hour

// NewSessionToken returns a raw token for the client and the hash stored
// server-side. The stored form never equals the client-held form.
func NewSessionToken() (raw, hash string, err error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate session token: %w", err)
	}
	raw = hex.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken derives the stored form of a presented token.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
