package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionToken(t *testing.T) {
	raw, hash, err := NewSessionToken()

	assert.NoError(t, err)
	assert.Len(t, raw, SessionTokenBytes*2) // hex encoding
	assert.Len(t, hash, 64)                 // sha256 hex
	assert.NotEqual(t, raw, hash)
	assert.Equal(t, HashToken(raw), hash)
}

func TestNewSessionToken_Unique(t *testing.T) {
	raw1, _, err := NewSessionToken()
	assert.NoError(t, err)
	raw2, _, err := NewSessionToken()
	assert.NoError(t, err)
	assert.NotEqual(t, raw1, raw2)
}

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
