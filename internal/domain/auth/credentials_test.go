package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, IsHashed(hash))

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	// Old snapshots stored passwords verbatim.
	assert.True(t, VerifyPassword("1234", "1234"))
	assert.False(t, VerifyPassword("1234", "4321"))
}

func TestVerifyPassword_EmptyStored(t *testing.T) {
	assert.False(t, VerifyPassword("", ""))
	assert.False(t, VerifyPassword("", "anything"))
}

func TestIsHashed(t *testing.T) {
	assert.True(t, IsHashed("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsHashed("$2b$12$abcdefghijklmnopqrstuv"))
	assert.False(t, IsHashed("plaintext"))
	assert.False(t, IsHashed("$argon2id$..."))
}
