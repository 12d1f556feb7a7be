package auth

import (
	"strings"
	"testing"

	"faithcompanion/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHasher() *pbkdf2Hasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{PBKDF2Iterations: minIterations},
	}

	return NewPBKDF2Hasher(cfg).(*pbkdf2Hasher)
}

func TestPBKDF2Hasher_Hash(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "Secret123")

	// Encoded as "<hex-salt>$<hex-digest>".
	parts := strings.Split(hash, "$")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], saltBytes*2)
	assert.Len(t, parts[1], keyBytes*2)

	// The hash verifies against its own password.
	assert.True(t, hasher.Check("Secret123", hash))
}

func TestPBKDF2Hasher_HashIsSalted(t *testing.T) {
	hasher := testHasher()

	// Same password twice must never produce the same hash.
	first, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Secret123", first))
	assert.True(t, hasher.Check("Secret123", second))
}

func TestPBKDF2Hasher_Check(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	// Wrong password, including case changes, fails.
	assert.False(t, hasher.Check("secret123", hash))
	assert.False(t, hasher.Check("Secret1234", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestPBKDF2Hasher_CheckMalformedHash(t *testing.T) {
	hasher := testHasher()

	// A stored hash without exactly one separator is a non-match, never a panic.
	malformed := []string{
		"",
		"nodollarsign",
		"too$many$parts",
		"$",
	}

	for _, hash := range malformed {
		assert.False(t, hasher.Check("Secret123", hash), "hash: %q", hash)
	}
}

func TestNewPBKDF2Hasher_EnforcesIterationFloor(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{PBKDF2Iterations: 1},
	}

	hasher := NewPBKDF2Hasher(cfg).(*pbkdf2Hasher)
	assert.Equal(t, minIterations, hasher.iterations)

	// Nil sections fall back to the default work factor.
	hasher = NewPBKDF2Hasher(&config.Config{}).(*pbkdf2Hasher)
	assert.Equal(t, defaultIterations, hasher.iterations)
}
