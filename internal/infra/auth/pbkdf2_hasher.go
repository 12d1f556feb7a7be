// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"faithcompanion/config"
	"faithcompanion/internal/domain/service"
	"faithcompanion/internal/errors"
)

const (
	// saltBytes is the raw salt length; 16 bytes gives 128 bits of entropy.
	saltBytes = 16
	// keyBytes is the derived key length.
	keyBytes = 32
	// minIterations is the floor for the PBKDF2 work factor. The exact
	// count is a tunable security parameter, not a correctness contract.
	minIterations = 10_000
	// defaultIterations is used when the config does not set a count.
	defaultIterations = 100_000
	// hashSeparator splits the encoded salt from the encoded digest.
	hashSeparator = "$"
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256. Stored hashes have the form
// "<hex-salt>$<hex-digest>".
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := defaultIterations
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PBKDF2Iterations > 0 {
		iterations = cfg.Auth.PBKDF2Iterations
	}
	if iterations < minIterations {
		iterations = minIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash generates a salted PBKDF2 digest from a plaintext password.
// A fresh random salt is drawn on every call, so the same password never
// hashes to the same string twice.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), h.iterations, keyBytes, sha256.New)

	return saltHex + hashSeparator + hex.EncodeToString(key), nil
}

// Check compares a plaintext password with a stored hash. A stored hash
// that does not split into exactly a salt and a digest is treated as a
// non-match. The digest comparison is constant-time.
func (h *pbkdf2Hasher) Check(password, hash string) bool {
	parts := strings.Split(hash, hashSeparator)
	if len(parts) != 2 {
		return false
	}

	saltHex, digestHex := parts[0], parts[1]
	key := pbkdf2.Key([]byte(password), []byte(saltHex), h.iterations, keyBytes, sha256.New)
	computed := hex.EncodeToString(key)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digestHex)) == 1
}
