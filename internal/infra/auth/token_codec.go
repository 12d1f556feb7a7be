// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"faithcompanion/config"
	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/service"
	"faithcompanion/internal/errors"
)

// tokenDelimiter joins the token's fields on the wire.
const tokenDelimiter = ":"

// tokenCodec is a concrete implementation of the TokenService interface.
// A token is four delimited fields, "user_id:email:role:signature", where
// the signature is an HMAC-SHA256 over the first three fields under the
// configured secret. The expiry returned at issuance is advisory only: it
// is not bound into the signed payload, so an issued token stays
// verifiable past it. Callers that need hard expiry enforce it in their
// session layer.
type tokenCodec struct {
	secret   []byte        // Signing key. Held for the process lifetime, never logged.
	lifetime time.Duration // Advisory token lifetime.
}

// NewTokenCodec is the constructor for tokenCodec.
// It takes configuration values to create a new token service instance.
func NewTokenCodec(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	lifetimeHours := config.DefaultTokenLifetimeHours
	if cfg.Auth != nil && cfg.Auth.TokenLifetimeHours > 0 {
		lifetimeHours = cfg.Auth.TokenLifetimeHours
	}

	return &tokenCodec{
		secret:   []byte(cfg.SecretKey),
		lifetime: time.Duration(lifetimeHours) * time.Hour,
	}, nil
}

// Issue signs a fresh session token for the given identity.
func (c *tokenCodec) Issue(identity service.TokenIdentity) (service.IssuedToken, error) {
	if !identity.Role.IsValid() {
		return service.IssuedToken{}, errors.Errorf("cannot issue token for unknown role %q", identity.Role)
	}

	payload := strings.Join([]string{identity.UserID, identity.Email, identity.Role.String()}, tokenDelimiter)

	return service.IssuedToken{
		Token:     payload + tokenDelimiter + c.sign(payload),
		TokenType: "bearer",
		ExpiresIn: int(c.lifetime / time.Second),
	}, nil
}

// Verify checks a token string and returns the identity it carries.
// Every malformed-input path funnels to (nil, false).
func (c *tokenCodec) Verify(token string) (*service.TokenIdentity, bool) {
	parts := strings.Split(token, tokenDelimiter)
	if len(parts) != 4 {
		return nil, false
	}

	payload := strings.Join(parts[:3], tokenDelimiter)
	if !hmac.Equal([]byte(parts[3]), []byte(c.sign(payload))) {
		return nil, false
	}

	role := entity.Role(parts[2])
	if !role.IsValid() {
		return nil, false
	}

	return &service.TokenIdentity{
		UserID: parts[0],
		Email:  parts[1],
		Role:   role,
	}, true
}

// sign computes the hex-encoded keyed digest over a payload.
func (c *tokenCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))

	return hex.EncodeToString(mac.Sum(nil))
}
