package service

import "faithcompanion/internal/domain/entity"

// TokenIdentity is the identity triple carried inside a session token.
type TokenIdentity struct {
	UserID string
	Email  string
	Role   entity.Role
}

// IssuedToken is the result of issuing a session token. ExpiresIn is
// advisory: it is computed from the configured lifetime at issuance but
// is not encoded into the token itself.
type IssuedToken struct {
	Token     string
	TokenType string
	ExpiresIn int // seconds
}

// TokenService defines the interface for issuing and verifying signed
// session tokens. This abstracts the wire format from the use cases.
type TokenService interface {
	// Issue signs a fresh session token for the given identity.
	Issue(identity TokenIdentity) (IssuedToken, error)

	// Verify checks a token string and returns the identity it carries.
	// Any malformed, tampered, or otherwise unverifiable token returns
	// (nil, false); Verify never fails with an error.
	Verify(token string) (*TokenIdentity, bool)
}
