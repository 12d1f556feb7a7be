// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Password rules beyond the tags (uppercase, lowercase, digit) are
// checked by the auth service.
type RegisterInput struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=50,username"`
	Password string `validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,min=8"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
	User        *entity.User
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	// Register creates a new account with a freshly hashed password.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyToken checks a session token and resolves the identity it carries.
	VerifyToken(ctx context.Context, token string) (*service.TokenIdentity, error)

	// ChangePassword replaces a user's password after verifying the old one.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// Deactivate marks an account as inactive, blocking future logins.
	Deactivate(ctx context.Context, userID uuid.UUID) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
