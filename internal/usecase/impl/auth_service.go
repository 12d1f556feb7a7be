package impl

import (
	"context"
	"log/slog"
	"time"

	"faithcompanion/internal/domain/entity"
	domainerrors "faithcompanion/internal/domain/errors"
	"faithcompanion/internal/domain/repository"
	"faithcompanion/internal/domain/service"
	"faithcompanion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account with a freshly hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Registering user", slog.String("email", input.Email))

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := checkPasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	if _, err := srv.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username uniqueness")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		Role:         entity.RoleUser,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User registered", slog.String("userID", user.ID.String()))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues a session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record login")
	}

	issued, err := srv.tokenService.Issue(service.TokenIdentity{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		TokenType:   issued.TokenType,
		ExpiresIn:   issued.ExpiresIn,
		User:        user,
	}, nil
}

// VerifyToken checks a session token and resolves the identity it carries.
func (srv *authService) VerifyToken(_ context.Context, token string) (*service.TokenIdentity, error) {
	identity, ok := srv.tokenService.Verify(token)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return identity, nil
}

// ChangePassword replaces a user's password after verifying the old one.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if err := checkPasswordStrength(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.logger.Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

// Deactivate marks an account as inactive, blocking future logins.
func (srv *authService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to deactivate user")
	}

	srv.logger.Info("User deactivated", slog.String("userID", userID.String()))

	return nil
}

// GetUser retrieves a user by ID.
func (srv *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address.
func (srv *authService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
