package usecase

import (
	"context"

	"faithcompanion/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput enumerates the profile fields a caller may change.
// Nil fields are left untouched; there is no way to address any other
// field, so unknown-field patches are unrepresentable.
type UpdateProfileInput struct {
	DisplayName *string `validate:"omitempty,max=100"`
	Bio         *string `validate:"omitempty,max=500"`
	AvatarURL   *string `validate:"omitempty,url"`
	Location    *string `validate:"omitempty,max=100"`
}

// UpdatePreferencesInput enumerates the preference fields a caller may change.
// Nil fields are left untouched.
type UpdatePreferencesInput struct {
	DefaultBibleVersion  *string `validate:"omitempty,min=2,max=10"`
	ReadingPlanActive    *bool
	DailyReminderEnabled *bool
	ReminderTime         *string       `validate:"omitempty,reminder_time"`
	FontSize             *int          `validate:"omitempty,min=12,max=24"`
	Theme                *entity.Theme `validate:"omitempty,theme"`
	Language             *string       `validate:"omitempty,bcp47_language_tag"`
}

// ProfileUsecase defines the interface for profile and preference operations.
type ProfileUsecase interface {
	// CreateProfile creates an empty profile for a user.
	CreateProfile(ctx context.Context, userID uuid.UUID, displayName string) (*entity.UserProfile, error)

	// GetProfile retrieves a user's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// UpdateProfile applies a typed field patch to a user's profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.UserProfile, error)

	// DeleteProfile removes a user's profile.
	DeleteProfile(ctx context.Context, userID uuid.UUID) error

	// CreatePreferences creates default preferences for a user.
	CreatePreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// GetPreferences retrieves a user's preferences.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// UpdatePreferences applies a typed field patch to a user's preferences.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*entity.UserPreferences, error)

	// DeletePreferences removes a user's preferences.
	DeletePreferences(ctx context.Context, userID uuid.UUID) error
}
