// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile and preference persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for a user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPreferencesNotFound is returned when no preferences exist for a user.
	ErrPreferencesNotFound = errors.New("preferences not found")
)

// ProfileRepository defines persistence operations for user profiles and preferences.
// Profiles and preferences are both keyed by the owning user's ID.
type ProfileRepository interface {
	// FindProfile retrieves the profile for a user.
	FindProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// SaveProfile creates or replaces the profile for a user.
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error

	// DeleteProfile removes the profile for a user.
	DeleteProfile(ctx context.Context, userID uuid.UUID) error

	// FindPreferences retrieves the preferences for a user.
	FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// SavePreferences creates or replaces the preferences for a user.
	SavePreferences(ctx context.Context, prefs *entity.UserPreferences) error

	// DeletePreferences removes the preferences for a user.
	DeletePreferences(ctx context.Context, userID uuid.UUID) error
}
