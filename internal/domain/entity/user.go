// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// PasswordHash stores the salted PBKDF2 digest in "<hex-salt>$<hex-digest>" form;
// the plaintext password never leaves the auth usecase.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // The user's primary contact email, used as the login identifier.
	Username     string     // The user's unique handle, alphanumeric with underscores.
	PasswordHash string     // Salted, iterated password digest. Never serialized to clients.
	Role         Role       // The user's role within the closed role set.
	IsActive     bool       // Whether the account may log in.
	IsVerified   bool       // Whether the account's email has been verified.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
	LastLogin    *time.Time // Timestamp of the last successful login. Nil until the first login.
}

// UserProfile holds the user's public-facing personal information.
type UserProfile struct {
	UserID      uuid.UUID // Foreign key that links this profile to a core User entity.
	DisplayName string    // The name shown to other users.
	Bio         string    // Free-form self description, capped at 500 characters.
	AvatarURL   string    // URL of the user's avatar image.
	Location    string    // Free-form location string.
	CreatedAt   time.Time // Timestamp of when this profile was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}

// UserPreferences holds per-user application settings.
type UserPreferences struct {
	UserID               uuid.UUID // Foreign key that links these preferences to a core User entity.
	DefaultBibleVersion  string    // Preferred translation abbreviation, e.g. "ESV".
	ReadingPlanActive    bool      // Whether the user currently follows a reading plan.
	DailyReminderEnabled bool      // Whether the daily reading reminder is on.
	ReminderTime         string    // Reminder time in "HH:MM" 24-hour format.
	FontSize             int       // Reader font size, 12 to 24.
	Theme                Theme     // UI theme within the closed theme set.
	Language             string    // BCP 47 language tag, e.g. "en".
	UpdatedAt            time.Time // Timestamp of the last modification to these preferences.
}

// DefaultPreferences returns the preference set a freshly registered user starts with.
func DefaultPreferences(userID uuid.UUID) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		DefaultBibleVersion:  "ESV",
		ReadingPlanActive:    false,
		DailyReminderEnabled: true,
		ReminderTime:         "08:00",
		FontSize:             16,
		Theme:                ThemeLight,
		Language:             "en",
		UpdatedAt:            time.Now().UTC(),
	}
}

// Theme represents the UI theme preference.
type Theme string

const (
	// ThemeLight is the default light theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark theme.
	ThemeDark Theme = "dark"
	// ThemeAuto follows the device setting.
	ThemeAuto Theme = "auto"
)

// String returns the string representation of the Theme.
func (t Theme) String() string {
	return string(t)
}

// IsValid checks if the Theme is a valid value.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	default:
		return false
	}
}
