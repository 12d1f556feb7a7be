package impl

import (
	"context"
	"log/slog"
	"time"

	"faithcompanion/internal/domain/entity"
	domainerrors "faithcompanion/internal/domain/errors"
	"faithcompanion/internal/domain/repository"
	"faithcompanion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateProfile creates an empty profile for a user.
func (srv *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, displayName string) (*entity.UserProfile, error) {
	now := time.Now().UTC()
	profile := &entity.UserProfile{
		UserID:      userID,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.logger.Debug("Profile created", slog.String("userID", userID.String()))

	return profile, nil
}

// GetProfile retrieves a user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies a typed field patch to a user's profile.
// Only the fields the input enumerates can change; UserID and CreatedAt
// are not reachable by construction.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := srv.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	return profile, nil
}

// DeleteProfile removes a user's profile.
func (srv *profileService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if err := srv.profileRepo.DeleteProfile(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}

// CreatePreferences creates default preferences for a user.
func (srv *profileService) CreatePreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	prefs := entity.DefaultPreferences(userID)
	if err := srv.profileRepo.SavePreferences(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to create preferences")
	}

	srv.logger.Debug("Preferences created", slog.String("userID", userID.String()))

	return prefs, nil
}

// GetPreferences retrieves a user's preferences.
func (srv *profileService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	prefs, err := srv.profileRepo.FindPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, domainerrors.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	return prefs, nil
}

// UpdatePreferences applies a typed field patch to a user's preferences.
func (srv *profileService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.UserPreferences, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	prefs, err := srv.profileRepo.FindPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, domainerrors.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	if input.DefaultBibleVersion != nil {
		prefs.DefaultBibleVersion = *input.DefaultBibleVersion
	}
	if input.ReadingPlanActive != nil {
		prefs.ReadingPlanActive = *input.ReadingPlanActive
	}
	if input.DailyReminderEnabled != nil {
		prefs.DailyReminderEnabled = *input.DailyReminderEnabled
	}
	if input.ReminderTime != nil {
		prefs.ReminderTime = *input.ReminderTime
	}
	if input.FontSize != nil {
		prefs.FontSize = *input.FontSize
	}
	if input.Theme != nil {
		prefs.Theme = *input.Theme
	}
	if input.Language != nil {
		prefs.Language = *input.Language
	}
	prefs.UpdatedAt = time.Now().UTC()

	if err := srv.profileRepo.SavePreferences(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to save preferences")
	}

	return prefs, nil
}

// DeletePreferences removes a user's preferences.
func (srv *profileService) DeletePreferences(ctx context.Context, userID uuid.UUID) error {
	if err := srv.profileRepo.DeletePreferences(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return domainerrors.ErrPreferencesNotFound
		}

		return errors.Wrap(err, "failed to delete preferences")
	}

	return nil
}
