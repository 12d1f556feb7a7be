package memory

import (
	"context"
	"sync"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"

	"github.com/google/uuid"
)

// profileRepository implements the repository.ProfileRepository interface
// over mutex-guarded maps keyed by user ID.
type profileRepository struct {
	mu          sync.RWMutex
	profiles    map[uuid.UUID]entity.UserProfile
	preferences map[uuid.UUID]entity.UserPreferences
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{
		profiles:    make(map[uuid.UUID]entity.UserProfile),
		preferences: make(map[uuid.UUID]entity.UserPreferences),
	}
}

// FindProfile retrieves the profile for a user.
func (repo *profileRepository) FindProfile(_ context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	profile, ok := repo.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

// SaveProfile creates or replaces the profile for a user.
func (repo *profileRepository) SaveProfile(_ context.Context, profile *entity.UserProfile) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.profiles[profile.UserID] = *profile

	return nil
}

// DeleteProfile removes the profile for a user.
func (repo *profileRepository) DeleteProfile(_ context.Context, userID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.profiles[userID]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(repo.profiles, userID)

	return nil
}

// FindPreferences retrieves the preferences for a user.
func (repo *profileRepository) FindPreferences(_ context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	prefs, ok := repo.preferences[userID]
	if !ok {
		return nil, repository.ErrPreferencesNotFound
	}

	return &prefs, nil
}

// SavePreferences creates or replaces the preferences for a user.
func (repo *profileRepository) SavePreferences(_ context.Context, prefs *entity.UserPreferences) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.preferences[prefs.UserID] = *prefs

	return nil
}

// DeletePreferences removes the preferences for a user.
func (repo *profileRepository) DeletePreferences(_ context.Context, userID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.preferences[userID]; !ok {
		return repository.ErrPreferencesNotFound
	}
	delete(repo.preferences, userID)

	return nil
}
