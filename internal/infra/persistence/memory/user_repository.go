// Package memory contains the concrete implementation of the persistence
// layer backed by in-process maps. Durability is out of scope for this
// service; the repository interfaces keep the swap point for a real
// database.
package memory

import (
	"context"
	"strings"
	"sync"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements the repository.UserRepository interface
// over a mutex-guarded map keyed by user ID.
type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]entity.User),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create persists a new user entity, assigning an ID when it has none.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	repo.users[user.ID] = *cloneUser(*user)

	return nil
}

// Update modifies an existing user entity.
func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	repo.users[user.ID] = *cloneUser(*user)

	return nil
}

// cloneUser copies a user so callers never share map-backed memory.
func cloneUser(user entity.User) *entity.User {
	copied := user
	if user.LastLogin != nil {
		lastLogin := *user.LastLogin
		copied.LastLogin = &lastLogin
	}

	return &copied
}
