package memory

import (
	"context"
	"testing"
	"time"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, repo repository.UserRepository) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        "ruth@example.com",
		Username:     "ruth",
		PasswordHash: "salt$digest",
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID to new users", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		user := newStoredUser(t, repo)

		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("keeps a caller-provided ID", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		id := uuid.New()
		user := &entity.User{ID: id, Email: "a@example.com", Username: "a"}
		require.NoError(t, repo.Create(context.Background(), user))

		assert.Equal(t, id, user.ID)
	})
}

func TestUserRepository_Find(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	user := newStoredUser(t, repo)

	byID, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	// Email lookup is case-insensitive.
	byEmail, err := repo.FindByEmail(context.Background(), "RUTH@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername(context.Background(), "ruth")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByUsername(context.Background(), "Ruth")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	user := newStoredUser(t, repo)

	user.IsActive = false
	require.NoError(t, repo.Update(context.Background(), user))

	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	ghost := &entity.User{ID: uuid.New()}
	assert.ErrorIs(t, repo.Update(context.Background(), ghost), repository.ErrUserNotFound)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	user := newStoredUser(t, repo)

	first, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	first.Email = "tampered@example.com"

	second, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ruth@example.com", second.Email)
}
