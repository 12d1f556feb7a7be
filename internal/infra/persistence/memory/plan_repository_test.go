package memory

import (
	"context"
	"testing"
	"time"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedPlan(t *testing.T, repo repository.PlanRepository, id string) *entity.ReadingPlan {
	t.Helper()

	plan := &entity.ReadingPlan{
		ID:            id,
		Name:          "Psalms in a Month",
		Description:   "Five psalms a day",
		PlanType:      entity.PlanTypeDevotional,
		DurationDays:  30,
		TotalReadings: 30,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.SavePlan(context.Background(), plan))

	return plan
}

func TestPlanRepository_ProgressIsKeyedPerUserAndPlan(t *testing.T) {
	t.Parallel()

	repo := NewPlanRepository()
	storedPlan(t, repo, "plan-a")
	storedPlan(t, repo, "plan-b")

	save := func(userID, planID string, day int) {
		require.NoError(t, repo.SaveProgress(context.Background(), &entity.ReadingProgress{
			UserID:        userID,
			PlanID:        planID,
			Status:        entity.PlanStatusInProgress,
			CompletedDays: []int{day},
		}))
	}
	save("user-1", "plan-a", 1)
	save("user-1", "plan-b", 2)
	save("user-2", "plan-a", 3)

	progress, err := repo.FindProgress(context.Background(), "user-1", "plan-a")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, progress.CompletedDays)

	progress, err = repo.FindProgress(context.Background(), "user-2", "plan-a")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, progress.CompletedDays)

	_, err = repo.FindProgress(context.Background(), "user-2", "plan-b")
	assert.ErrorIs(t, err, repository.ErrProgressNotFound)
}

func TestPlanRepository_ProgressReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewPlanRepository()
	storedPlan(t, repo, "plan-a")
	require.NoError(t, repo.SaveProgress(context.Background(), &entity.ReadingProgress{
		UserID:        "user-1",
		PlanID:        "plan-a",
		Status:        entity.PlanStatusInProgress,
		CompletedDays: []int{1, 2},
	}))

	first, err := repo.FindProgress(context.Background(), "user-1", "plan-a")
	require.NoError(t, err)
	first.CompletedDays[0] = 99

	second, err := repo.FindProgress(context.Background(), "user-1", "plan-a")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, second.CompletedDays)
}

func TestPlanRepository_SearchStudyGuides(t *testing.T) {
	t.Parallel()

	repo := NewPlanRepository()
	guides := []*entity.StudyGuide{
		{ID: "g1", Title: "The Lord's Prayer", Topic: "Prayer", Content: "..."},
		{ID: "g2", Title: "Walking by Faith", Topic: "Faith", Content: "..."},
		{ID: "g3", Title: "Prayers of the Psalms", Topic: "Worship", Content: "..."},
	}
	for _, guide := range guides {
		require.NoError(t, repo.SaveStudyGuide(context.Background(), guide))
	}

	// Matches on topic or title, case-insensitively.
	matches, err := repo.SearchStudyGuides(context.Background(), "PRAYER")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = repo.SearchStudyGuides(context.Background(), "faith")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = repo.SearchStudyGuides(context.Background(), "hope")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestPlanRepository_FindDevotionalByDate(t *testing.T) {
	t.Parallel()

	repo := NewPlanRepository()
	require.NoError(t, repo.SaveDevotional(context.Background(), &entity.Devotional{
		ID:    "d1",
		Title: "Evening Peace",
		Date:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	}))

	// A zoned timestamp on the same UTC day still matches.
	zone := time.FixedZone("UTC+3", 3*60*60)
	found, err := repo.FindDevotionalByDate(context.Background(), time.Date(2026, time.June, 1, 13, 0, 0, 0, zone))
	require.NoError(t, err)
	assert.Equal(t, "d1", found.ID)

	_, err = repo.FindDevotionalByDate(context.Background(), time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, repository.ErrDevotionalNotFound)
}
