// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/errors"
)

// Domain-specific errors for learning-content persistence.
var (
	// ErrPlanNotFound is returned when a reading plan is not found.
	ErrPlanNotFound = errors.New("reading plan not found")
	// ErrProgressNotFound is returned when a user has no progress on a plan.
	ErrProgressNotFound = errors.New("reading progress not found")
	// ErrReadingNotFound is returned when a plan has no reading for a day.
	ErrReadingNotFound = errors.New("daily reading not found")
	// ErrStudyGuideNotFound is returned when a study guide is not found.
	ErrStudyGuideNotFound = errors.New("study guide not found")
	// ErrDevotionalNotFound is returned when a devotional is not found.
	ErrDevotionalNotFound = errors.New("devotional not found")
)

// PlanRepository defines persistence operations for reading plans, per-user
// progress, study guides and devotionals.
type PlanRepository interface {
	// FindPlan retrieves a reading plan by ID.
	FindPlan(ctx context.Context, planID string) (*entity.ReadingPlan, error)

	// ListPlans retrieves all plans, optionally filtered by type.
	// A nil planType returns every plan.
	ListPlans(ctx context.Context, planType *entity.PlanType) ([]*entity.ReadingPlan, error)

	// SavePlan creates or replaces a reading plan.
	SavePlan(ctx context.Context, plan *entity.ReadingPlan) error

	// AddDailyReading appends a daily reading to a plan.
	AddDailyReading(ctx context.Context, planID string, reading *entity.DailyReading) error

	// FindDailyReading retrieves the reading assigned to one day of a plan.
	FindDailyReading(ctx context.Context, planID string, day int) (*entity.DailyReading, error)

	// FindProgress retrieves one user's progress on one plan.
	FindProgress(ctx context.Context, userID, planID string) (*entity.ReadingProgress, error)

	// SaveProgress creates or replaces one user's progress on one plan.
	SaveProgress(ctx context.Context, progress *entity.ReadingProgress) error

	// ListActiveProgress retrieves every in-progress plan for a user.
	ListActiveProgress(ctx context.Context, userID string) ([]*entity.ReadingProgress, error)

	// SaveStudyGuide creates or replaces a study guide.
	SaveStudyGuide(ctx context.Context, guide *entity.StudyGuide) error

	// FindStudyGuide retrieves a study guide by ID.
	FindStudyGuide(ctx context.Context, guideID string) (*entity.StudyGuide, error)

	// SearchStudyGuides retrieves guides whose topic or title contains the
	// query, case-insensitively.
	SearchStudyGuides(ctx context.Context, topic string) ([]*entity.StudyGuide, error)

	// SaveDevotional creates or replaces a devotional.
	SaveDevotional(ctx context.Context, devotional *entity.Devotional) error

	// FindDevotional retrieves a devotional by ID.
	FindDevotional(ctx context.Context, devotionalID string) (*entity.Devotional, error)

	// FindDevotionalByDate retrieves the devotional published for a calendar date.
	FindDevotionalByDate(ctx context.Context, date time.Time) (*entity.Devotional, error)
}
