package usecase

import (
	"context"
	"time"

	"faithcompanion/internal/domain/entity"
)

// CreatePlanInput defines the data required to create a reading plan.
type CreatePlanInput struct {
	Name          string          `validate:"required,max=200"`
	Description   string          `validate:"required"`
	PlanType      entity.PlanType `validate:"required,plan_type"`
	DurationDays  int             `validate:"required,gt=0"`
	TotalReadings int             `validate:"required,gt=0"`
}

// CreateStudyGuideInput defines the data required to create a study guide.
type CreateStudyGuideInput struct {
	Title               string   `validate:"required,max=200"`
	Topic               string   `validate:"required,max=100"`
	Content             string   `validate:"required"`
	ScriptureReferences []string `validate:"required,min=1"`
	DiscussionQuestions []string
}

// CreateDevotionalInput defines the data required to create a devotional.
type CreateDevotionalInput struct {
	Title     string    `validate:"required,max=200"`
	Date      time.Time `validate:"required"`
	Scripture string    `validate:"required"`
	Content   string    `validate:"required"`
	Prayer    string
	Author    string
}

// LearnUsecase defines the interface for reading plans, study guides,
// devotionals and per-user progress tracking.
type LearnUsecase interface {
	// CreatePlan creates a new reading plan.
	CreatePlan(ctx context.Context, input *CreatePlanInput) (*entity.ReadingPlan, error)

	// GetPlan retrieves a reading plan by ID.
	GetPlan(ctx context.Context, planID string) (*entity.ReadingPlan, error)

	// ListPlans retrieves all plans, optionally filtered by type.
	ListPlans(ctx context.Context, planType *entity.PlanType) ([]*entity.ReadingPlan, error)

	// AddDailyReading appends a daily reading assignment to a plan.
	AddDailyReading(ctx context.Context, planID string, reading *entity.DailyReading) error

	// GetDailyReading retrieves the assignment for one day of a plan.
	GetDailyReading(ctx context.Context, planID string, day int) (*entity.DailyReading, error)

	// StartPlan begins a plan for a user, resetting any prior progress.
	StartPlan(ctx context.Context, userID, planID string) (*entity.ReadingProgress, error)

	// GetProgress retrieves a user's progress on a plan.
	GetProgress(ctx context.Context, userID, planID string) (*entity.ReadingProgress, error)

	// CompleteDay marks one day of a plan as read and recomputes the
	// completion percentage, finishing the plan at 100%.
	CompleteDay(ctx context.Context, userID, planID string, day int) (*entity.ReadingProgress, error)

	// ListActivePlans retrieves every in-progress plan for a user.
	ListActivePlans(ctx context.Context, userID string) ([]*entity.ReadingProgress, error)

	// CreateStudyGuide creates a new study guide.
	CreateStudyGuide(ctx context.Context, input *CreateStudyGuideInput) (*entity.StudyGuide, error)

	// GetStudyGuide retrieves a study guide by ID.
	GetStudyGuide(ctx context.Context, guideID string) (*entity.StudyGuide, error)

	// SearchStudyGuides retrieves guides matching a topic query.
	SearchStudyGuides(ctx context.Context, topic string) ([]*entity.StudyGuide, error)

	// CreateDevotional creates a new devotional.
	CreateDevotional(ctx context.Context, input *CreateDevotionalInput) (*entity.Devotional, error)

	// GetDevotional retrieves a devotional by ID.
	GetDevotional(ctx context.Context, devotionalID string) (*entity.Devotional, error)

	// DevotionalForDate retrieves the devotional for a calendar date.
	DevotionalForDate(ctx context.Context, date time.Time) (*entity.Devotional, error)

	// TodayDevotional retrieves the devotional for the current date.
	TodayDevotional(ctx context.Context) (*entity.Devotional, error)
}
