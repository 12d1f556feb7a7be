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

// learnService implements the LearnUsecase interface.
type learnService struct {
	planRepo repository.PlanRepository
	logger   *slog.Logger
}

// NewLearnService is the constructor for learnService.
func NewLearnService(
	planRepo repository.PlanRepository,
	logger *slog.Logger,
) usecase.LearnUsecase {
	return &learnService{
		planRepo: planRepo,
		logger:   logger,
	}
}

// SeedSamplePlans loads the built-in starter plans into the repository.
// It is idempotent: plans are keyed by fixed IDs and simply overwritten.
func SeedSamplePlans(ctx context.Context, planRepo repository.PlanRepository) error {
	now := time.Now().UTC()
	samples := []*entity.ReadingPlan{
		{
			ID:            "bible_one_year",
			Name:          "Bible in One Year",
			Description:   "Read through the entire Bible in 365 days",
			PlanType:      entity.PlanTypeChronological,
			DurationDays:  365,
			TotalReadings: 365,
			CreatedAt:     now,
		},
		{
			ID:            "nt_30_days",
			Name:          "New Testament in 30 Days",
			Description:   "Read through the New Testament in one month",
			PlanType:      entity.PlanTypeCanonical,
			DurationDays:  30,
			TotalReadings: 30,
			CreatedAt:     now,
		},
	}

	for _, plan := range samples {
		if err := planRepo.SavePlan(ctx, plan); err != nil {
			return errors.Wrapf(err, "failed to seed plan %s", plan.ID)
		}
	}

	return nil
}

// CreatePlan creates a new reading plan.
func (srv *learnService) CreatePlan(ctx context.Context, input *usecase.CreatePlanInput) (*entity.ReadingPlan, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	plan := &entity.ReadingPlan{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		PlanType:      input.PlanType,
		DurationDays:  input.DurationDays,
		TotalReadings: input.TotalReadings,
		CreatedAt:     time.Now().UTC(),
	}
	if err := srv.planRepo.SavePlan(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to save plan")
	}

	srv.logger.Info("Reading plan created", slog.String("planID", plan.ID))

	return plan, nil
}

// GetPlan retrieves a reading plan by ID.
func (srv *learnService) GetPlan(ctx context.Context, planID string) (*entity.ReadingPlan, error) {
	plan, err := srv.planRepo.FindPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return plan, nil
}

// ListPlans retrieves all plans, optionally filtered by type.
func (srv *learnService) ListPlans(ctx context.Context, planType *entity.PlanType) ([]*entity.ReadingPlan, error) {
	plans, err := srv.planRepo.ListPlans(ctx, planType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

// AddDailyReading appends a daily reading assignment to a plan.
func (srv *learnService) AddDailyReading(ctx context.Context, planID string, reading *entity.DailyReading) error {
	if err := srv.planRepo.AddDailyReading(ctx, planID, reading); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return domainerrors.ErrPlanNotFound
		}

		return errors.Wrap(err, "failed to add daily reading")
	}

	return nil
}

// GetDailyReading retrieves the assignment for one day of a plan.
func (srv *learnService) GetDailyReading(ctx context.Context, planID string, day int) (*entity.DailyReading, error) {
	reading, err := srv.planRepo.FindDailyReading(ctx, planID, day)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPlanNotFound):
			return nil, domainerrors.ErrPlanNotFound
		case errors.Is(err, repository.ErrReadingNotFound):
			return nil, domainerrors.ErrReadingNotFound
		default:
			return nil, errors.Wrap(err, "failed to find daily reading")
		}
	}

	return reading, nil
}

// StartPlan begins a plan for a user, resetting any prior progress.
func (srv *learnService) StartPlan(ctx context.Context, userID, planID string) (*entity.ReadingProgress, error) {
	if _, err := srv.planRepo.FindPlan(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	now := time.Now().UTC()
	progress := &entity.ReadingProgress{
		UserID:     userID,
		PlanID:     planID,
		Status:     entity.PlanStatusInProgress,
		StartDate:  &now,
		CurrentDay: 1,
	}
	if err := srv.planRepo.SaveProgress(ctx, progress); err != nil {
		return nil, errors.Wrap(err, "failed to save progress")
	}

	srv.logger.Info("Reading plan started",
		slog.String("userID", userID),
		slog.String("planID", planID))

	return progress, nil
}

// GetProgress retrieves a user's progress on a plan.
func (srv *learnService) GetProgress(ctx context.Context, userID, planID string) (*entity.ReadingProgress, error) {
	progress, err := srv.planRepo.FindProgress(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, domainerrors.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find progress")
	}

	return progress, nil
}

// CompleteDay marks one day of a plan as read and recomputes the
// completion percentage, finishing the plan at 100%.
func (srv *learnService) CompleteDay(ctx context.Context, userID, planID string, day int) (*entity.ReadingProgress, error) {
	progress, err := srv.planRepo.FindProgress(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, domainerrors.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find progress")
	}

	progress.MarkDayComplete(day)

	plan, err := srv.planRepo.FindPlan(ctx, planID)
	if err != nil {
		// The day still counts; the percentage just cannot be recomputed
		// without the plan's reading total.
		srv.logger.Warn("Plan lookup failed while completing day",
			slog.String("planID", planID),
			slog.Any("error", err))
	} else {
		progress.CompletionPercentage = progress.Progress(plan.TotalReadings)
	}
	if progress.CompletionPercentage >= 100.0 {
		progress.Status = entity.PlanStatusCompleted
	}

	if err := srv.planRepo.SaveProgress(ctx, progress); err != nil {
		return nil, errors.Wrap(err, "failed to save progress")
	}

	return progress, nil
}

// ListActivePlans retrieves every in-progress plan for a user.
func (srv *learnService) ListActivePlans(ctx context.Context, userID string) ([]*entity.ReadingProgress, error) {
	active, err := srv.planRepo.ListActiveProgress(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active plans")
	}

	return active, nil
}

// CreateStudyGuide creates a new study guide.
func (srv *learnService) CreateStudyGuide(ctx context.Context, input *usecase.CreateStudyGuideInput) (*entity.StudyGuide, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	guide := &entity.StudyGuide{
		ID:                  uuid.NewString(),
		Title:               input.Title,
		Topic:               input.Topic,
		Content:             input.Content,
		ScriptureReferences: input.ScriptureReferences,
		DiscussionQuestions: input.DiscussionQuestions,
		CreatedAt:           time.Now().UTC(),
	}
	if err := srv.planRepo.SaveStudyGuide(ctx, guide); err != nil {
		return nil, errors.Wrap(err, "failed to save study guide")
	}

	return guide, nil
}

// GetStudyGuide retrieves a study guide by ID.
func (srv *learnService) GetStudyGuide(ctx context.Context, guideID string) (*entity.StudyGuide, error) {
	guide, err := srv.planRepo.FindStudyGuide(ctx, guideID)
	if err != nil {
		if errors.Is(err, repository.ErrStudyGuideNotFound) {
			return nil, domainerrors.ErrStudyGuideNotFound
		}

		return nil, errors.Wrap(err, "failed to find study guide")
	}

	return guide, nil
}

// SearchStudyGuides retrieves guides matching a topic query.
func (srv *learnService) SearchStudyGuides(ctx context.Context, topic string) ([]*entity.StudyGuide, error) {
	guides, err := srv.planRepo.SearchStudyGuides(ctx, topic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search study guides")
	}

	return guides, nil
}

// CreateDevotional creates a new devotional.
func (srv *learnService) CreateDevotional(ctx context.Context, input *usecase.CreateDevotionalInput) (*entity.Devotional, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	devotional := &entity.Devotional{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Date:      input.Date.UTC().Truncate(24 * time.Hour),
		Scripture: input.Scripture,
		Content:   input.Content,
		Prayer:    input.Prayer,
		Author:    input.Author,
	}
	if err := srv.planRepo.SaveDevotional(ctx, devotional); err != nil {
		return nil, errors.Wrap(err, "failed to save devotional")
	}

	return devotional, nil
}

// GetDevotional retrieves a devotional by ID.
func (srv *learnService) GetDevotional(ctx context.Context, devotionalID string) (*entity.Devotional, error) {
	devotional, err := srv.planRepo.FindDevotional(ctx, devotionalID)
	if err != nil {
		if errors.Is(err, repository.ErrDevotionalNotFound) {
			return nil, domainerrors.ErrDevotionalNotFound
		}

		return nil, errors.Wrap(err, "failed to find devotional")
	}

	return devotional, nil
}

// DevotionalForDate retrieves the devotional for a calendar date.
func (srv *learnService) DevotionalForDate(ctx context.Context, date time.Time) (*entity.Devotional, error) {
	devotional, err := srv.planRepo.FindDevotionalByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrDevotionalNotFound) {
			return nil, domainerrors.ErrDevotionalNotFound
		}

		return nil, errors.Wrap(err, "failed to find devotional")
	}

	return devotional, nil
}

// TodayDevotional retrieves the devotional for the current date.
func (srv *learnService) TodayDevotional(ctx context.Context) (*entity.Devotional, error) {
	return srv.DevotionalForDate(ctx, time.Now().UTC())
}
