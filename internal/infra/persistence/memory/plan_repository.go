package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"faithcompanion/internal/domain/entity"
	"faithcompanion/internal/domain/repository"
)

// progressKey identifies one user's progress on one plan.
type progressKey struct {
	userID string
	planID string
}

// planRepository implements the repository.PlanRepository interface over
// mutex-guarded maps.
type planRepository struct {
	mu          sync.RWMutex
	plans       map[string]entity.ReadingPlan
	readings    map[string][]entity.DailyReading
	progress    map[progressKey]entity.ReadingProgress
	studyGuides map[string]entity.StudyGuide
	devotionals map[string]entity.Devotional
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository() repository.PlanRepository {
	return &planRepository{
		plans:       make(map[string]entity.ReadingPlan),
		readings:    make(map[string][]entity.DailyReading),
		progress:    make(map[progressKey]entity.ReadingProgress),
		studyGuides: make(map[string]entity.StudyGuide),
		devotionals: make(map[string]entity.Devotional),
	}
}

// FindPlan retrieves a reading plan by ID.
func (repo *planRepository) FindPlan(_ context.Context, planID string) (*entity.ReadingPlan, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	plan, ok := repo.plans[planID]
	if !ok {
		return nil, repository.ErrPlanNotFound
	}

	return &plan, nil
}

// ListPlans retrieves all plans, optionally filtered by type.
func (repo *planRepository) ListPlans(_ context.Context, planType *entity.PlanType) ([]*entity.ReadingPlan, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	plans := make([]*entity.ReadingPlan, 0, len(repo.plans))
	for _, plan := range repo.plans {
		if planType != nil && plan.PlanType != *planType {
			continue
		}
		copied := plan
		plans = append(plans, &copied)
	}
	slices.SortFunc(plans, func(a, b *entity.ReadingPlan) int {
		return strings.Compare(a.ID, b.ID)
	})

	return plans, nil
}

// SavePlan creates or replaces a reading plan.
func (repo *planRepository) SavePlan(_ context.Context, plan *entity.ReadingPlan) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.plans[plan.ID] = *plan

	return nil
}

// AddDailyReading appends a daily reading to a plan.
func (repo *planRepository) AddDailyReading(_ context.Context, planID string, reading *entity.DailyReading) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.plans[planID]; !ok {
		return repository.ErrPlanNotFound
	}
	repo.readings[planID] = append(repo.readings[planID], cloneReading(*reading))

	return nil
}

// FindDailyReading retrieves the reading assigned to one day of a plan.
func (repo *planRepository) FindDailyReading(_ context.Context, planID string, day int) (*entity.DailyReading, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if _, ok := repo.plans[planID]; !ok {
		return nil, repository.ErrPlanNotFound
	}
	for _, reading := range repo.readings[planID] {
		if reading.DayNumber == day {
			copied := cloneReading(reading)

			return &copied, nil
		}
	}

	return nil, repository.ErrReadingNotFound
}

// FindProgress retrieves one user's progress on one plan.
func (repo *planRepository) FindProgress(_ context.Context, userID, planID string) (*entity.ReadingProgress, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	progress, ok := repo.progress[progressKey{userID, planID}]
	if !ok {
		return nil, repository.ErrProgressNotFound
	}

	return cloneProgress(progress), nil
}

// SaveProgress creates or replaces one user's progress on one plan.
func (repo *planRepository) SaveProgress(_ context.Context, progress *entity.ReadingProgress) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.progress[progressKey{progress.UserID, progress.PlanID}] = *cloneProgress(*progress)

	return nil
}

// ListActiveProgress retrieves every in-progress plan for a user.
func (repo *planRepository) ListActiveProgress(_ context.Context, userID string) ([]*entity.ReadingProgress, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var active []*entity.ReadingProgress
	for key, progress := range repo.progress {
		if key.userID == userID && progress.Status == entity.PlanStatusInProgress {
			active = append(active, cloneProgress(progress))
		}
	}
	slices.SortFunc(active, func(a, b *entity.ReadingProgress) int {
		return strings.Compare(a.PlanID, b.PlanID)
	})

	return active, nil
}

// SaveStudyGuide creates or replaces a study guide.
func (repo *planRepository) SaveStudyGuide(_ context.Context, guide *entity.StudyGuide) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.studyGuides[guide.ID] = *guide

	return nil
}

// FindStudyGuide retrieves a study guide by ID.
func (repo *planRepository) FindStudyGuide(_ context.Context, guideID string) (*entity.StudyGuide, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	guide, ok := repo.studyGuides[guideID]
	if !ok {
		return nil, repository.ErrStudyGuideNotFound
	}

	return &guide, nil
}

// SearchStudyGuides retrieves guides whose topic or title contains the
// query, case-insensitively.
func (repo *planRepository) SearchStudyGuides(_ context.Context, topic string) ([]*entity.StudyGuide, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	needle := strings.ToLower(topic)
	var matches []*entity.StudyGuide
	for _, guide := range repo.studyGuides {
		if strings.Contains(strings.ToLower(guide.Topic), needle) ||
			strings.Contains(strings.ToLower(guide.Title), needle) {
			copied := guide
			matches = append(matches, &copied)
		}
	}
	slices.SortFunc(matches, func(a, b *entity.StudyGuide) int {
		return strings.Compare(a.ID, b.ID)
	})

	return matches, nil
}

// SaveDevotional creates or replaces a devotional.
func (repo *planRepository) SaveDevotional(_ context.Context, devotional *entity.Devotional) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.devotionals[devotional.ID] = *devotional

	return nil
}

// FindDevotional retrieves a devotional by ID.
func (repo *planRepository) FindDevotional(_ context.Context, devotionalID string) (*entity.Devotional, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	devotional, ok := repo.devotionals[devotionalID]
	if !ok {
		return nil, repository.ErrDevotionalNotFound
	}

	return &devotional, nil
}

// FindDevotionalByDate retrieves the devotional published for a calendar date.
func (repo *planRepository) FindDevotionalByDate(_ context.Context, date time.Time) (*entity.Devotional, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	year, month, day := date.UTC().Date()
	for _, devotional := range repo.devotionals {
		y, m, d := devotional.Date.UTC().Date()
		if y == year && m == month && d == day {
			copied := devotional

			return &copied, nil
		}
	}

	return nil, repository.ErrDevotionalNotFound
}

// cloneReading copies a reading so callers never share map-backed slices.
func cloneReading(reading entity.DailyReading) entity.DailyReading {
	reading.Readings = slices.Clone(reading.Readings)

	return reading
}

// cloneProgress copies a progress record, including its day slice and
// pointer fields.
func cloneProgress(progress entity.ReadingProgress) *entity.ReadingProgress {
	copied := progress
	copied.CompletedDays = slices.Clone(progress.CompletedDays)
	if progress.StartDate != nil {
		start := *progress.StartDate
		copied.StartDate = &start
	}
	if progress.LastReadDate != nil {
		last := *progress.LastReadDate
		copied.LastReadDate = &last
	}

	return &copied
}
