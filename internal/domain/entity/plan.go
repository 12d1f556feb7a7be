// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// PlanType classifies how a reading plan orders its material.
type PlanType string

const (
	// PlanTypeChronological orders readings by historical sequence.
	PlanTypeChronological PlanType = "chronological"
	// PlanTypeCanonical orders readings by book order.
	PlanTypeCanonical PlanType = "canonical"
	// PlanTypeTopical groups readings by topic.
	PlanTypeTopical PlanType = "topical"
	// PlanTypeDevotional pairs readings with devotional content.
	PlanTypeDevotional PlanType = "devotional"
	// PlanTypeCustom is a user-assembled plan.
	PlanTypeCustom PlanType = "custom"
)

// String returns the string representation of the PlanType.
func (p PlanType) String() string {
	return string(p)
}

// IsValid checks if the PlanType is a valid value.
func (p PlanType) IsValid() bool {
	switch p {
	case PlanTypeChronological, PlanTypeCanonical, PlanTypeTopical, PlanTypeDevotional, PlanTypeCustom:
		return true
	default:
		return false
	}
}

// PlanStatus tracks where a user stands on a reading plan.
type PlanStatus string

const (
	// PlanStatusNotStarted means the user has not begun the plan.
	PlanStatusNotStarted PlanStatus = "not_started"
	// PlanStatusInProgress means the user is actively reading.
	PlanStatusInProgress PlanStatus = "in_progress"
	// PlanStatusCompleted means every reading is done.
	PlanStatusCompleted PlanStatus = "completed"
	// PlanStatusPaused means the user suspended the plan.
	PlanStatusPaused PlanStatus = "paused"
)

// String returns the string representation of the PlanStatus.
func (s PlanStatus) String() string {
	return string(s)
}

// ReadingPlan is a structured course of daily scripture readings.
type ReadingPlan struct {
	ID            string    // Unique plan identifier.
	Name          string    // Display name, e.g. "Bible in One Year".
	Description   string    // Short description of the plan.
	PlanType      PlanType  // How the plan orders its material.
	DurationDays  int       // Total length of the plan in days.
	TotalReadings int       // Number of reading assignments in the plan.
	CreatedAt     time.Time // Timestamp of when the plan was created.
}

// DailyReading is one day's assignment within a reading plan.
type DailyReading struct {
	DayNumber int      // 1-based day index within the plan.
	Readings  []string // Verse references for the day, e.g. ["Genesis 1-3", "Psalm 1"].
	Notes     string   // Optional guidance for the day.
}

// ReadingProgress records a single user's progress through one plan.
type ReadingProgress struct {
	UserID               string     // The user working through the plan.
	PlanID               string     // The plan being worked through.
	Status               PlanStatus // Current status of the plan for this user.
	StartDate            *time.Time // Date the user started. Nil until started.
	CurrentDay           int        // The day the user is currently on.
	CompletedDays        []int      // Sorted, deduplicated day numbers already read.
	LastReadDate         *time.Time // Date of the most recent completed reading.
	CompletionPercentage float64    // 0-100 share of readings completed.
}

// MarkDayComplete records day as read, keeping CompletedDays sorted and unique,
// and stamps LastReadDate with the current date.
func (p *ReadingProgress) MarkDayComplete(day int) {
	if !slices.Contains(p.CompletedDays, day) {
		p.CompletedDays = append(p.CompletedDays, day)
		slices.Sort(p.CompletedDays)
	}
	now := time.Now().UTC()
	p.LastReadDate = &now
}

// Progress returns the completion percentage against totalDays.
func (p *ReadingProgress) Progress(totalDays int) float64 {
	if totalDays == 0 {
		return 0.0
	}

	return float64(len(p.CompletedDays)) / float64(totalDays) * 100.0
}

// StudyGuide is long-form study material around a topic.
type StudyGuide struct {
	ID                  string    // Unique guide identifier.
	Title               string    // Display title.
	Topic               string    // The topic the guide covers.
	Content             string    // Body text of the guide.
	ScriptureReferences []string  // Supporting verse references.
	DiscussionQuestions []string  // Optional group discussion prompts.
	CreatedAt           time.Time // Timestamp of when the guide was created.
}

// Devotional is a dated piece of devotional content tied to a scripture reference.
type Devotional struct {
	ID        string    // Unique devotional identifier.
	Title     string    // Display title.
	Date      time.Time // The calendar date the devotional belongs to (UTC midnight).
	Scripture string    // Verse reference the devotional reflects on.
	Content   string    // Body text.
	Prayer    string    // Optional closing prayer.
	Author    string    // Optional author attribution.
}
