package models

import "time"

// MasteryRecord tracks how well one learner knows one learning fact.
// Identity is (ProfileID, ItemID); the numeric ID is storage bookkeeping.
type MasteryRecord struct {
	ID           int64  `json:"id"`
	ProfileID    int64  `json:"profile_id"`
	ItemID       string `json:"item_id"`
	Subject      string `json:"subject"`
	LevelID      string `json:"level_id"`
	ActivityType string `json:"activity_type"`

	IntervalDays int     `json:"interval_days"`
	EaseFactor   float64 `json:"ease_factor"`
	Repetitions  int     `json:"repetitions"`
	LastQuality  int     `json:"last_quality"`

	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`

	TotalAttempts   int `json:"total_attempts"`
	CorrectAttempts int `json:"correct_attempts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Accuracy returns the percentage of correct attempts, 0 when unattempted.
func (r MasteryRecord) Accuracy() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.CorrectAttempts) / float64(r.TotalAttempts) * 100
}

// IsDue reports whether the item should be surfaced for review at the given
// instant. A record that was never reviewed is due immediately.
func (r MasteryRecord) IsDue(now time.Time) bool {
	if r.NextReviewAt == nil {
		return true
	}
	return !r.NextReviewAt.After(now)
}

// IsStruggling flags an item the learner is having trouble with.
func (r MasteryRecord) IsStruggling() bool {
	if r.EaseFactor < 1.5 {
		return true
	}
	return r.TotalAttempts >= 3 && r.Accuracy() < 50
}

// IsMastered reports whether the item counts as fully learned.
func (r MasteryRecord) IsMastered() bool {
	return r.Repetitions >= 2 && r.Accuracy() >= 90 && r.LastQuality >= 3
}
