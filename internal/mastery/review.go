package mastery

import (
	"math"
	"time"

	"github.com/sproutly/sproutly/internal/models"
)

// Scheduling constants. These are fixed business rules tuned for young
// learners, not configuration: intervals grow slower and cap lower than
// textbook SM-2, and ease swings are dampened.
const (
	MinEase         = 1.3
	MaxEase         = 2.5
	InitialEase     = 2.0
	MaxIntervalDays = 30
	PassingQuality  = 3

	easeDampening = 0.7
	fastAnswer    = 3 * time.Second
)

// ApplyReview updates a mastery record for one review outcome using a
// dampened SM-2 variant. quality is clamped to [0,5]; scores >= PassingQuality
// count as a pass. Value in, value out; the caller persists.
func ApplyReview(r models.MasteryRecord, quality int, now time.Time) models.MasteryRecord {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	r.TotalAttempts++
	if quality >= PassingQuality {
		r.CorrectAttempts++
	}

	// Interval uses the ease factor from before this review.
	if quality >= PassingQuality {
		switch r.Repetitions {
		case 0:
			r.IntervalDays = 1
		case 1:
			r.IntervalDays = 3
		default:
			next := int(math.Round(float64(r.IntervalDays) * r.EaseFactor))
			if next > MaxIntervalDays {
				next = MaxIntervalDays
			}
			r.IntervalDays = next
		}
		r.Repetitions++
	} else {
		r.Repetitions = 0
		r.IntervalDays = 1
	}

	q := float64(quality)
	delta := (0.1 - (5-q)*(0.08+(5-q)*0.02)) * easeDampening
	ease := r.EaseFactor + delta
	if ease < MinEase {
		ease = MinEase
	}
	if ease > MaxEase {
		ease = MaxEase
	}
	r.EaseFactor = ease

	r.LastQuality = quality
	last := now
	next := now.AddDate(0, 0, r.IntervalDays)
	r.LastReviewedAt = &last
	r.NextReviewAt = &next
	r.UpdatedAt = now
	return r
}

// QualityScore maps raw answer signals to an SM-2 quality score.
//
//	wrong after 3+ tries        -> 0
//	wrong                       -> 1
//	right on attempt 3 or later -> 2
//	right on attempt 2          -> 3
//	right on attempt 1          -> 4, or 5 when answered in under 3s
func QualityScore(isCorrect bool, attempts int, responseTime time.Duration) int {
	if !isCorrect {
		if attempts >= 3 {
			return 0
		}
		return 1
	}
	switch {
	case attempts <= 1:
		if responseTime > 0 && responseTime < fastAnswer {
			return 5
		}
		return 4
	case attempts == 2:
		return 3
	default:
		return 2
	}
}

// NewRecord creates the initial mastery record for an item the learner is
// seeing for the first time. NextReviewAt stays nil: never-reviewed items are
// due immediately.
func NewRecord(profileID int64, itemID string, card models.LessonCard, subject, levelID string, now time.Time) models.MasteryRecord {
	return models.MasteryRecord{
		ProfileID:    profileID,
		ItemID:       itemID,
		Subject:      subject,
		LevelID:      levelID,
		ActivityType: card.ActivityType,
		IntervalDays: 1,
		EaseFactor:   InitialEase,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
