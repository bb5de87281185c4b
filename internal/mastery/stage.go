package mastery

import (
	"time"

	"github.com/sproutly/sproutly/internal/models"
)

// GrowthStage is the discrete visual state of an item in the garden display.
type GrowthStage int

const (
	StageSeed GrowthStage = iota
	StagePlanted
	StageGrowing
	StageBudding
	StageBloomed
	StageWilting
)

func (s GrowthStage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StagePlanted:
		return "planted"
	case StageGrowing:
		return "growing"
	case StageBudding:
		return "budding"
	case StageBloomed:
		return "bloomed"
	case StageWilting:
		return "wilting"
	default:
		return "unknown"
	}
}

// ClassifyStage maps a record to its growth stage. Checks are ordered;
// the first match wins, so an overdue mastered item wilts even though it
// would also qualify as bloomed.
func ClassifyStage(r models.MasteryRecord, now time.Time) GrowthStage {
	if isWilting(r, now) {
		return StageWilting
	}
	if r.TotalAttempts == 0 {
		return StageSeed
	}
	acc := r.Accuracy()
	switch {
	case acc >= 90 && r.Repetitions >= 2:
		return StageBloomed
	case acc >= 80 || (acc >= 90 && r.Repetitions == 1):
		return StageBudding
	case acc >= 50:
		return StageGrowing
	default:
		return StagePlanted
	}
}

// isWilting: the item was doing well but has been neglected past its review
// date. Requires both an overdue schedule and a real gap since last practice.
func isWilting(r models.MasteryRecord, now time.Time) bool {
	wasThriving := r.IsMastered() || (r.Repetitions >= 2 && r.Accuracy() >= 80)
	if !wasThriving {
		return false
	}
	if r.NextReviewAt == nil || r.LastReviewedAt == nil {
		return false
	}
	return daysBetween(*r.NextReviewAt, now) > 3 && daysBetween(*r.LastReviewedAt, now) > 7
}

// daysBetween returns whole UTC calendar days from a to b, negative when b
// precedes a. UTC midnights keep the day math stable across DST shifts.
func daysBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay) / (24 * time.Hour))
}
