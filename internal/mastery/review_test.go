package mastery_test

import (
	"testing"
	"time"

	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(reps, interval int, ease float64) models.MasteryRecord {
	return models.MasteryRecord{
		ProfileID:    1,
		ItemID:       "num_3_apple",
		Subject:      models.SubjectMath,
		Repetitions:  reps,
		IntervalDays: interval,
		EaseFactor:   ease,
	}
}

func TestApplyReview_FirstPass(t *testing.T) {
	now := time.Now()
	for q := 3; q <= 5; q++ {
		updated := mastery.ApplyReview(newRecord(0, 1, 2.0), q, now)
		assert.Equal(t, 1, updated.IntervalDays, "quality %d: first pass sets interval to 1", q)
		assert.Equal(t, 1, updated.Repetitions, "quality %d: first pass sets repetitions to 1", q)
		assert.Equal(t, 1, updated.TotalAttempts)
		assert.Equal(t, 1, updated.CorrectAttempts)
	}
}

func TestApplyReview_SecondPass(t *testing.T) {
	now := time.Now()
	for q := 3; q <= 5; q++ {
		updated := mastery.ApplyReview(newRecord(1, 1, 2.0), q, now)
		assert.Equal(t, 3, updated.IntervalDays, "quality %d: second pass sets interval to 3", q)
		assert.Equal(t, 2, updated.Repetitions)
	}
}

func TestApplyReview_LaterPassesMultiplyByEase(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		interval int
		ease     float64
		expected int
	}{
		{"rounds to nearest day", 3, 2.0, 6},
		{"rounds half up", 5, 2.1, 11}, // 10.5 -> 11
		{"caps at 30", 20, 2.5, 30},
		{"already at cap stays capped", 30, 2.5, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := mastery.ApplyReview(newRecord(2, tt.interval, tt.ease), 4, now)
			assert.Equal(t, tt.expected, updated.IntervalDays)
			assert.Equal(t, 3, updated.Repetitions)
			assert.LessOrEqual(t, updated.IntervalDays, mastery.MaxIntervalDays)
		})
	}
}

func TestApplyReview_FailResetsProgress(t *testing.T) {
	now := time.Now()
	for q := 0; q < 3; q++ {
		rec := newRecord(5, 20, 2.3)
		rec.TotalAttempts = 8
		rec.CorrectAttempts = 7

		updated := mastery.ApplyReview(rec, q, now)
		assert.Equal(t, 0, updated.Repetitions, "quality %d resets repetitions", q)
		assert.Equal(t, 1, updated.IntervalDays, "quality %d resets interval", q)
		assert.Equal(t, 9, updated.TotalAttempts)
		assert.Equal(t, 7, updated.CorrectAttempts, "failing answer does not count as correct")
	}
}

func TestApplyReview_EaseStaysBounded(t *testing.T) {
	now := time.Now()
	for _, ease := range []float64{1.3, 1.5, 2.0, 2.5} {
		for q := 0; q <= 5; q++ {
			updated := mastery.ApplyReview(newRecord(2, 5, ease), q, now)
			assert.GreaterOrEqual(t, updated.EaseFactor, mastery.MinEase, "ease=%.2f q=%d", ease, q)
			assert.LessOrEqual(t, updated.EaseFactor, mastery.MaxEase, "ease=%.2f q=%d", ease, q)
		}
	}
}

func TestApplyReview_DampenedEaseDelta(t *testing.T) {
	now := time.Now()

	// Perfect answer: delta = 0.7 * 0.1 = 0.07.
	updated := mastery.ApplyReview(newRecord(0, 1, 2.0), 5, now)
	assert.InDelta(t, 2.07, updated.EaseFactor, 1e-9)

	// Blackout: delta = 0.7 * (0.1 - 5*(0.08+0.10)) = 0.7 * -0.8 = -0.56.
	updated = mastery.ApplyReview(newRecord(0, 1, 2.0), 0, now)
	assert.InDelta(t, 1.44, updated.EaseFactor, 1e-9)
}

func TestApplyReview_ClampsQuality(t *testing.T) {
	now := time.Now()

	high := mastery.ApplyReview(newRecord(0, 1, 2.0), 9, now)
	assert.Equal(t, 5, high.LastQuality)
	assert.Equal(t, 1, high.Repetitions)

	low := mastery.ApplyReview(newRecord(2, 10, 2.0), -4, now)
	assert.Equal(t, 0, low.LastQuality)
	assert.Equal(t, 0, low.Repetitions)
}

func TestApplyReview_StampsDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	updated := mastery.ApplyReview(newRecord(1, 1, 2.0), 4, now)
	require.NotNil(t, updated.LastReviewedAt)
	require.NotNil(t, updated.NextReviewAt)
	assert.Equal(t, now, *updated.LastReviewedAt)
	assert.Equal(t, now.AddDate(0, 0, 3), *updated.NextReviewAt)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestApplyReview_FirstEverFastAnswer(t *testing.T) {
	now := time.Now()
	rec := mastery.NewRecord(1, "num_3_apple", models.LessonCard{ActivityType: models.ActivityCounting}, models.SubjectMath, "math-1", now)

	q := mastery.QualityScore(true, 1, 2*time.Second)
	require.Equal(t, 5, q)

	updated := mastery.ApplyReview(rec, q, now)
	assert.Equal(t, 1, updated.IntervalDays)
	assert.Equal(t, 1, updated.Repetitions)
	assert.InDelta(t, 2.07, updated.EaseFactor, 1e-9)
}

func TestApplyReview_ThreeFailsThenPass(t *testing.T) {
	now := time.Now()
	rec := mastery.NewRecord(1, "letter_B_ball", models.LessonCard{ActivityType: models.ActivityLetter}, models.SubjectLetters, "letters-1", now)

	var repsSeen []int
	for session := 0; session < 3; session++ {
		q := mastery.QualityScore(false, 3, 0)
		require.Equal(t, 0, q)
		rec = mastery.ApplyReview(rec, q, now)
		repsSeen = append(repsSeen, rec.Repetitions)
	}

	q := mastery.QualityScore(true, 1, 0)
	require.Equal(t, 4, q)
	rec = mastery.ApplyReview(rec, q, now)
	repsSeen = append(repsSeen, rec.Repetitions)

	assert.Equal(t, []int{0, 0, 0, 1}, repsSeen)
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name         string
		isCorrect    bool
		attempts     int
		responseTime time.Duration
		expected     int
	}{
		{"wrong after three tries", false, 3, 0, 0},
		{"wrong after many tries", false, 5, 0, 0},
		{"wrong early", false, 1, 0, 1},
		{"wrong second try", false, 2, 0, 1},
		{"right first try, fast", true, 1, 2 * time.Second, 5},
		{"right first try, slow", true, 1, 8 * time.Second, 4},
		{"right first try, time unknown", true, 1, 0, 4},
		{"right second try", true, 2, time.Second, 3},
		{"right third try", true, 3, time.Second, 2},
		{"right fifth try", true, 5, time.Second, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mastery.QualityScore(tt.isCorrect, tt.attempts, tt.responseTime))
		})
	}
}
