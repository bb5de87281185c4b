package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/services"
	"github.com/sproutly/sproutly/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func levelCards(n int) []models.LessonCard {
	cards := make([]models.LessonCard, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, models.LessonCard{
			ID:           fmt.Sprintf("math-1-count-%d", i),
			Subject:      models.SubjectMath,
			LevelID:      "math-1",
			ActivityType: models.ActivityCounting,
			Number:       i,
			ObjectName:   "apple",
		})
	}
	return cards
}

func TestComposeLesson_BlendsDueItems(t *testing.T) {
	masteryRepo := new(mocks.MockMasteryRepository)
	curriculum := new(mocks.MockCurriculumProvider)
	scheduler := services.NewSchedulerService(masteryRepo)
	svc := services.NewLessonService(scheduler, curriculum)

	cards := levelCards(8)
	curriculum.On("CardsFor", mock.Anything, models.SubjectMath, "math-1").Return(cards, nil)

	past := time.Now().Add(-24 * time.Hour)
	due := []models.MasteryRecord{{
		ProfileID:       1,
		ItemID:          "num_2_apple",
		Subject:         models.SubjectMath,
		EaseFactor:      1.4,
		TotalAttempts:   4,
		CorrectAttempts: 1,
		NextReviewAt:    &past,
	}}
	masteryRepo.On("ListDue", mock.Anything, int64(1), models.SubjectMath, mock.Anything).Return(due, nil)

	sequence := svc.ComposeLesson(context.Background(), 1, models.SubjectMath, "math-1")
	require.Len(t, sequence, 8)

	var sawReview bool
	for _, card := range sequence {
		if card.Number == 2 {
			sawReview = true
		}
	}
	assert.True(t, sawReview, "the due item stays in the lesson")
}

func TestComposeLesson_EmptyWhenCurriculumFails(t *testing.T) {
	masteryRepo := new(mocks.MockMasteryRepository)
	curriculum := new(mocks.MockCurriculumProvider)
	svc := services.NewLessonService(services.NewSchedulerService(masteryRepo), curriculum)

	curriculum.On("CardsFor", mock.Anything, models.SubjectMath, "math-1").Return(nil, errors.New("content server down"))

	sequence := svc.ComposeLesson(context.Background(), 1, models.SubjectMath, "math-1")
	assert.Empty(t, sequence)
	masteryRepo.AssertNotCalled(t, "ListDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComposeLesson_NewCardsOnlyWhenStoreFails(t *testing.T) {
	masteryRepo := new(mocks.MockMasteryRepository)
	curriculum := new(mocks.MockCurriculumProvider)
	svc := services.NewLessonService(services.NewSchedulerService(masteryRepo), curriculum)

	cards := levelCards(5)
	curriculum.On("CardsFor", mock.Anything, models.SubjectMath, "math-1").Return(cards, nil)
	masteryRepo.On("ListDue", mock.Anything, int64(1), models.SubjectMath, mock.Anything).Return(nil, errors.New("locked"))

	sequence := svc.ComposeLesson(context.Background(), 1, models.SubjectMath, "math-1")
	assert.Equal(t, cards, sequence, "storage failure degrades to the plain curriculum order")
}

func TestComposeLesson_EmptyCurriculumLevel(t *testing.T) {
	masteryRepo := new(mocks.MockMasteryRepository)
	curriculum := new(mocks.MockCurriculumProvider)
	svc := services.NewLessonService(services.NewSchedulerService(masteryRepo), curriculum)

	curriculum.On("CardsFor", mock.Anything, models.SubjectMath, "math-99").Return([]models.LessonCard{}, nil)

	sequence := svc.ComposeLesson(context.Background(), 1, models.SubjectMath, "math-99")
	assert.Empty(t, sequence)
}
