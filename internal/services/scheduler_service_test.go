package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/sproutly/sproutly/internal/errors"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/services"
	"github.com/sproutly/sproutly/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func countingCard() models.LessonCard {
	return models.LessonCard{
		ID:           "math-1-count-3",
		Subject:      models.SubjectMath,
		LevelID:      "math-1",
		ActivityType: models.ActivityCounting,
		Number:       3,
		ObjectName:   "apple",
	}
}

func TestRecordAnswer_CreatesRecordOnFirstExposure(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	repo.On("Get", mock.Anything, int64(1), "num_3_apple").Return(nil, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.MasteryRecord")).Return(int64(7), nil)
	repo.On("InsertReviewEvent", mock.Anything, int64(7), 5, int64(2000)).Return(nil)

	record, err := svc.RecordAnswer(context.Background(), 1, countingCard(), models.SubjectMath, "math-1", true, 1, 2*time.Second)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, "num_3_apple", record.ItemID)
	assert.Equal(t, 1, record.TotalAttempts)
	assert.Equal(t, 1, record.CorrectAttempts)
	assert.Equal(t, 1, record.Repetitions)
	assert.Equal(t, 1, record.IntervalDays)
	assert.Equal(t, 5, record.LastQuality)
	assert.InDelta(t, 2.07, record.EaseFactor, 1e-9)

	repo.AssertExpectations(t)
}

func TestRecordAnswer_UpdatesExistingRecord(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	existing := &models.MasteryRecord{
		ID:              4,
		ProfileID:       1,
		ItemID:          "num_3_apple",
		Subject:         models.SubjectMath,
		IntervalDays:    3,
		EaseFactor:      2.0,
		Repetitions:     2,
		TotalAttempts:   2,
		CorrectAttempts: 2,
	}
	repo.On("Get", mock.Anything, int64(1), "num_3_apple").Return(existing, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.MasteryRecord")).Return(int64(4), nil)
	repo.On("InsertReviewEvent", mock.Anything, int64(4), mock.Anything, mock.Anything).Return(nil)

	record, err := svc.RecordAnswer(context.Background(), 1, countingCard(), models.SubjectMath, "math-1", true, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, record.Repetitions)
	assert.Equal(t, 6, record.IntervalDays, "3 days * ease 2.0")
	assert.Equal(t, 3, record.TotalAttempts)

	repo.AssertExpectations(t)
}

func TestRecordAnswer_ReturnsRecordWhenWriteFails(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	repo.On("Get", mock.Anything, int64(1), "num_3_apple").Return(nil, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.MasteryRecord")).Return(int64(0), errors.New("disk full"))

	record, err := svc.RecordAnswer(context.Background(), 1, countingCard(), models.SubjectMath, "math-1", true, 1, 0)
	require.NoError(t, err, "write failures are best-effort, not caller errors")
	require.NotNil(t, record)
	assert.Equal(t, 1, record.TotalAttempts)

	repo.AssertNotCalled(t, "InsertReviewEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordAnswer_TreatsReadFailureAsFreshRecord(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	repo.On("Get", mock.Anything, int64(1), "num_3_apple").Return(nil, errors.New("io error"))
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.MasteryRecord")).Return(int64(9), nil)
	repo.On("InsertReviewEvent", mock.Anything, int64(9), mock.Anything, mock.Anything).Return(nil)

	record, err := svc.RecordAnswer(context.Background(), 1, countingCard(), models.SubjectMath, "math-1", false, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, record.TotalAttempts)
	assert.Equal(t, 0, record.CorrectAttempts)
	assert.Equal(t, 1, record.LastQuality)
}

func TestRecordAnswer_UnknownActivityIsValidationError(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	card := models.LessonCard{ActivityType: "finger-painting"}
	record, err := svc.RecordAnswer(context.Background(), 1, card, models.SubjectMath, "math-1", true, 1, 0)
	require.Error(t, err)
	assert.Nil(t, record)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestDueItems_ReturnsRecords(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	asOf := time.Now()
	records := []models.MasteryRecord{{ItemID: "num_1_apple"}, {ItemID: "num_2_star"}}
	repo.On("ListDue", mock.Anything, int64(1), models.SubjectMath, asOf).Return(records, nil)

	due := svc.DueItems(context.Background(), 1, models.SubjectMath, asOf)
	assert.Equal(t, records, due)
}

func TestDueItems_DegradesToEmptyOnStoreError(t *testing.T) {
	repo := new(mocks.MockMasteryRepository)
	svc := services.NewSchedulerService(repo)

	repo.On("ListDue", mock.Anything, int64(1), models.SubjectMath, mock.Anything).Return(nil, errors.New("locked"))

	due := svc.DueItems(context.Background(), 1, models.SubjectMath, time.Now())
	assert.Empty(t, due)
}
