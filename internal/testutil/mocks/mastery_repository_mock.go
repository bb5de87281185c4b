package mocks

import (
	"context"
	"time"

	"github.com/sproutly/sproutly/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockMasteryRepository is a mock implementation of repository.MasteryRepository
type MockMasteryRepository struct {
	mock.Mock
}

func (m *MockMasteryRepository) Get(ctx context.Context, profileID int64, itemID string) (*models.MasteryRecord, error) {
	args := m.Called(ctx, profileID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MasteryRecord), args.Error(1)
}

func (m *MockMasteryRepository) Upsert(ctx context.Context, record models.MasteryRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMasteryRepository) ListDue(ctx context.Context, profileID int64, subject string, asOf time.Time) ([]models.MasteryRecord, error) {
	args := m.Called(ctx, profileID, subject, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MasteryRecord), args.Error(1)
}

func (m *MockMasteryRepository) ListAll(ctx context.Context, profileID int64, subject string) ([]models.MasteryRecord, error) {
	args := m.Called(ctx, profileID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MasteryRecord), args.Error(1)
}

func (m *MockMasteryRepository) InsertReviewEvent(ctx context.Context, recordID int64, quality int, responseMs int64) error {
	args := m.Called(ctx, recordID, quality, responseMs)
	return args.Error(0)
}
