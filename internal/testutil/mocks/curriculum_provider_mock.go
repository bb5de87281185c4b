package mocks

import (
	"context"

	"github.com/sproutly/sproutly/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCurriculumProvider is a mock implementation of repository.CurriculumProvider
type MockCurriculumProvider struct {
	mock.Mock
}

func (m *MockCurriculumProvider) CardsFor(ctx context.Context, subject, levelID string) ([]models.LessonCard, error) {
	args := m.Called(ctx, subject, levelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LessonCard), args.Error(1)
}
