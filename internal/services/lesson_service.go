package services

import (
	"context"
	"time"

	"github.com/sproutly/sproutly/internal/lesson"
	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

// LessonService builds the final ordered card sequence for one lesson.
type LessonService interface {
	// ComposeLesson fetches the level's cards and the profile's due records
	// and interleaves them. Every failure degrades: a missing curriculum
	// yields an empty lesson, a storage failure yields a new-cards-only
	// lesson. It never returns an error to the presentation layer.
	ComposeLesson(ctx context.Context, profileID int64, subject, levelID string) []models.LessonCard
}

type lessonService struct {
	scheduler  SchedulerService
	curriculum repository.CurriculumProvider
}

// NewLessonService creates a LessonService.
func NewLessonService(scheduler SchedulerService, curriculum repository.CurriculumProvider) LessonService {
	return &lessonService{scheduler: scheduler, curriculum: curriculum}
}

func (s *lessonService) ComposeLesson(ctx context.Context, profileID int64, subject, levelID string) []models.LessonCard {
	log := logger.FromContext(ctx)
	log.Debug("composing lesson: profile_id=%d, subject=%s, level=%s", profileID, subject, levelID)

	cards, err := s.curriculum.CardsFor(ctx, subject, levelID)
	if err != nil {
		log.Warn("curriculum unavailable, returning empty lesson: %v", err)
		return []models.LessonCard{}
	}
	if len(cards) == 0 {
		log.Debug("no cards for subject=%s level=%s", subject, levelID)
		return []models.LessonCard{}
	}

	due := s.scheduler.DueItems(ctx, profileID, subject, time.Now())

	sequence := lesson.Compose(cards, due)
	log.Debug("lesson composed: cards=%d, due=%d, sequence=%d", len(cards), len(due), len(sequence))
	return sequence
}
