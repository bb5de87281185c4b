package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/sproutly/sproutly/internal/errors"
	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

// SchedulerService turns raw answer signals into scheduling updates and
// surfaces due items for lesson composition.
type SchedulerService interface {
	// RecordAnswer scores the answer, fetches or creates the mastery record
	// for the card, applies the review update and persists it. The updated
	// record is returned even when the write fails (best-effort persistence).
	RecordAnswer(ctx context.Context, profileID int64, card models.LessonCard, subject, levelID string, isCorrect bool, attempts int, responseTime time.Duration) (*models.MasteryRecord, error)
	// DueItems returns the records due for review as of the given instant,
	// most overdue first. Storage failures degrade to an empty list.
	DueItems(ctx context.Context, profileID int64, subject string, asOf time.Time) []models.MasteryRecord
}

type schedulerService struct {
	masteryRepo repository.MasteryRepository

	// Serializes the read-modify-write in RecordAnswer per (profile, item)
	// key so concurrent answers for the same fact cannot lose updates.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSchedulerService creates a SchedulerService.
func NewSchedulerService(masteryRepo repository.MasteryRepository) SchedulerService {
	return &schedulerService{
		masteryRepo: masteryRepo,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (s *schedulerService) RecordAnswer(ctx context.Context, profileID int64, card models.LessonCard, subject, levelID string, isCorrect bool, attempts int, responseTime time.Duration) (*models.MasteryRecord, error) {
	log := logger.FromContext(ctx)

	if attempts < 1 {
		attempts = 1
	}

	itemID, err := mastery.DeriveItemID(card)
	if err != nil {
		log.Warn("cannot record answer, no item id for card: %v", err)
		return nil, apperrors.NewValidationError("card", fmt.Sprintf("unsupported activity type %q", card.ActivityType))
	}

	quality := mastery.QualityScore(isCorrect, attempts, responseTime)
	log.Debug("recording answer: profile_id=%d, item_id=%s, correct=%t, attempts=%d, quality=%d",
		profileID, itemID, isCorrect, attempts, quality)

	unlock := s.lockItem(profileID, itemID)
	defer unlock()

	now := time.Now()
	record, err := s.masteryRepo.Get(ctx, profileID, itemID)
	if err != nil {
		// Treat a failed read as a missing record so the answer still counts
		// toward a fresh record this session.
		log.Error("failed to load mastery record, starting fresh: %v", err)
		record = nil
	}
	if record == nil {
		fresh := mastery.NewRecord(profileID, itemID, card, subject, levelID, now)
		record = &fresh
	}

	updated := mastery.ApplyReview(*record, quality, now)

	id, err := s.masteryRepo.Upsert(ctx, updated)
	if err != nil {
		// Best-effort: the caller still gets the updated record so the UI can
		// show feedback; this one update is lost on next load.
		log.Error("failed to persist mastery record: %v", err)
		return &updated, nil
	}
	updated.ID = id

	if err := s.masteryRepo.InsertReviewEvent(ctx, id, quality, responseTime.Milliseconds()); err != nil {
		log.Warn("failed to store review event: %v", err)
	}

	log.Debug("answer recorded: item_id=%s, interval=%d, ease=%.2f, repetitions=%d",
		itemID, updated.IntervalDays, updated.EaseFactor, updated.Repetitions)
	return &updated, nil
}

func (s *schedulerService) DueItems(ctx context.Context, profileID int64, subject string, asOf time.Time) []models.MasteryRecord {
	log := logger.FromContext(ctx)

	records, err := s.masteryRepo.ListDue(ctx, profileID, subject, asOf)
	if err != nil {
		log.Warn("failed to list due records, returning none: %v", err)
		return []models.MasteryRecord{}
	}

	log.Debug("due items: profile_id=%d, subject=%s, count=%d", profileID, subject, len(records))
	return records
}

func (s *schedulerService) lockItem(profileID int64, itemID string) func() {
	key := fmt.Sprintf("%d/%s", profileID, itemID)
	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}
