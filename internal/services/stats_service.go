package services

import (
	"context"
	"time"

	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

// StatsService computes read-only mastery rollups and the garden view.
// Storage failures degrade to zero/empty results with a logged warning.
type StatsService interface {
	MasteryStats(ctx context.Context, profileID int64, subject string) models.MasteryStats
	Garden(ctx context.Context, profileID int64, subject string) []models.GardenPlant
}

type statsService struct {
	masteryRepo repository.MasteryRepository
}

// NewStatsService creates a StatsService.
func NewStatsService(masteryRepo repository.MasteryRepository) StatsService {
	return &statsService{masteryRepo: masteryRepo}
}

func (s *statsService) MasteryStats(ctx context.Context, profileID int64, subject string) models.MasteryStats {
	log := logger.FromContext(ctx)

	records, err := s.masteryRepo.ListAll(ctx, profileID, subject)
	if err != nil {
		log.Warn("failed to load records for stats, returning zeros: %v", err)
		return models.MasteryStats{}
	}

	now := time.Now()
	stats := models.MasteryStats{TotalItems: len(records)}
	var accuracySum float64
	for _, rec := range records {
		accuracySum += rec.Accuracy()
		if rec.IsMastered() {
			stats.MasteredItems++
		}
		if rec.IsStruggling() {
			stats.StrugglingItems++
		}
		if rec.IsDue(now) {
			stats.DueForReview++
		}
	}
	if len(records) > 0 {
		// Mean of per-item accuracies, not attempts-weighted.
		stats.OverallAccuracy = accuracySum / float64(len(records))
		stats.MasteryPercentage = float64(stats.MasteredItems) / float64(len(records)) * 100
	}

	log.Debug("stats: profile_id=%d, subject=%s, total=%d, mastered=%d, struggling=%d, due=%d",
		profileID, subject, stats.TotalItems, stats.MasteredItems, stats.StrugglingItems, stats.DueForReview)
	return stats
}

func (s *statsService) Garden(ctx context.Context, profileID int64, subject string) []models.GardenPlant {
	log := logger.FromContext(ctx)

	records, err := s.masteryRepo.ListAll(ctx, profileID, subject)
	if err != nil {
		log.Warn("failed to load records for garden, returning empty: %v", err)
		return []models.GardenPlant{}
	}

	now := time.Now()
	plants := make([]models.GardenPlant, 0, len(records))
	for _, rec := range records {
		plants = append(plants, models.GardenPlant{
			Record: rec,
			Stage:  mastery.ClassifyStage(rec, now).String(),
		})
	}
	return plants
}
