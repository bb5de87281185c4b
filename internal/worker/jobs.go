package worker

import (
	"context"
	"time"

	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/repository"
)

// GardenScanJob walks every profile's garden and logs how many items are due
// or wilting per subject. The numbers feed the parent digest and give
// operators a daily signal of neglected review backlogs.
type GardenScanJob struct {
	ProfileRepo repository.ProfileRepository
	MasteryRepo repository.MasteryRepository
	Subjects    []string
}

func (j *GardenScanJob) Name() string { return "garden-scan" }

func (j *GardenScanJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	profiles, err := j.ProfileRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, profile := range profiles {
		for _, subject := range j.Subjects {
			records, err := j.MasteryRepo.ListAll(ctx, profile.ID, subject)
			if err != nil {
				log.Warn("scan skipped for profile=%d subject=%s: %v", profile.ID, subject, err)
				continue
			}
			if len(records) == 0 {
				continue
			}

			var due, wilting int
			for _, rec := range records {
				if rec.IsDue(now) {
					due++
				}
				if mastery.ClassifyStage(rec, now) == mastery.StageWilting {
					wilting++
				}
			}
			log.Info("garden scan: profile=%d subject=%s items=%d due=%d wilting=%d",
				profile.ID, subject, len(records), due, wilting)
		}
	}
	return nil
}
