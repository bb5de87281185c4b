package repository

import (
	"context"
	"time"

	"github.com/sproutly/sproutly/internal/models"
)

// MasteryRepository handles mastery record data access. Records are keyed by
// (profile_id, item_id); Upsert replaces by that key.
type MasteryRepository interface {
	Get(ctx context.Context, profileID int64, itemID string) (*models.MasteryRecord, error)
	Upsert(ctx context.Context, record models.MasteryRecord) (int64, error)
	// ListDue returns records whose next review is at or before asOf,
	// earliest first. A record with no next review date counts as due and
	// sorts first.
	ListDue(ctx context.Context, profileID int64, subject string, asOf time.Time) ([]models.MasteryRecord, error)
	ListAll(ctx context.Context, profileID int64, subject string) ([]models.MasteryRecord, error)
	// InsertReviewEvent appends one row of review history for a record.
	InsertReviewEvent(ctx context.Context, recordID int64, quality int, responseMs int64) error
}

// ProfileRepository handles learner profile data access. Deleting a profile
// cascades to its mastery records; nothing else deletes records.
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, name string) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// CurriculumProvider supplies the candidate cards for a subject and level.
// Content must be stable for the duration of one lesson composition.
type CurriculumProvider interface {
	CardsFor(ctx context.Context, subject, levelID string) ([]models.LessonCard, error)
}
