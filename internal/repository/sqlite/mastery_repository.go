package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const masteryColumns = `id, profile_id, item_id, subject, level_id, activity_type,
interval_days, ease_factor, repetitions, last_quality,
last_reviewed_at, next_review_at, total_attempts, correct_attempts,
created_at, updated_at`

type masteryRepository struct {
	db *sql.DB
}

// NewMasteryRepository creates a MasteryRepository backed by sqlite.
func NewMasteryRepository(db *sql.DB) repository.MasteryRepository {
	return &masteryRepository{db: db}
}

func (r *masteryRepository) Get(ctx context.Context, profileID int64, itemID string) (*models.MasteryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")
	log.Debug("getting record: profile_id=%d, item_id=%s", profileID, itemID)

	row := r.db.QueryRowContext(ctx, `
SELECT `+masteryColumns+`
FROM mastery_records
WHERE profile_id = ? AND item_id = ?
`, profileID, itemID)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("record not found: item_id=%s", itemID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (r *masteryRepository) Upsert(ctx context.Context, rec models.MasteryRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")
	log.Debug("upserting record: profile_id=%d, item_id=%s, interval=%d, ease=%.2f",
		rec.ProfileID, rec.ItemID, rec.IntervalDays, rec.EaseFactor)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO mastery_records (
    profile_id, item_id, subject, level_id, activity_type,
    interval_days, ease_factor, repetitions, last_quality,
    last_reviewed_at, next_review_at, total_attempts, correct_attempts,
    created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (profile_id, item_id) DO UPDATE SET
    interval_days = excluded.interval_days,
    ease_factor = excluded.ease_factor,
    repetitions = excluded.repetitions,
    last_quality = excluded.last_quality,
    last_reviewed_at = excluded.last_reviewed_at,
    next_review_at = excluded.next_review_at,
    total_attempts = excluded.total_attempts,
    correct_attempts = excluded.correct_attempts,
    updated_at = excluded.updated_at
`, rec.ProfileID, rec.ItemID, rec.Subject, rec.LevelID, rec.ActivityType,
		rec.IntervalDays, rec.EaseFactor, rec.Repetitions, rec.LastQuality,
		nullTime(rec.LastReviewedAt), nullTime(rec.NextReviewAt),
		rec.TotalAttempts, rec.CorrectAttempts, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		log.Error("failed to upsert record: %v", err)
		return 0, err
	}

	if rec.ID != 0 {
		return rec.ID, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get record id: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *masteryRepository) ListDue(ctx context.Context, profileID int64, subject string, asOf time.Time) ([]models.MasteryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")
	log.Debug("listing due records: profile_id=%d, subject=%s, as_of=%s", profileID, subject, asOf.Format(time.RFC3339))

	query := sqlBuilder.Select(masteryColumns).
		From("mastery_records").
		Where(squirrel.Eq{"profile_id": profileID}).
		Where(squirrel.Or{
			squirrel.Eq{"next_review_at": nil},
			squirrel.LtOrEq{"next_review_at": asOf},
		}).
		OrderBy("next_review_at IS NOT NULL", "next_review_at ASC")
	if subject != "" {
		query = query.Where(squirrel.Eq{"subject": subject})
	}

	return r.queryRecords(ctx, query)
}

func (r *masteryRepository) ListAll(ctx context.Context, profileID int64, subject string) ([]models.MasteryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")
	log.Debug("listing records: profile_id=%d, subject=%s", profileID, subject)

	query := sqlBuilder.Select(masteryColumns).
		From("mastery_records").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("item_id ASC")
	if subject != "" {
		query = query.Where(squirrel.Eq{"subject": subject})
	}

	return r.queryRecords(ctx, query)
}

func (r *masteryRepository) InsertReviewEvent(ctx context.Context, recordID int64, quality int, responseMs int64) error {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")
	log.Debug("inserting review event: record_id=%d, quality=%d", recordID, quality)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_events (record_id, quality, response_ms)
VALUES (?, ?, ?)
`, recordID, quality, responseMs)
	if err != nil {
		log.Error("failed to insert review event: %v", err)
	}
	return err
}

func (r *masteryRepository) queryRecords(ctx context.Context, query squirrel.SelectBuilder) ([]models.MasteryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.MasteryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Error("failed to scan record row: %v", err)
			return nil, err
		}
		records = append(records, *rec)
	}
	log.Debug("found %d records", len(records))
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.MasteryRecord, error) {
	var rec models.MasteryRecord
	var lastReviewed, nextReview sql.NullTime
	err := row.Scan(&rec.ID, &rec.ProfileID, &rec.ItemID, &rec.Subject, &rec.LevelID, &rec.ActivityType,
		&rec.IntervalDays, &rec.EaseFactor, &rec.Repetitions, &rec.LastQuality,
		&lastReviewed, &nextReview, &rec.TotalAttempts, &rec.CorrectAttempts,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time
		rec.LastReviewedAt = &t
	}
	if nextReview.Valid {
		t := nextReview.Time
		rec.NextReviewAt = &t
	}
	return &rec, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
