package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a ProfileRepository backed by sqlite.
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%d", id)

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, created_at FROM profiles WHERE id = ?
`, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("listing profiles")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, created_at FROM profiles ORDER BY created_at ASC
`)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			log.Error("failed to scan profile row: %v", err)
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Create(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("creating profile: name=%s", name)

	res, err := r.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, name)
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get profile id: %v", err)
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("deleting profile: id=%d", id)

	// Mastery records and review events cascade via foreign keys.
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete profile: %v", err)
	}
	return err
}
