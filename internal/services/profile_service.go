package services

import (
	"context"
	"strings"

	apperrors "github.com/sproutly/sproutly/internal/errors"
	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

// ProfileService handles learner profile management.
type ProfileService interface {
	GetProfile(ctx context.Context, id int64) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, name string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profileRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	if profile == nil {
		return nil, apperrors.NewNotFoundError("profile", id)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	return profiles, nil
}

func (s *profileService) CreateProfile(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "cannot be empty")
	}

	profile, err := s.profileRepo.Create(ctx, name)
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("profile created: id=%d, name=%s", profile.ID, profile.Name)
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete profile: %v", err)
		return apperrors.NewInternalError(err)
	}
	log.Info("profile deleted: id=%d", id)
	return nil
}
