package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/sproutly/sproutly/internal/errors"
	"github.com/sproutly/sproutly/internal/logger"
)

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.ProfileService.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := s.ProfileService.CreateProfile(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProfileService.DeleteProfile(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("profile %d deleted via API", id)
	w.WriteHeader(http.StatusNoContent)
}
