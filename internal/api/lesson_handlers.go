package api

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/sproutly/sproutly/internal/errors"
	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/models"
)

func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	subject := r.URL.Query().Get("subject")
	levelID := r.URL.Query().Get("level")
	if subject == "" || levelID == "" {
		handleError(w, r, apperrors.NewBadRequestError("subject and level are required"))
		return
	}

	// Verify the profile exists before composing; the lesson path itself
	// never errors.
	if _, err := s.ProfileService.GetProfile(r.Context(), profileID); err != nil {
		handleError(w, r, err)
		return
	}

	cards := s.LessonService.ComposeLesson(r.Context(), profileID, subject, levelID)
	writeJSON(w, http.StatusOK, map[string]any{
		"subject": subject,
		"level":   levelID,
		"cards":   cards,
	})
}

type answerRequest struct {
	Card       models.LessonCard `json:"card"`
	Subject    string            `json:"subject"`
	LevelID    string            `json:"level_id"`
	IsCorrect  bool              `json:"is_correct"`
	Attempts   int               `json:"attempts"`
	ResponseMs int64             `json:"response_ms"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Subject == "" {
		req.Subject = req.Card.Subject
	}
	if req.LevelID == "" {
		req.LevelID = req.Card.LevelID
	}

	record, err := s.SchedulerService.RecordAnswer(
		r.Context(), profileID, req.Card, req.Subject, req.LevelID,
		req.IsCorrect, req.Attempts, time.Duration(req.ResponseMs)*time.Millisecond)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"record": record,
		"stage":  mastery.ClassifyStage(*record, time.Now()).String(),
	})
}
