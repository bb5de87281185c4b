package api

import (
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	subject := r.URL.Query().Get("subject")

	stats := s.StatsService.MasteryStats(r.Context(), profileID, subject)
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleGarden(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	subject := r.URL.Query().Get("subject")

	plants := s.StatsService.Garden(r.Context(), profileID, subject)
	writeJSON(w, http.StatusOK, map[string]any{"plants": plants})
}
