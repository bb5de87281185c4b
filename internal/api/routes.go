package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Get("/profiles", s.handleListProfiles)
	r.Post("/profiles", s.handleCreateProfile)
	r.Delete("/profiles/{id}", s.handleDeleteProfile)

	r.Route("/profiles/{id}", func(r chi.Router) {
		r.Get("/lessons", s.handleLesson)
		r.Post("/answers", s.handleAnswer)
		r.Get("/stats", s.handleStats)
		r.Get("/garden", s.handleGarden)
	})

	return r
}
