package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/quizzes", s.handleListQuizzes)
		r.Get("/quizzes/{quiz}", s.handleGetQuiz)
		r.Post("/quizzes/{quiz}/attempts", s.handleCreateAttempt)

		r.Route("/attempts/{id}", func(r chi.Router) {
			r.Use(s.attemptMiddleware)
			r.Get("/", s.handleGetAttempt)
			r.Post("/answers", s.handleAnswer)
			r.Post("/back", s.handleBack)
			r.Post("/restart", s.handleRestart)
			r.Get("/result", s.handleResult)
			r.Get("/email-preview", s.handleEmailPreview)
			r.Post("/lead", s.handleSubmitLead)
			r.Get("/lead", s.handleLeadStatus)
		})

		r.Get("/admin/leads", s.handleListLeads)
	})

	return r
}
