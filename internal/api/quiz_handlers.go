package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/hmiyata/shindan/internal/errors"
	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/quiz"
)

type quizSummary struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Categories     []string `json:"categories"`
	TotalQuestions int      `json:"total_questions"`
	MaxScore       int      `json:"max_score"`
}

func summarize(b *quiz.Bank) quizSummary {
	cats := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		cats = append(cats, string(c))
	}
	return quizSummary{
		Key:            b.Key,
		Title:          b.Title,
		Categories:     cats,
		TotalQuestions: b.TotalQuestions(),
		MaxScore:       b.MaxScore(),
	}
}

func (s *Server) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	keys := make([]string, 0, len(quiz.Banks))
	for key := range quiz.Banks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summaries := make([]quizSummary, 0, len(keys))
	for _, key := range keys {
		summaries = append(summaries, summarize(quiz.Banks[key]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"quizzes": summaries})
}

func (s *Server) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "quiz")
	bank, ok := quiz.Lookup(key)
	if !ok {
		handleError(w, r, errors.NewNotFoundError("quiz", key))
		return
	}
	respondJSON(w, http.StatusOK, summarize(bank))
}

func (s *Server) handleCreateAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	key := chi.URLParam(r, "quiz")
	bank, ok := quiz.Lookup(key)
	if !ok {
		handleError(w, r, errors.NewNotFoundError("quiz", key))
		return
	}

	attempt := quiz.NewAttempt(bank)
	attempt.Start()
	sess := s.Sessions.Create(attempt)

	log.Info("attempt %s started for quiz %s", sess.ID, key)
	respondJSON(w, http.StatusCreated, attemptState(sess))
}
