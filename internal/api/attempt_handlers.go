package api

import (
	"encoding/json"
	"net/http"

	"github.com/hmiyata/shindan/internal/errors"
	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/mail"
	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/hmiyata/shindan/internal/session"
)

type progressView struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type questionView struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	PriorAnswer int    `json:"prior_answer,omitempty"`
}

type stateView struct {
	AttemptID  string          `json:"attempt_id"`
	Quiz       string          `json:"quiz"`
	Screen     quiz.Screen     `json:"screen"`
	Progress   progressView    `json:"progress"`
	Question   *questionView   `json:"question,omitempty"`
	LeadStatus quiz.LeadStatus `json:"lead_status"`
}

// attemptState snapshots the session into the wire representation
// shared by every attempt endpoint.
func attemptState(sess *session.Session) stateView {
	var view stateView
	sess.Do(func(a *quiz.Attempt) {
		current, total := a.Progress()
		view = stateView{
			AttemptID:  sess.ID,
			Quiz:       a.Bank().Key,
			Screen:     a.Screen(),
			Progress:   progressView{Current: current, Total: total},
			LeadStatus: a.LeadStatus(),
		}
		if q, prior, ok := a.CurrentQuestion(); ok {
			view.Question = &questionView{ID: q.ID, Text: q.Text, PriorAnswer: prior}
		}
	})
	return view
}

func (s *Server) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, attemptState(sess))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())

	var req struct {
		QuestionID int `json:"question_id"`
		Value      int `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	var answerErr error
	sess.Do(func(a *quiz.Attempt) {
		answerErr = a.Answer(req.QuestionID, req.Value)
	})
	if answerErr != nil {
		handleError(w, r, answerErr)
		return
	}

	log.Debug("answer recorded for attempt %s (question=%d value=%d)", sess.ID, req.QuestionID, req.Value)
	respondJSON(w, http.StatusOK, attemptState(sess))
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var backErr error
	sess.Do(func(a *quiz.Attempt) {
		backErr = a.Back()
	})
	if backErr != nil {
		handleError(w, r, backErr)
		return
	}
	respondJSON(w, http.StatusOK, attemptState(sess))
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())

	sess.Do(func(a *quiz.Attempt) {
		a.Restart()
	})

	log.Info("attempt %s restarted", sess.ID)
	respondJSON(w, http.StatusOK, attemptState(sess))
}

type radarView struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Max    int      `json:"max"`
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var (
		result *quiz.Result
		bank   *quiz.Bank
	)
	sess.Do(func(a *quiz.Attempt) {
		result = a.Result()
		bank = a.Bank()
	})
	if result == nil {
		handleError(w, r, errors.NewInvalidStateError("fetch result", "the quiz has not been completed"))
		return
	}

	radar := radarView{Max: bank.MaxScore()}
	for _, c := range bank.Categories {
		radar.Labels = append(radar.Labels, bank.Content[c].Title)
		radar.Values = append(radar.Values, result.Scores[c])
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"quiz":     bank.Key,
		"scores":   result.Scores,
		"dominant": result.Dominant,
		"content":  result.Content,
		"radar":    radar,
	})
}

func (s *Server) handleEmailPreview(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	name := r.URL.Query().Get("name")

	var (
		result *quiz.Result
		bank   *quiz.Bank
	)
	sess.Do(func(a *quiz.Attempt) {
		result = a.Result()
		bank = a.Bank()
	})
	if result == nil {
		handleError(w, r, errors.NewInvalidStateError("preview email", "the quiz has not been completed"))
		return
	}

	previews := mail.ComposePreviews(bank, result.Scores, result.Dominant, name)
	respondJSON(w, http.StatusOK, map[string]any{
		"dominant": result.Dominant,
		"previews": previews,
	})
}
