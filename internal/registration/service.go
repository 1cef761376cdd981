package registration

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	apperrors "github.com/hmiyata/shindan/internal/errors"
	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/models"
	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/hmiyata/shindan/internal/repository"
	"github.com/hmiyata/shindan/internal/session"
	"github.com/hmiyata/shindan/internal/worker"
)

// JobQueue is the subset of the worker pool the service needs.
type JobQueue interface {
	Submit(worker.Job)
}

// Service captures leads for finished attempts and forwards them
// asynchronously to the configured downstream endpoint.
type Service struct {
	leads     repository.LeadRepository
	forwarder Forwarder
	queue     JobQueue
	log       *logger.Logger
}

func NewService(leads repository.LeadRepository, forwarder Forwarder, queue JobQueue) *Service {
	return &Service{
		leads:     leads,
		forwarder: forwarder,
		queue:     queue,
		log:       logger.Default().WithPrefix("registration"),
	}
}

// Submit validates the contact details, stores the lead and queues the
// forward. The attempt's lead status moves to pending; the queued job
// settles it to success or error.
func (s *Service) Submit(ctx context.Context, sess *session.Session, name, email string) (*models.Lead, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "cannot be empty")
	}
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}

	var (
		result  *quiz.Result
		status  quiz.LeadStatus
		bankKey string
	)
	sess.Do(func(a *quiz.Attempt) {
		result = a.Result()
		status = a.LeadStatus()
		bankKey = a.Bank().Key
	})
	if result == nil {
		return nil, apperrors.NewInvalidStateError("submit registration", "the quiz has not been completed")
	}
	if status == quiz.LeadPending {
		return nil, apperrors.NewInvalidStateError("submit registration", "a submission is already in progress")
	}

	scoresJSON, err := json.Marshal(result.Scores)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	lead := models.Lead{
		AttemptID:     sess.ID,
		Quiz:          bankKey,
		Name:          name,
		Email:         email,
		Dominant:      string(result.Dominant),
		ScoresJSON:    string(scoresJSON),
		ForwardStatus: models.ForwardPending,
		CreatedAt:     time.Now(),
	}
	id, err := s.leads.Insert(ctx, lead)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	lead.ID = id

	sess.Do(func(a *quiz.Attempt) {
		a.SetLeadStatus(quiz.LeadPending)
	})

	s.queue.Submit(&forwardJob{
		leads:     s.leads,
		forwarder: s.forwarder,
		sess:      sess,
		leadID:    id,
		payload: Registration{
			Name:     name,
			Email:    email,
			Quiz:     bankKey,
			Dominant: string(result.Dominant),
			Scores:   result.Scores,
		},
	})

	s.log.Info("lead %d captured for attempt %s (quiz=%s)", id, sess.ID, bankKey)
	return &lead, nil
}

// Status reports where the attempt's lead submission currently stands.
func (s *Service) Status(sess *session.Session) quiz.LeadStatus {
	var status quiz.LeadStatus
	sess.Do(func(a *quiz.Attempt) {
		status = a.LeadStatus()
	})
	return status
}
