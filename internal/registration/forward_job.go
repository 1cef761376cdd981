package registration

import (
	"context"
	"fmt"

	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/models"
	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/hmiyata/shindan/internal/repository"
	"github.com/hmiyata/shindan/internal/session"
)

// forwardJob delivers one stored lead downstream and settles both the
// database row and the attempt's lead status.
type forwardJob struct {
	leads     repository.LeadRepository
	forwarder Forwarder
	sess      *session.Session
	leadID    int64
	payload   Registration
}

func (j *forwardJob) Name() string {
	return fmt.Sprintf("forward-lead-%d", j.leadID)
}

func (j *forwardJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	forwardErr := j.forwarder.Forward(ctx, j.payload)

	rowStatus := models.ForwardSuccess
	leadStatus := quiz.LeadSuccess
	if forwardErr != nil {
		rowStatus = models.ForwardError
		leadStatus = quiz.LeadError
		log.Warn("forward failed for lead %d: %v", j.leadID, forwardErr)
	}

	if err := j.leads.UpdateForwardStatus(ctx, j.leadID, rowStatus); err != nil {
		log.Error("failed to record forward status for lead %d: %v", j.leadID, err)
	}

	j.sess.Do(func(a *quiz.Attempt) {
		a.SetLeadStatus(leadStatus)
	})

	return forwardErr
}
