package registration_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	apperrors "github.com/hmiyata/shindan/internal/errors"
	"github.com/hmiyata/shindan/internal/models"
	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/hmiyata/shindan/internal/registration"
	"github.com/hmiyata/shindan/internal/session"
	"github.com/hmiyata/shindan/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeadRepo keeps leads in memory.
type fakeLeadRepo struct {
	leads  map[int64]models.Lead
	nextID int64
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[int64]models.Lead{}, nextID: 1}
}

func (f *fakeLeadRepo) Insert(ctx context.Context, lead models.Lead) (int64, error) {
	id := f.nextID
	f.nextID++
	lead.ID = id
	f.leads[id] = lead
	return id, nil
}

func (f *fakeLeadRepo) Get(ctx context.Context, id int64) (*models.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, nil
	}
	return &lead, nil
}

func (f *fakeLeadRepo) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	out := make([]models.Lead, 0, len(f.leads))
	for _, lead := range f.leads {
		out = append(out, lead)
	}
	return out, nil
}

func (f *fakeLeadRepo) Count(ctx context.Context, filter models.LeadFilter) (int, error) {
	return len(f.leads), nil
}

func (f *fakeLeadRepo) UpdateForwardStatus(ctx context.Context, id int64, status string) error {
	lead, ok := f.leads[id]
	if !ok {
		return errors.New("lead not found")
	}
	lead.ForwardStatus = status
	f.leads[id] = lead
	return nil
}

// stubForwarder records forwarded registrations and can be told to fail.
type stubForwarder struct {
	err      error
	received []registration.Registration
}

func (s *stubForwarder) Forward(ctx context.Context, reg registration.Registration) error {
	s.received = append(s.received, reg)
	return s.err
}

// syncQueue holds submitted jobs until the test runs them.
type syncQueue struct {
	jobs []worker.Job
}

func (q *syncQueue) Submit(job worker.Job) {
	q.jobs = append(q.jobs, job)
}

func (q *syncQueue) runAll(t *testing.T) {
	t.Helper()
	for _, job := range q.jobs {
		_ = job.Run(context.Background())
	}
	q.jobs = nil
}

func finishedSession(t *testing.T) *session.Session {
	t.Helper()
	a := quiz.NewAttempt(quiz.VAKBank, quiz.WithRand(rand.New(rand.NewSource(1))))
	a.Start()
	for {
		q, _, ok := a.CurrentQuestion()
		if !ok {
			break
		}
		value := 1
		if q.Category == quiz.Visual {
			value = 5
		}
		require.NoError(t, a.Answer(q.ID, value))
	}
	require.NotNil(t, a.Result())

	store := session.NewStore(time.Hour)
	return store.Create(a)
}

func TestSubmit_StoresLeadAndForwards(t *testing.T) {
	repo := newFakeLeadRepo()
	forwarder := &stubForwarder{}
	queue := &syncQueue{}
	svc := registration.NewService(repo, forwarder, queue)
	sess := finishedSession(t)

	lead, err := svc.Submit(context.Background(), sess, "  山田 太郎  ", "taro@example.com")
	require.NoError(t, err)

	assert.Equal(t, "山田 太郎", lead.Name)
	assert.Equal(t, "taro@example.com", lead.Email)
	assert.Equal(t, "vak", lead.Quiz)
	assert.Equal(t, string(quiz.Visual), lead.Dominant)
	assert.Equal(t, models.ForwardPending, lead.ForwardStatus)
	assert.Contains(t, lead.ScoresJSON, `"V":20`)
	assert.Equal(t, quiz.LeadPending, svc.Status(sess))

	queue.runAll(t)

	require.Len(t, forwarder.received, 1)
	assert.Equal(t, "taro@example.com", forwarder.received[0].Email)
	assert.Equal(t, string(quiz.Visual), forwarder.received[0].Dominant)
	assert.Equal(t, quiz.LeadSuccess, svc.Status(sess))

	stored, err := repo.Get(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ForwardSuccess, stored.ForwardStatus)
}

func TestSubmit_ValidatesName(t *testing.T) {
	svc := registration.NewService(newFakeLeadRepo(), &stubForwarder{}, &syncQueue{})
	sess := finishedSession(t)

	_, err := svc.Submit(context.Background(), sess, "   ", "taro@example.com")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, quiz.LeadIdle, svc.Status(sess))
}

func TestSubmit_ValidatesEmail(t *testing.T) {
	svc := registration.NewService(newFakeLeadRepo(), &stubForwarder{}, &syncQueue{})
	sess := finishedSession(t)

	_, err := svc.Submit(context.Background(), sess, "山田", "not-an-email")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestSubmit_RequiresFinishedAttempt(t *testing.T) {
	svc := registration.NewService(newFakeLeadRepo(), &stubForwarder{}, &syncQueue{})

	a := quiz.NewAttempt(quiz.VAKBank)
	a.Start()
	store := session.NewStore(time.Hour)
	sess := store.Create(a)

	_, err := svc.Submit(context.Background(), sess, "山田", "taro@example.com")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidState, appErr.Code)
}

func TestSubmit_RejectsWhileInFlight(t *testing.T) {
	repo := newFakeLeadRepo()
	queue := &syncQueue{}
	svc := registration.NewService(repo, &stubForwarder{}, queue)
	sess := finishedSession(t)

	_, err := svc.Submit(context.Background(), sess, "山田", "taro@example.com")
	require.NoError(t, err)

	// The forward has not completed yet.
	_, err = svc.Submit(context.Background(), sess, "山田", "taro@example.com")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidState, appErr.Code)
}

func TestSubmit_ErrorStatusAllowsRetry(t *testing.T) {
	repo := newFakeLeadRepo()
	forwarder := &stubForwarder{err: errors.New("upstream down")}
	queue := &syncQueue{}
	svc := registration.NewService(repo, forwarder, queue)
	sess := finishedSession(t)

	lead, err := svc.Submit(context.Background(), sess, "山田", "taro@example.com")
	require.NoError(t, err)

	queue.runAll(t)
	assert.Equal(t, quiz.LeadError, svc.Status(sess))

	stored, err := repo.Get(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ForwardError, stored.ForwardStatus)

	// The quiz result survives a failed forward and the user may retry.
	var result *quiz.Result
	sess.Do(func(a *quiz.Attempt) { result = a.Result() })
	require.NotNil(t, result)

	forwarder.err = nil
	_, err = svc.Submit(context.Background(), sess, "山田", "taro@example.com")
	require.NoError(t, err)

	queue.runAll(t)
	assert.Equal(t, quiz.LeadSuccess, svc.Status(sess))
}
