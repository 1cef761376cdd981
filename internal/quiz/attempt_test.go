package quiz_test

import (
	"math/rand"
	"testing"

	"github.com/hmiyata/shindan/internal/errors"
	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedAttempt(t *testing.T, seed int64) *quiz.Attempt {
	t.Helper()
	a := quiz.NewAttempt(quiz.VAKBank, quiz.WithRand(rand.New(rand.NewSource(seed))))
	a.Start()
	return a
}

// answerCurrent answers the presented question with the given value.
func answerCurrent(t *testing.T, a *quiz.Attempt, value int) {
	t.Helper()
	q, _, ok := a.CurrentQuestion()
	require.True(t, ok)
	require.NoError(t, a.Answer(q.ID, value))
}

func TestAttempt_StartsOnWelcome(t *testing.T) {
	a := quiz.NewAttempt(quiz.VAKBank)

	assert.Equal(t, quiz.ScreenWelcome, a.Screen())
	assert.Nil(t, a.Result())
	assert.Equal(t, quiz.LeadIdle, a.LeadStatus())

	_, _, ok := a.CurrentQuestion()
	assert.False(t, ok)
}

func TestAttempt_FullRunProducesResultOnce(t *testing.T) {
	a := newStartedAttempt(t, 7)
	total := quiz.VAKBank.TotalQuestions()

	for i := 0; i < total; i++ {
		assert.Equal(t, quiz.ScreenQuestion, a.Screen())
		current, _ := a.Progress()
		assert.Equal(t, i, current)
		answerCurrent(t, a, 3)
	}

	assert.Equal(t, quiz.ScreenResult, a.Screen())
	result := a.Result()
	require.NotNil(t, result)
	assert.Len(t, a.Answers(), total)
	assert.Equal(t, quiz.Balanced, result.Dominant)
	assert.Equal(t, quiz.VAKBank.Content[quiz.Balanced], result.Content)
}

func TestAttempt_AnswersAreKeyedByShuffledQuestionIDs(t *testing.T) {
	a := newStartedAttempt(t, 11)

	order := a.Questions()
	for range order {
		answerCurrent(t, a, 5)
	}

	answers := a.Answers()
	for _, q := range order {
		assert.Equal(t, 5, answers[q.ID])
	}
}

func TestAttempt_RejectsAnswerForNonPresentedQuestion(t *testing.T) {
	a := newStartedAttempt(t, 3)

	q, _, ok := a.CurrentQuestion()
	require.True(t, ok)
	wrongID := q.ID + 1
	if wrongID > quiz.VAKBank.TotalQuestions() {
		wrongID = 1
	}

	err := a.Answer(wrongID, 3)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Empty(t, a.Answers())
}

func TestAttempt_RejectsOutOfDomainValues(t *testing.T) {
	a := newStartedAttempt(t, 3)
	q, _, ok := a.CurrentQuestion()
	require.True(t, ok)

	for _, v := range []int{0, 6, -1, 100} {
		err := a.Answer(q.ID, v)
		require.Error(t, err, "value %d", v)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	}

	// State is untouched: the same question is still presented.
	still, _, ok := a.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, q.ID, still.ID)
	assert.Empty(t, a.Answers())
}

func TestAttempt_AnswerAfterResultRejected(t *testing.T) {
	a := newStartedAttempt(t, 5)
	for i := 0; i < quiz.VAKBank.TotalQuestions(); i++ {
		answerCurrent(t, a, 4)
	}
	require.Equal(t, quiz.ScreenResult, a.Screen())
	before := a.Result()

	err := a.Answer(1, 3)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidState, appErr.Code)
	assert.Same(t, before, a.Result())
}

func TestAttempt_BackAtFirstQuestionRejected(t *testing.T) {
	a := newStartedAttempt(t, 9)

	err := a.Back()
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidState, appErr.Code)
}

func TestAttempt_BackPreservesAnswerAndAllowsRevision(t *testing.T) {
	a := newStartedAttempt(t, 13)

	first, _, ok := a.CurrentQuestion()
	require.True(t, ok)
	require.NoError(t, a.Answer(first.ID, 2))

	require.NoError(t, a.Back())

	// The answer given on the first pass is exposed again.
	q, prior, ok := a.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, first.ID, q.ID)
	assert.Equal(t, 2, prior)

	// Revising overwrites the earlier value.
	require.NoError(t, a.Answer(first.ID, 5))
	assert.Equal(t, 5, a.Answers()[first.ID])
}

func TestAttempt_BackOnWelcomeRejected(t *testing.T) {
	a := quiz.NewAttempt(quiz.VAKBank)

	err := a.Back()
	require.Error(t, err)
}

func TestAttempt_RestartResetsEverything(t *testing.T) {
	a := newStartedAttempt(t, 17)
	for i := 0; i < quiz.VAKBank.TotalQuestions(); i++ {
		answerCurrent(t, a, 5)
	}
	require.NotNil(t, a.Result())
	a.SetLeadStatus(quiz.LeadSuccess)

	a.Restart()

	assert.Equal(t, quiz.ScreenQuestion, a.Screen())
	assert.Nil(t, a.Result())
	assert.Empty(t, a.Answers())
	assert.Equal(t, quiz.LeadIdle, a.LeadStatus())
	current, total := a.Progress()
	assert.Equal(t, 0, current)
	assert.Equal(t, quiz.VAKBank.TotalQuestions(), total)
}

func TestAttempt_DominantRunResolvesDominantContent(t *testing.T) {
	a := newStartedAttempt(t, 19)

	for {
		q, _, ok := a.CurrentQuestion()
		if !ok {
			break
		}
		value := 1
		if q.Category == quiz.Kinesthetic {
			value = 5
		}
		require.NoError(t, a.Answer(q.ID, value))
	}

	result := a.Result()
	require.NotNil(t, result)
	assert.Equal(t, quiz.Kinesthetic, result.Dominant)
	assert.Equal(t, 20, result.Scores[quiz.Kinesthetic])
	assert.Equal(t, 4, result.Scores[quiz.Visual])
	assert.Equal(t, quiz.VAKBank.Content[quiz.Kinesthetic], result.Content)
}
