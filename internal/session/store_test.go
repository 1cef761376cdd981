package session_test

import (
	"testing"
	"time"

	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/hmiyata/shindan/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttempt() *quiz.Attempt {
	a := quiz.NewAttempt(quiz.VAKBank)
	a.Start()
	return a
}

func TestStore_CreateAndGet(t *testing.T) {
	store := session.NewStore(time.Hour)

	sess := store.Create(newAttempt())
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_IDsAreUnique(t *testing.T) {
	store := session.NewStore(time.Hour)

	a := store.Create(newAttempt())
	b := store.Create(newAttempt())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, store.Len())
}

func TestStore_SweepRemovesIdleSessions(t *testing.T) {
	store := session.NewStore(10 * time.Millisecond)

	keep := store.Create(newAttempt())
	stale := store.Create(newAttempt())

	time.Sleep(20 * time.Millisecond)
	// Touching a session refreshes its TTL.
	_, ok := store.Get(keep.ID)
	require.True(t, ok)

	removed := store.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get(keep.ID)
	assert.True(t, ok)
	_, ok = store.Get(stale.ID)
	assert.False(t, ok)
}

func TestSession_DoSerializesAccess(t *testing.T) {
	store := session.NewStore(time.Hour)
	sess := store.Create(newAttempt())

	done := make(chan struct{})
	go func() {
		sess.Do(func(a *quiz.Attempt) {
			a.SetLeadStatus(quiz.LeadPending)
		})
		close(done)
	}()
	<-done

	var status quiz.LeadStatus
	sess.Do(func(a *quiz.Attempt) {
		status = a.LeadStatus()
	})
	assert.Equal(t, quiz.LeadPending, status)
}
