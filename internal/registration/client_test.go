package registration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hmiyata/shindan/internal/quiz"
	"github.com/hmiyata/shindan/internal/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ForwardSendsJSONPayload(t *testing.T) {
	var received registration.Registration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := registration.NewClient(srv.URL)
	err := client.Forward(context.Background(), registration.Registration{
		Name:     "山田",
		Email:    "taro@example.com",
		Quiz:     "vak",
		Dominant: "V",
		Scores:   quiz.ScoreMap{quiz.Visual: 20, quiz.Auditory: 4, quiz.Kinesthetic: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, "taro@example.com", received.Email)
	assert.Equal(t, "vak", received.Quiz)
	assert.Equal(t, 20, received.Scores[quiz.Visual])
}

func TestClient_ForwardReportsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := registration.NewClient(srv.URL)
	err := client.Forward(context.Background(), registration.Registration{Email: "taro@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestNopForwarder_AlwaysSucceeds(t *testing.T) {
	err := registration.NopForwarder{}.Forward(context.Background(), registration.Registration{Email: "x@y"})
	assert.NoError(t, err)
}
