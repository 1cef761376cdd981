package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/quiz"
)

// Registration is the payload delivered to the downstream mail/CRM system.
type Registration struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Quiz     string        `json:"quiz"`
	Dominant string        `json:"dominant"`
	Scores   quiz.ScoreMap `json:"scores"`
}

// Forwarder hands a captured lead off to an external system.
type Forwarder interface {
	Forward(ctx context.Context, reg Registration) error
}

type Client struct {
	httpClient *http.Client
	url        string
	log        *logger.Logger
}

func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		url:        url,
		log:        logger.Default().WithPrefix("register-client"),
	}
}

func (c *Client) Forward(ctx context.Context, reg Registration) error {
	body, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to encode registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("forwarding registration for quiz %s to %s", reg.Quiz, c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to forward registration: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("registration endpoint returned %d: %s", resp.StatusCode, excerpt)
	}
	return nil
}

// NopForwarder accepts every registration without delivering it anywhere.
// Used when no downstream endpoint is configured.
type NopForwarder struct{}

func (NopForwarder) Forward(ctx context.Context, reg Registration) error {
	logger.FromContext(ctx).Info("no register URL configured, dropping registration for %s", reg.Email)
	return nil
}
