package models

import "time"

// Forward status values for a captured lead.
const (
	ForwardPending = "pending"
	ForwardSuccess = "success"
	ForwardError   = "error"
)

// Lead is one captured registration: who asked for their result by mail,
// for which quiz, and what they scored.
type Lead struct {
	ID            int64     `json:"id"`
	AttemptID     string    `json:"attempt_id"`
	Quiz          string    `json:"quiz"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Dominant      string    `json:"dominant"`
	ScoresJSON    string    `json:"scores"`
	ForwardStatus string    `json:"forward_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// LeadFilter narrows the admin lead listing.
type LeadFilter struct {
	Quiz          string
	Dominant      string
	EmailContains string
	ForwardStatus string
	Limit         int
	Offset        int
}
