package history

import (
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of a recorded run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Run is one journal entry.
type Run struct {
	ID             string        `json:"id"`
	StartedAt      time.Time     `json:"started_at"`
	Mode           string        `json:"mode"`
	Ciphers        string        `json:"ciphers"`
	Workers        int           `json:"workers"`
	LegacyChunking bool          `json:"legacy_chunking"`
	InputRunes     int           `json:"input_runes"`
	OutputRunes    int           `json:"output_runes"`
	Duration       time.Duration `json:"duration_ns"`
	Status         Status        `json:"status"`
	Error          string        `json:"error,omitempty"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}
