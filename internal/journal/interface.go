package journal

import (
	"context"
	"time"
)

// Recorder persists one entry per sync attempt for diagnostics
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// Entry describes one sync attempt
type Entry struct {
	ID         string
	StartedAt  time.Time
	WindowDays int
	DaysSynced int
	Outcome    string
	ErrorCode  string
}

// Outcomes
const (
	OutcomeSynced  = "synced"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)
