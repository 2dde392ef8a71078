package orgscout

import (
	"context"
	"time"
)

// Run records the outcome of harvesting one source.
type Run struct {
	ID         string    `json:"id"`
	SourceID   string    `json:"sourceId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Found      int       `json:"found"`
	Expected   int       `json:"expected"`
	Pages      int       `json:"pages"`
	Error      string    `json:"error,omitempty"`
}

// RunService records harvest runs.
type RunService interface {
	// CreateRun stores a finished run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns runs for a source, newest first.
	FindRuns(ctx context.Context, sourceID string, limit int) ([]*Run, error)
}
