package sqlite

import (
	"context"

	"github.com/fwojciec/orgscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ orgscout.RunService = (*RunService)(nil)

// RunService implements orgscout.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a finished run.
func (s *RunService) CreateRun(ctx context.Context, run *orgscout.Run) error {
	if run.SourceID == "" {
		return orgscout.Errorf(orgscout.EINVALID, "run source ID required")
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_id, started_at, finished_at, found, expected, pages, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceID, formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.Found, run.Expected, run.Pages, run.Error)

	return err
}

// FindRuns returns runs for a source, newest first.
func (s *RunService) FindRuns(ctx context.Context, sourceID string, limit int) ([]*orgscout.Run, error) {
	query := `
		SELECT id, source_id, started_at, finished_at, found, expected, pages, error
		FROM runs
		WHERE source_id = ?
		ORDER BY started_at DESC, rowid DESC`
	args := []any{sourceID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*orgscout.Run
	for rows.Next() {
		var run orgscout.Run
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.SourceID, &startedAt, &finishedAt,
			&run.Found, &run.Expected, &run.Pages, &run.Error); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
