package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/orgscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ orgscout.SourceService = (*SourceService)(nil)

// SourceService implements orgscout.SourceService using SQLite.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

const sourceColumns = "id, name, url, expected, alternates, created_at, updated_at"

// CreateSource creates a new source.
func (s *SourceService) CreateSource(ctx context.Context, source *orgscout.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	if err := s.checkNameFree(ctx, source.Name, ""); err != nil {
		return err
	}

	alternates, err := encodeJSON(nonNil(source.Alternates))
	if err != nil {
		return err
	}

	source.ID = uuid.New().String()
	now := time.Now().UTC()
	source.CreatedAt = now
	source.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sources (id, name, url, expected, alternates, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, source.ID, source.Name, source.URL, source.Expected, alternates,
		formatTime(source.CreatedAt), formatTime(source.UpdatedAt))

	return err
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*orgscout.Source, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+sourceColumns+" FROM sources WHERE id = ?", id)
	source, err := scanSource(row)
	if err == sql.ErrNoRows {
		return nil, orgscout.Errorf(orgscout.ENOTFOUND, "source not found")
	}
	if err != nil {
		return nil, err
	}
	return source, nil
}

// FindSources retrieves sources matching the filter, ordered by name.
func (s *SourceService) FindSources(ctx context.Context, filter orgscout.SourceFilter) ([]*orgscout.Source, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + sourceColumns + " FROM sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*orgscout.Source
	for rows.Next() {
		source, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// UpdateSource updates an existing source.
func (s *SourceService) UpdateSource(ctx context.Context, id string, upd orgscout.SourceUpdate) (*orgscout.Source, error) {
	source, err := s.FindSourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		source.Name = *upd.Name
	}
	if upd.URL != nil {
		source.URL = *upd.URL
	}
	if upd.Expected != nil {
		source.Expected = *upd.Expected
	}
	if upd.Alternates != nil {
		source.Alternates = *upd.Alternates
	}

	if err := source.Validate(); err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if err := s.checkNameFree(ctx, source.Name, id); err != nil {
			return nil, err
		}
	}

	alternates, err := encodeJSON(nonNil(source.Alternates))
	if err != nil {
		return nil, err
	}
	source.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE sources
		SET name = ?, url = ?, expected = ?, alternates = ?, updated_at = ?
		WHERE id = ?
	`, source.Name, source.URL, source.Expected, alternates, formatTime(source.UpdatedAt), id)
	if err != nil {
		return nil, err
	}

	return source, nil
}

// DeleteSource permanently removes a source. Its organizations and runs
// are removed by cascade.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return orgscout.Errorf(orgscout.ENOTFOUND, "source not found")
	}

	return nil
}

// checkNameFree returns ECONFLICT if another source already uses name.
func (s *SourceService) checkNameFree(ctx context.Context, name, exceptID string) error {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sources WHERE name = ? AND id != ?", name, exceptID).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return orgscout.Errorf(orgscout.ECONFLICT, "source %q already exists", name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSource(row scanner) (*orgscout.Source, error) {
	var source orgscout.Source
	var alternates, createdAt, updatedAt string

	if err := row.Scan(&source.ID, &source.Name, &source.URL, &source.Expected,
		&alternates, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(alternates), &source.Alternates); err != nil {
		return nil, fmt.Errorf("failed to parse alternates: %w", err)
	}
	if len(source.Alternates) == 0 {
		source.Alternates = nil
	}

	var err error
	if source.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if source.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &source, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
