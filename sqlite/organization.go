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
var _ orgscout.OrganizationService = (*OrganizationService)(nil)

// OrganizationService implements orgscout.OrganizationService using SQLite.
type OrganizationService struct {
	db *DB
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(db *DB) *OrganizationService {
	return &OrganizationService{db: db}
}

const organizationColumns = "id, source_id, name, category, source_url, profile_url, image_url, " +
	"description, email, phone, website, social, strategy, created_at"

// stored is the identity of a previously stored record.
type stored struct {
	id        string
	createdAt string
}

// ReplaceOrganizations replaces all organizations of a source in one
// transaction. Records whose fingerprint matches a stored record keep that
// record's ID and creation time.
func (s *OrganizationService) ReplaceOrganizations(ctx context.Context, sourceID string, orgs []*orgscout.Organization) error {
	for _, org := range orgs {
		if err := org.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM sources WHERE id = ?", sourceID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return orgscout.Errorf(orgscout.ENOTFOUND, "source not found")
	}

	previous, err := storedFingerprints(ctx, tx, sourceID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM organizations WHERE source_id = ?", sourceID); err != nil {
		return err
	}

	now := time.Now().UTC()
	for i, org := range orgs {
		social, err := encodeJSON(org.Social)
		if err != nil {
			return err
		}
		if org.Social == nil {
			social = "{}"
		}

		fingerprint := Fingerprint(org)
		createdAt := org.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		id := uuid.New().String()
		created := formatTime(createdAt)
		if prev, ok := previous[fingerprint]; ok {
			id, created = prev.id, prev.createdAt
			delete(previous, fingerprint)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO organizations (id, source_id, position, name, category, source_url, profile_url,
				image_url, description, email, phone, website, social, strategy, fingerprint, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, sourceID, i, org.Name, string(org.Category), org.SourceURL, org.ProfileURL,
			org.ImageURL, org.Description, org.Email, org.Phone, org.Website, social,
			int(org.Strategy), fingerprint, created)
		if err != nil {
			return err
		}

		org.ID = id
		org.SourceID = sourceID
		if org.CreatedAt, err = parseRFC3339(created, "created_at"); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func storedFingerprints(ctx context.Context, tx *sql.Tx, sourceID string) (map[string]stored, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, fingerprint, created_at FROM organizations WHERE source_id = ?", sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]stored)
	for rows.Next() {
		var id, fingerprint, createdAt string
		if err := rows.Scan(&id, &fingerprint, &createdAt); err != nil {
			return nil, err
		}
		out[fingerprint] = stored{id: id, createdAt: createdAt}
	}
	return out, rows.Err()
}

// FindOrganizations retrieves organizations matching the filter in
// discovery order.
func (s *OrganizationService) FindOrganizations(ctx context.Context, filter orgscout.OrganizationFilter) ([]*orgscout.Organization, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + organizationColumns + " FROM organizations WHERE 1=1")

	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}

	query.WriteString(" ORDER BY source_id, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*orgscout.Organization
	for rows.Next() {
		var org orgscout.Organization
		var category, social, createdAt string
		var strategy int

		if err := rows.Scan(&org.ID, &org.SourceID, &org.Name, &category, &org.SourceURL,
			&org.ProfileURL, &org.ImageURL, &org.Description, &org.Email, &org.Phone,
			&org.Website, &social, &strategy, &createdAt); err != nil {
			return nil, err
		}

		org.Category = orgscout.Category(category)
		org.Strategy = orgscout.Strategy(strategy)
		if err := json.Unmarshal([]byte(social), &org.Social); err != nil {
			return nil, fmt.Errorf("failed to parse social: %w", err)
		}
		if len(org.Social) == 0 {
			org.Social = nil
		}
		if org.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		orgs = append(orgs, &org)
	}

	return orgs, rows.Err()
}
