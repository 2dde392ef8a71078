package orgscout

import (
	"context"
	"strings"
	"time"
)

// Source represents an institutional page listing organizations.
type Source struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Expected   int       `json:"expected"`
	Alternates []string  `json:"alternates,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	if !isHTTPURL(s.URL) {
		return Errorf(EINVALID, "source URL must start with http:// or https://")
	}
	for _, alt := range s.Alternates {
		if !isHTTPURL(alt) {
			return Errorf(EINVALID, "alternate URL %q must start with http:// or https://", alt)
		}
	}
	if s.Expected < 0 {
		return Errorf(EINVALID, "source expected count must be non-negative")
	}
	return nil
}

// ExpectedOrDefault returns the expected-count hint, or DefaultExpectedCount
// when the source has none.
func (s *Source) ExpectedOrDefault() int {
	if s.Expected <= 0 {
		return DefaultExpectedCount
	}
	return s.Expected
}

func isHTTPURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// SourceService represents a service for managing sources.
type SourceService interface {
	// CreateSource creates a new source.
	// Returns ECONFLICT if a source with the same name exists.
	CreateSource(ctx context.Context, source *Source) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*Source, error)

	// UpdateSource updates an existing source.
	// Returns ENOTFOUND if source does not exist.
	UpdateSource(ctx context.Context, id string, upd SourceUpdate) (*Source, error)

	// DeleteSource permanently removes a source and all associated organizations.
	// Returns ENOTFOUND if source does not exist.
	DeleteSource(ctx context.Context, id string) error
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SourceUpdate represents fields that can be updated on a source.
type SourceUpdate struct {
	Name       *string   `json:"name"`
	URL        *string   `json:"url"`
	Expected   *int      `json:"expected"`
	Alternates *[]string `json:"alternates"`
}
