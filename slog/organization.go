package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscout"
)

// Ensure LoggingOrganizationService implements orgscout.OrganizationService.
var _ orgscout.OrganizationService = (*LoggingOrganizationService)(nil)

// LoggingOrganizationService wraps an OrganizationService with logging
// of writes. Reads are delegated silently.
type LoggingOrganizationService struct {
	next   orgscout.OrganizationService
	logger *slog.Logger
}

// NewLoggingOrganizationService creates a new LoggingOrganizationService.
func NewLoggingOrganizationService(next orgscout.OrganizationService, logger *slog.Logger) *LoggingOrganizationService {
	return &LoggingOrganizationService{next: next, logger: logger}
}

// ReplaceOrganizations delegates to the wrapped service and logs the write.
func (s *LoggingOrganizationService) ReplaceOrganizations(ctx context.Context, sourceID string, orgs []*orgscout.Organization) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("replace organizations",
			"source", sourceID,
			"count", len(orgs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceOrganizations(ctx, sourceID, orgs)
}

// FindOrganizations delegates to the wrapped service.
func (s *LoggingOrganizationService) FindOrganizations(ctx context.Context, filter orgscout.OrganizationFilter) ([]*orgscout.Organization, error) {
	return s.next.FindOrganizations(ctx, filter)
}
