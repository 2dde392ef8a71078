package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscout"
)

// Ensure LoggingExtractor implements orgscout.OrganizationExtractor.
var _ orgscout.OrganizationExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an OrganizationExtractor with logging.
type LoggingExtractor struct {
	next   orgscout.OrganizationExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next orgscout.OrganizationExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, html string, baseURL string, expected int) (orgs []*orgscout.Organization, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", baseURL,
			"expected", expected,
			"found", len(orgs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html, baseURL, expected)
}
