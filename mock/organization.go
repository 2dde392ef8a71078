package mock

import (
	"context"

	"github.com/fwojciec/orgscout"
)

var _ orgscout.OrganizationService = (*OrganizationService)(nil)

// OrganizationService is a mock implementation of orgscout.OrganizationService.
type OrganizationService struct {
	ReplaceOrganizationsFn func(ctx context.Context, sourceID string, orgs []*orgscout.Organization) error
	FindOrganizationsFn    func(ctx context.Context, filter orgscout.OrganizationFilter) ([]*orgscout.Organization, error)
}

func (s *OrganizationService) ReplaceOrganizations(ctx context.Context, sourceID string, orgs []*orgscout.Organization) error {
	return s.ReplaceOrganizationsFn(ctx, sourceID, orgs)
}

func (s *OrganizationService) FindOrganizations(ctx context.Context, filter orgscout.OrganizationFilter) ([]*orgscout.Organization, error) {
	return s.FindOrganizationsFn(ctx, filter)
}

var _ orgscout.OrganizationExtractor = (*OrganizationExtractor)(nil)

// OrganizationExtractor is a mock implementation of orgscout.OrganizationExtractor.
type OrganizationExtractor struct {
	ExtractFn func(ctx context.Context, html string, baseURL string, expected int) ([]*orgscout.Organization, error)
}

func (e *OrganizationExtractor) Extract(ctx context.Context, html string, baseURL string, expected int) ([]*orgscout.Organization, error) {
	return e.ExtractFn(ctx, html, baseURL, expected)
}

var _ orgscout.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of orgscout.Classifier.
type Classifier struct {
	ClassifyFn func(name, description string) orgscout.Category
}

func (c *Classifier) Classify(name, description string) orgscout.Category {
	return c.ClassifyFn(name, description)
}

var _ orgscout.NameFilter = (*NameFilter)(nil)

// NameFilter is a mock implementation of orgscout.NameFilter.
type NameFilter struct {
	LooksLikeEntityNameFn func(text string) bool
	LooksLikeInlineNameFn func(text string) bool
}

func (f *NameFilter) LooksLikeEntityName(text string) bool {
	return f.LooksLikeEntityNameFn(text)
}

func (f *NameFilter) LooksLikeInlineName(text string) bool {
	return f.LooksLikeInlineNameFn(text)
}
