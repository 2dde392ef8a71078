package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/orgscout"
)

// Ensure Extractor implements orgscout.OrganizationExtractor.
var _ orgscout.OrganizationExtractor = (*Extractor)(nil)

// step is one strategy of the cascade. A step runs only while the number
// of unique names found so far is below threshold times the expected
// count; a zero threshold always runs.
type step struct {
	strategy  orgscout.Strategy
	threshold float64
	locate    func(ctx context.Context, doc *goquery.Document, baseURL string) []Candidate
}

// Extractor runs the candidate cascade over a document and merges the
// resulting records.
type Extractor struct {
	Locator *Locator
	Builder *Builder
}

// NewExtractor creates an Extractor.
func NewExtractor(locator *Locator, builder *Builder) *Extractor {
	return &Extractor{Locator: locator, Builder: builder}
}

func (e *Extractor) steps() []step {
	l := e.Locator
	return []step{
		{orgscout.StrategyStructured, 0, func(_ context.Context, doc *goquery.Document, _ string) []Candidate {
			return l.Structured(doc)
		}},
		{orgscout.StrategyListItem, 0.5, func(_ context.Context, doc *goquery.Document, _ string) []Candidate {
			return l.ListItems(doc)
		}},
		{orgscout.StrategyHeading, 0.5, func(_ context.Context, doc *goquery.Document, _ string) []Candidate {
			return l.Headings(doc)
		}},
		{orgscout.StrategyLinkedPage, 0.7, l.LinkedPages},
		{orgscout.StrategyRawText, 0.3, func(_ context.Context, doc *goquery.Document, _ string) []Candidate {
			return l.RawText(doc)
		}},
	}
}

// Extract parses html and returns the merged organizations it describes.
// Expected counts <= 0 mean orgscout.DefaultExpectedCount.
func (e *Extractor) Extract(ctx context.Context, html string, baseURL string, expected int) ([]*orgscout.Organization, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, orgscout.Errorf(orgscout.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(ctx, doc, baseURL, expected)
}

// ExtractDocument runs the cascade over an already parsed document.
func (e *Extractor) ExtractDocument(ctx context.Context, doc *goquery.Document, baseURL string, expected int) ([]*orgscout.Organization, error) {
	if expected <= 0 {
		expected = orgscout.DefaultExpectedCount
	}

	var records []*orgscout.Organization
	seen := make(map[string]bool)

	for _, s := range e.steps() {
		if s.threshold > 0 && float64(len(seen)) >= s.threshold*float64(expected) {
			continue
		}
		candidates := s.locate(ctx, doc, baseURL)
		for _, c := range candidates {
			org, ok := e.Builder.BuildCandidate(c, baseURL)
			if !ok {
				continue
			}
			records = append(records, org)
			seen[orgscout.NormalizeName(org.Name)] = true
		}
		e.Locator.logger().Debug("strategy finished",
			"strategy", s.strategy.String(),
			"candidates", len(candidates),
			"unique", len(seen))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return orgscout.Merge(records), nil
}
