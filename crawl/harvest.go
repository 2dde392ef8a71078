// Package crawl orchestrates harvesting organization listings. It paces
// requests per host, retries transient fetch failures, falls back to
// alternate listing pages and stores the merged records.
package crawl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscout"
	"golang.org/x/sync/errgroup"
)

// ExtractorFunc builds an extractor for one source. The visited set is
// shared by every page harvested for that source so a linked page is
// fetched at most once.
type ExtractorFunc func(visited orgscout.URLSet) orgscout.OrganizationExtractor

// Harvester fetches each source's listing pages, extracts organizations
// and stores them.
type Harvester struct {
	Fetcher       orgscout.Fetcher
	Limiter       orgscout.DomainLimiter
	Extractor     ExtractorFunc
	NewVisited    func() orgscout.URLSet
	Organizations orgscout.OrganizationService
	Runs          orgscout.RunService
	Concurrency   int
	Logger        *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// SourceResult holds the outcome of harvesting one source.
type SourceResult struct {
	Source        *orgscout.Source
	Organizations []*orgscout.Organization
	Pages         int

	// Err is the first page fetch or extraction failure. A source whose
	// primary page failed may still have organizations from alternates.
	Err error
}

// ProgressEvent reports progress during a harvest.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Found     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// Harvest processes sources and returns one result per source in input
// order. Page failures are reported in results; the returned error is
// non-nil only for cancellation or storage failures.
func (h *Harvester) Harvest(ctx context.Context, sources []*orgscout.Source, progress ProgressFunc) ([]*SourceResult, error) {
	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(sources)
	results := make([]*SourceResult, total)
	events := make(chan *SourceResult)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	errc := make(chan error, 1)
	go func() {
		for i, src := range sources {
			g.Go(func() error {
				result, err := h.HarvestSource(gctx, src)
				if err != nil {
					return err
				}
				results[i] = result
				events <- result
				return nil
			})
		}
		errc <- g.Wait()
		close(events)
	}()

	var completed int
	for result := range events {
		completed++
		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Source:    result.Source.Name,
			Found:     len(result.Organizations),
		}
		if result.Err != nil {
			event.Type = ProgressFailed
			event.Error = result.Err
		}
		progress(event)
	}

	if err := <-errc; err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return results, nil
}

// HarvestSource harvests the primary page of a source and, while fewer
// than the expected number of organizations are found, its alternates.
// Records from all pages are merged. Stored organizations are replaced
// only when at least one page was fetched; a run is always recorded.
func (h *Harvester) HarvestSource(ctx context.Context, src *orgscout.Source) (*SourceResult, error) {
	started := h.now()
	expected := src.ExpectedOrDefault()
	logger := h.logger().With("source", src.Name)

	var visited orgscout.URLSet
	if h.NewVisited != nil {
		visited = h.NewVisited()
	}
	extractor := h.Extractor(visited)

	result := &SourceResult{Source: src}
	var records []*orgscout.Organization

	pages := append([]string{src.URL}, src.Alternates...)
	for i, pageURL := range pages {
		if i > 0 && len(records) >= expected {
			break
		}

		orgs, err := h.harvestPage(ctx, extractor, visited, pageURL, expected)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Warn("page failed", "url", pageURL, "error", err)
			if result.Err == nil {
				result.Err = err
			}
			continue
		}

		result.Pages++
		records = orgscout.Merge(append(records, orgs...))
		logger.Debug("page harvested", "url", pageURL, "found", len(orgs), "total", len(records))
	}

	for _, org := range records {
		org.SourceID = src.ID
		if org.SourceURL == "" {
			org.SourceURL = src.URL
		}
		if org.CreatedAt.IsZero() {
			org.CreatedAt = started
		}
	}
	result.Organizations = records

	if result.Pages > 0 && h.Organizations != nil {
		if err := h.Organizations.ReplaceOrganizations(ctx, src.ID, records); err != nil {
			return nil, err
		}
	}

	if h.Runs != nil {
		run := &orgscout.Run{
			SourceID:   src.ID,
			StartedAt:  started,
			FinishedAt: h.now(),
			Found:      len(records),
			Expected:   expected,
			Pages:      result.Pages,
		}
		if result.Err != nil {
			run.Error = result.Err.Error()
		}
		if err := h.Runs.CreateRun(ctx, run); err != nil {
			return nil, err
		}
	}

	logger.Info("source harvested", "found", len(records), "expected", expected, "pages", result.Pages)
	return result, nil
}

func (h *Harvester) harvestPage(ctx context.Context, extractor orgscout.OrganizationExtractor, visited orgscout.URLSet, pageURL string, expected int) ([]*orgscout.Organization, error) {
	if h.Limiter != nil {
		if err := h.Limiter.Wait(ctx, orgscout.Host(pageURL)); err != nil {
			return nil, err
		}
	}

	html, err := h.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if visited != nil {
		visited.Add(pageURL)
	}

	orgs, err := extractor.Extract(ctx, html, pageURL, expected)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, orgscout.Errorf(orgscout.EINVALID, "extract %s: %v", pageURL, err)
	}
	return orgs, nil
}

func (h *Harvester) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
