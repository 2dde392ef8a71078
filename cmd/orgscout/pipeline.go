package main

import (
	"log/slog"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/ahocorasick"
	"github.com/fwojciec/orgscout/bluemonday"
	"github.com/fwojciec/orgscout/crawl"
	"github.com/fwojciec/orgscout/goquery"
	"github.com/fwojciec/orgscout/readability"
	orghttp "github.com/fwojciec/orgscout/http"
	orgslog "github.com/fwojciec/orgscout/slog"
	"github.com/fwojciec/orgscout/trafilatura"
)

// pipeline is the fetch and extraction stack shared by harvest and extract.
type pipeline struct {
	Fetcher    orgscout.Fetcher
	Limiter    orgscout.DomainLimiter
	Extractors crawl.ExtractorFunc
}

// newPipeline wires the HTTP fetcher with retries and logging, the per-host
// limiter and an extractor factory. The name filter and classifier are
// shared by every extractor.
func newPipeline(flags FetchFlags, logger *slog.Logger) *pipeline {
	opts := []orghttp.Option{orghttp.WithTimeout(flags.Timeout)}
	if flags.UserAgent != "" {
		opts = append(opts, orghttp.WithUserAgent(flags.UserAgent))
	}
	fetcher := orgslog.NewLoggingFetcher(
		crawl.NewRetryFetcher(orghttp.NewFetcher(opts...), logger),
		logger,
	)
	limiter := crawl.NewDomainLimiterEvery(flags.Delay)

	names := ahocorasick.NewNameFilter()
	builder := goquery.NewBuilder(names, ahocorasick.NewDefaultClassifier())
	builder.Sanitizer = bluemonday.NewSanitizer()
	builder.MainText = orgscout.MainTextChain{trafilatura.NewExtractor(), readability.NewExtractor()}

	extractors := func(visited orgscout.URLSet) orgscout.OrganizationExtractor {
		locator := goquery.NewLocator(names)
		locator.Fetcher = fetcher
		locator.Limiter = limiter
		locator.Visited = visited
		locator.Logger = logger
		if flags.MaxLinks > 0 {
			locator.MaxLinks = flags.MaxLinks
		}
		return orgslog.NewLoggingExtractor(goquery.NewExtractor(locator, builder), logger)
	}

	return &pipeline{Fetcher: fetcher, Limiter: limiter, Extractors: extractors}
}
