package main

import (
	"fmt"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/crawl"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	sources, err := selectSources(deps, c.Names)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'orgscout source add' to create one.")
		return nil
	}

	if c.Concurrency > 0 {
		deps.Harvester.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		line := crawl.FormatProgress(event)
		if line == "" {
			return
		}
		if event.Type == crawl.ProgressFailed {
			fmt.Fprintln(deps.Stderr, "  "+line)
			return
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	results, err := deps.Harvester.Harvest(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	var found, expected, failed int
	for _, r := range results {
		found += len(r.Organizations)
		expected += r.Source.ExpectedOrDefault()
		if r.Pages == 0 {
			failed++
		}
	}

	fmt.Fprintf(deps.Stdout, "Found %s organizations", crawl.FormatCoverage(found, expected))
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, "; %d sources could not be fetched", failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
