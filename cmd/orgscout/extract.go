package main

import (
	"fmt"

	"github.com/fwojciec/orgscout"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := deps.Limiter.Wait(deps.Ctx, orgscout.Host(c.URL)); err != nil {
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	var visited orgscout.URLSet
	if deps.NewVisited != nil {
		visited = deps.NewVisited()
		visited.Add(c.URL)
	}

	expected := c.Expected
	if expected <= 0 {
		expected = orgscout.DefaultExpectedCount
	}

	orgs, err := deps.Extractors(visited).Extract(deps.Ctx, html, c.URL, expected)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}
	orgs = orgscout.Clean(orgs)

	if len(orgs) == 0 {
		fmt.Fprintln(deps.Stdout, "No organizations found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, orgscout.FormatOrganizations(orgs))
	fmt.Fprintf(deps.Stdout, "\nFound %d organizations\n", len(orgs))
	return nil
}
