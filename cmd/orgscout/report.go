package main

import (
	"fmt"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/crawl"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	sources, err := selectSources(deps, c.Names)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'orgscout source add' to create one.")
		return nil
	}

	batches, err := loadBatches(deps, sources)
	if err != nil {
		return err
	}
	report := orgscout.Assess(batches)

	for _, sr := range report.Sources {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  links=%.0f%%",
			crawl.Truncate(sr.Source.Name, crawl.MaxProgressName),
			crawl.FormatCoverage(sr.Found, sr.Expected),
			sr.Status,
			sr.LinkCompleteness(),
		)
		if len(sr.Questionable) > 0 {
			fmt.Fprintf(deps.Stdout, "  questionable=%d", len(sr.Questionable))
		}
		if deps.Runs != nil {
			runs, err := deps.Runs.FindRuns(deps.Ctx, sr.Source.ID, 1)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
				return err
			}
			if len(runs) > 0 {
				fmt.Fprintf(deps.Stdout, "  last run %s", runs[0].FinishedAt.Format("2006-01-02 15:04"))
				if runs[0].Error != "" {
					fmt.Fprintf(deps.Stdout, " (error: %s)", runs[0].Error)
				}
			} else {
				fmt.Fprint(deps.Stdout, "  never harvested")
			}
		}
		fmt.Fprintln(deps.Stdout)

		for _, name := range sr.Questionable {
			fmt.Fprintf(deps.Stdout, "    ? %s\n", name)
		}
	}

	fmt.Fprintf(deps.Stdout, "\nTotal: %s organizations, %d/%d sources adequate, %d questionable names\n",
		crawl.FormatCoverage(report.TotalFound, report.TotalExpected),
		report.Adequate(), len(report.Sources), report.TotalQuestionable)
	return nil
}
