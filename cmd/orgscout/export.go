package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/orgscout"
)

// Run executes the export command. Each source with organizations gets its
// own workbook; --combined adds one workbook covering all of them.
func (c *ExportCmd) Run(deps *Dependencies) error {
	schema, err := orgscout.SchemaByName(c.Schema)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	sources, err := selectSources(deps, c.Names)
	if err != nil {
		return err
	}

	batches, err := loadBatches(deps, sources)
	if err != nil {
		return err
	}

	store := deps.Exports(c.Dir)
	var written int
	for _, batch := range batches {
		if len(batch.Organizations) == 0 {
			fmt.Fprintf(deps.Stderr, "  skip %s: no organizations\n", batch.Source.Name)
			continue
		}

		orgs := batch.Organizations
		path, err := store.Write(deps.Ctx, orgscout.ExportFileName(batch.Source.Name), func(w io.Writer) error {
			return deps.Encoder.EncodeSources(w, schema, orgs)
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", batch.Source.Name, orgscout.ErrorMessage(err))
			return err
		}
		written++
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d organizations)\n", path, len(orgs))
	}

	if c.Combined && written > 0 {
		report := orgscout.Assess(batches)
		path, err := store.Write(deps.Ctx, orgscout.CombinedExportFileName(deps.now()), func(w io.Writer) error {
			return deps.Encoder.EncodeCombined(w, schema, report, batches)
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d organizations)\n", path, report.TotalFound)
	}

	if written == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to export. Use 'orgscout harvest' first.")
	}
	return nil
}

// loadBatches loads the stored organizations of each source, cleaned for
// output.
func loadBatches(deps *Dependencies, sources []*orgscout.Source) ([]orgscout.SourceOrganizations, error) {
	batches := make([]orgscout.SourceOrganizations, 0, len(sources))
	for _, src := range sources {
		orgs, err := deps.Organizations.FindOrganizations(deps.Ctx, orgscout.OrganizationFilter{SourceID: &src.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
			return nil, err
		}
		batches = append(batches, orgscout.SourceOrganizations{
			Source:        src,
			Organizations: orgscout.Clean(orgs),
		})
	}
	return batches, nil
}
