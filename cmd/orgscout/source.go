package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/orgscout"
	orgyaml "github.com/fwojciec/orgscout/yaml"
)

// Run executes the source add command.
func (c *SourceAddCmd) Run(deps *Dependencies) error {
	source := &orgscout.Source{
		Name:       c.Name,
		URL:        c.URL,
		Expected:   c.Expected,
		Alternates: c.Alternates,
	}

	if err := deps.Sources.CreateSource(deps.Ctx, source); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added source %q (%s)\n", source.Name, source.ID)
	return nil
}

// Run executes the source list command.
func (c *SourceListCmd) Run(deps *Dependencies) error {
	sources, err := deps.Sources.FindSources(deps.Ctx, orgscout.SourceFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'orgscout source add' to create one.")
		return nil
	}

	for _, s := range sources {
		fmt.Fprintf(deps.Stdout, "%s  %s  expected=%d", s.Name, s.URL, s.Expected)
		if len(s.Alternates) > 0 {
			fmt.Fprintf(deps.Stdout, "  alternates=%d", len(s.Alternates))
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}

// Run executes the source delete command.
func (c *SourceDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return orgscout.Errorf(orgscout.EINVALID, "use --force to confirm deletion")
	}

	source, err := findSource(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Sources.DeleteSource(deps.Ctx, source.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted source %q\n", source.Name)
	return nil
}

// Run executes the source import command. Sources are matched by name:
// known sources are updated, new ones created.
func (c *SourceImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	sources, err := orgyaml.LoadSources(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return err
	}

	var added, updated int
	for _, src := range sources {
		existing, err := deps.Sources.FindSources(deps.Ctx, orgscout.SourceFilter{Name: &src.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
			return err
		}

		if len(existing) == 0 {
			if err := deps.Sources.CreateSource(deps.Ctx, src); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", src.Name, orgscout.ErrorMessage(err))
				return err
			}
			added++
			continue
		}

		upd := orgscout.SourceUpdate{
			URL:        &src.URL,
			Expected:   &src.Expected,
			Alternates: &src.Alternates,
		}
		if _, err := deps.Sources.UpdateSource(deps.Ctx, existing[0].ID, upd); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", src.Name, orgscout.ErrorMessage(err))
			return err
		}
		updated++
	}

	fmt.Fprintf(deps.Stdout, "Imported %d sources (%d added, %d updated)\n", len(sources), added, updated)
	return nil
}

// findSource looks up a source by name, reporting a missing one on stderr.
func findSource(deps *Dependencies, name string) (*orgscout.Source, error) {
	sources, err := deps.Sources.FindSources(deps.Ctx, orgscout.SourceFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
		return nil, err
	}
	if len(sources) == 0 {
		fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'orgscout source list' to see available sources.\n", name)
		return nil, orgscout.Errorf(orgscout.ENOTFOUND, "source %q not found", name)
	}
	return sources[0], nil
}

// selectSources returns the named sources in the given order, or every
// source when no names are given.
func selectSources(deps *Dependencies, names []string) ([]*orgscout.Source, error) {
	if len(names) == 0 {
		sources, err := deps.Sources.FindSources(deps.Ctx, orgscout.SourceFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", orgscout.ErrorMessage(err))
			return nil, err
		}
		return sources, nil
	}

	sources := make([]*orgscout.Source, 0, len(names))
	for _, name := range names {
		source, err := findSource(deps, name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}
