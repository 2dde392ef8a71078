package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/crawl"
	"github.com/fwojciec/orgscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB            *sqlite.DB
	Sources       orgscout.SourceService
	Organizations orgscout.OrganizationService
	Runs          orgscout.RunService

	Harvester *crawl.Harvester

	// Fetcher, Limiter, Extractors and NewVisited serve the extract command.
	Fetcher    orgscout.Fetcher
	Limiter    orgscout.DomainLimiter
	Extractors crawl.ExtractorFunc
	NewVisited func() orgscout.URLSet

	Encoder orgscout.SpreadsheetEncoder
	Exports func(dir string) orgscout.ExportStore

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Source  SourceCmd  `cmd:"" help:"Manage sources"`
	Harvest HarvestCmd `cmd:"" help:"Harvest organizations from registered sources"`
	Extract ExtractCmd `cmd:"" help:"Extract organizations from one page without storing them"`
	Export  ExportCmd  `cmd:"" help:"Export stored organizations to spreadsheets"`
	Report  ReportCmd  `cmd:"" help:"Show how complete each source's organizations are"`
}

// SourceCmd groups the source subcommands.
type SourceCmd struct {
	Add    SourceAddCmd    `cmd:"" help:"Register a source"`
	List   SourceListCmd   `cmd:"" help:"List registered sources"`
	Delete SourceDeleteCmd `cmd:"" help:"Delete a source and its organizations"`
	Import SourceImportCmd `cmd:"" help:"Add or update sources from a YAML file"`
}

// SourceAddCmd is the "source add" subcommand.
type SourceAddCmd struct {
	Name       string   `arg:"" help:"Source name"`
	URL        string   `arg:"" help:"Listing page URL"`
	Expected   int      `short:"e" help:"Expected number of organizations"`
	Alternates []string `short:"a" name:"alternate" help:"Alternate listing page (repeatable)"`
}

// SourceListCmd is the "source list" subcommand.
type SourceListCmd struct{}

// SourceDeleteCmd is the "source delete" subcommand.
type SourceDeleteCmd struct {
	Name  string `arg:"" help:"Source name"`
	Force bool   `help:"Confirm deletion"`
}

// SourceImportCmd is the "source import" subcommand.
type SourceImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML source list"`
}

// FetchFlags configure page fetching.
type FetchFlags struct {
	MaxLinks  int           `default:"20" help:"Maximum linked pages followed per listing page"`
	Delay     time.Duration `default:"1s" help:"Minimum interval between requests to one host"`
	Timeout   time.Duration `default:"30s" help:"Per-request timeout"`
	UserAgent string        `help:"User-Agent header sent with requests"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	Names       []string `arg:"" optional:"" help:"Source names (default: all)"`
	Concurrency int      `short:"c" default:"1" help:"Sources harvested concurrently"`

	Fetch FetchFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Listing page URL"`
	Expected int    `short:"e" help:"Expected number of organizations"`

	Fetch FetchFlags `embed:""`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir      string   `arg:"" help:"Output directory"`
	Names    []string `arg:"" optional:"" help:"Source names (default: all)"`
	Schema   string   `default:"standard" enum:"standard,compact" help:"Column schema (standard, compact)"`
	Combined bool     `help:"Also write one workbook with every source and summary sheets"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Names []string `arg:"" optional:"" help:"Source names (default: all)"`
}
