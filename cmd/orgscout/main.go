package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/bloom"
	"github.com/fwojciec/orgscout/crawl"
	orgexcel "github.com/fwojciec/orgscout/excelize"
	"github.com/fwojciec/orgscout/fs"
	orgslog "github.com/fwojciec/orgscout/slog"
	"github.com/fwojciec/orgscout/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SourceService       orgscout.SourceService
	OrganizationService orgscout.OrganizationService
	RunService          orgscout.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("orgscout"),
		kong.Description("Harvest student organization listings into uniform records."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'orgscout --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	// extract works on a single page and never touches storage.
	if cmd != "extract" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ORGSCOUT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SourceService = sqlite.NewSourceService(m.DB)
		m.OrganizationService = sqlite.NewOrganizationService(m.DB)
		m.RunService = sqlite.NewRunService(m.DB)
		deps.DB = m.DB
		deps.Sources = m.SourceService
		deps.Organizations = m.OrganizationService
		deps.Runs = m.RunService
	}

	switch cmd {
	case "harvest":
		p := newPipeline(cli.Harvest.Fetch, deps.Logger)
		defer p.Fetcher.Close()

		deps.Harvester = &crawl.Harvester{
			Fetcher:       p.Fetcher,
			Limiter:       p.Limiter,
			Extractor:     p.Extractors,
			NewVisited:    bloom.NewVisitedSet,
			Organizations: orgslog.NewLoggingOrganizationService(m.OrganizationService, deps.Logger),
			Runs:          m.RunService,
			Concurrency:   cli.Harvest.Concurrency,
			Logger:        deps.Logger,
		}
	case "extract":
		p := newPipeline(cli.Extract.Fetch, deps.Logger)
		defer p.Fetcher.Close()

		deps.Fetcher = p.Fetcher
		deps.Limiter = p.Limiter
		deps.Extractors = p.Extractors
		deps.NewVisited = bloom.NewVisitedSet
	case "export":
		deps.Encoder = orgexcel.NewEncoder()
		deps.Exports = func(dir string) orgscout.ExportStore { return fs.NewExportDir(dir) }
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w. Verbose output includes debug
// records such as individual fetches.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("ORGSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "orgscout.db"
	}
	dir := filepath.Join(home, ".orgscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "orgscout.db")
}
