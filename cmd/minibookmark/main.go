package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/Lawliet-3/mini-bookmark/goquery"
	"github.com/Lawliet-3/mini-bookmark/htmltomarkdown"
	"github.com/Lawliet-3/mini-bookmark/pipeline"
	"github.com/Lawliet-3/mini-bookmark/readability"
	"github.com/Lawliet-3/mini-bookmark/robotstxt"
	"github.com/Lawliet-3/mini-bookmark/rod"
	bmslog "github.com/Lawliet-3/mini-bookmark/slog"
	"github.com/Lawliet-3/mini-bookmark/sqlite"
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

	// Service for end-to-end testing.
	BookmarkService bookmark.BookmarkService
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
		kong.Name("minibookmark"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'minibookmark --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MINIBOOKMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BookmarkService = sqlite.NewBookmarkService(m.DB)
	deps.DB = m.DB
	deps.Bookmarks = m.BookmarkService
	deps.Converter = htmltomarkdown.NewConverter()

	// The extraction pipeline needs a browser; wire it only for commands
	// that fetch.
	if cmd == "fetch" || cmd == "add" {
		fetcher, err := rod.NewFetcher(rod.WithQuietWait(cli.QuietWait))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		var gate bookmark.PolicyGate = robotstxt.NewGate()
		var renderer bookmark.Fetcher = fetcher
		var classifier bookmark.Classifier = goquery.NewClassifier()
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			gate = bmslog.NewLoggingGate(gate, logger)
			renderer = rod.NewLoggingFetcher(renderer, logger)
			classifier = bmslog.NewLoggingClassifier(classifier, logger)
		}

		deps.Pipeline = &pipeline.Pipeline{
			Gate:       gate,
			Fetcher:    renderer,
			Classifier: classifier,
			Articles:   readability.NewExtractor(),
			Lists:      goquery.NewListExtractor(),
			Limiter:    pipeline.NewFixedLimiter(cli.Delay),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("MINIBOOKMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "minibookmark.db"
	}
	dir := filepath.Join(home, ".minibookmark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "minibookmark.db")
}
