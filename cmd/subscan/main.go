package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/etree"
	"github.com/fwojciec/subscan/extract"
	"github.com/fwojciec/subscan/goquery"
	"github.com/fwojciec/subscan/htmltomarkdown"
	subhttp "github.com/fwojciec/subscan/http"
	"github.com/fwojciec/subscan/readability"
	"github.com/fwojciec/subscan/rod"
	"github.com/fwojciec/subscan/rss"
	subslog "github.com/fwojciec/subscan/slog"
	"github.com/fwojciec/subscan/sqlite"
	"github.com/fwojciec/subscan/trafilatura"
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
	CreatorService subscan.CreatorService
	ArticleService subscan.ArticleService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("subscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'subscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SUBSCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CreatorService = sqlite.NewCreatorService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Creators = m.CreatorService
	deps.Articles = m.ArticleService
	deps.Exporter = etree.NewExporter()

	// Wire the extraction pipeline only for the scan command; every other
	// command works against stored data.
	if cmd == "scan" {
		feedFetcher := subhttp.NewFetcher(subhttp.WithAccept(subhttp.AcceptFeed))

		var pageFetcher subscan.Fetcher = subhttp.NewFetcher()
		if cli.Scan.Browser {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()
			pageFetcher = browser
		}

		limiter := extract.NewHostLimiter(cli.Scan.RPS)

		pipeline := &extract.Pipeline{
			FeedFetcher: subslog.NewLoggingFetcher(feedFetcher, logger),
			PageFetcher: subslog.NewLoggingFetcher(pageFetcher, logger),
			Parser:      rss.NewParser(),
			Images:      goquery.NewLocator(),
		}

		if cli.Scan.Enrich {
			pipeline.Enricher = &extract.Enricher{
				Fetcher:     subslog.NewLoggingFetcher(pageFetcher, logger),
				Extractor:   trafilatura.NewExtractor(),
				Fallback:    readability.NewExtractor(),
				Converter:   htmltomarkdown.NewConverter(),
				Limiter:     limiter,
				Concurrency: cli.Scan.Concurrency,
			}
		}

		deps.Batch = &extract.Batch{
			Service:     subslog.NewLoggingExtractionService(pipeline, logger),
			Limiter:     limiter,
			Concurrency: cli.Scan.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SUBSCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "subscan.db"
	}
	dir := filepath.Join(home, ".subscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "subscan.db")
}
