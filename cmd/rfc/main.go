package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	rfc "github.com/mjpitz/mcp-rfc"
	"github.com/mjpitz/mcp-rfc/etree"
	"github.com/mjpitz/mcp-rfc/fs"
	"github.com/mjpitz/mcp-rfc/goquery"
	"github.com/mjpitz/mcp-rfc/htmltomarkdown"
	rfchttp "github.com/mjpitz/mcp-rfc/http"
	"github.com/mjpitz/mcp-rfc/json"
	"github.com/mjpitz/mcp-rfc/memory"
	"github.com/mjpitz/mcp-rfc/plaintext"
	"github.com/mjpitz/mcp-rfc/retrieve"
	rfcslog "github.com/mjpitz/mcp-rfc/slog"
	"github.com/mjpitz/mcp-rfc/sqlite"
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
	// SQLite database backing the document cache. Nil when the cache is
	// kept in memory.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher rfc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("rfc"),
		kong.Description("Retrieve IETF RFCs as structured documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_cache": defaultCachePath()},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rfc --help' to see available commands")
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

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Cache
	var cache rfc.DocumentCache
	if cli.Cache == "" {
		cache = memory.NewDocumentCache()
	} else {
		if dir := filepath.Dir(cli.Cache); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create cache directory %q: %w", dir, err)
			}
		}
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set RFC_CACHE to use a different cache path, or pass --cache='' to disable it\n")
			return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
		}
		defer m.Close()

		docs := sqlite.NewDocumentCache(m.DB)
		cache = docs
		deps.Index = docs
	}
	if logger != nil {
		cache = rfcslog.NewLoggingDocumentCache(cache, logger)
	}

	// Transport
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = rfchttp.NewFetcher(
			rfchttp.WithTimeout(cli.Timeout),
			rfchttp.WithRateLimit(cli.Rate),
		)
	}
	defer fetcher.Close()
	if logger != nil {
		fetcher = rfcslog.NewLoggingFetcher(fetcher, logger)
	}

	// Parsers, HTML first
	parsers := []rfc.Parser{goquery.NewParser(), plaintext.NewParser()}
	if logger != nil {
		for i, p := range parsers {
			parsers[i] = rfcslog.NewLoggingParser(p, logger)
		}
	}

	var resolver rfc.Resolver = retrieve.NewResolver(fetcher, rfc.Source{
		HTMLURL: cli.HTMLURL,
		TextURL: cli.TextURL,
	}, parsers...)
	if logger != nil {
		resolver = rfcslog.NewLoggingResolver(resolver, logger)
	}
	deps.Resolver = retrieve.NewCachingResolver(resolver, cache)

	// Output
	deps.Renderers = map[string]rfc.Renderer{
		"json":     json.NewRenderer(),
		"markdown": htmltomarkdown.NewRenderer(htmltomarkdown.NewConverter()),
		"xml":      etree.NewRenderer(),
	}
	if cli.Get.Output != "" {
		deps.Writer = fs.NewWriter(cli.Get.Output)
	}

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "rfc.db"
	}
	return filepath.Join(dir, "rfc", "rfc.db")
}
