package main

import (
	"context"
	"io"
	"time"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Resolver  rfc.Resolver
	Index     rfc.DocumentIndex
	Writer    rfc.DocumentWriter
	Renderers map[string]rfc.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	HTMLURL string        `name:"html-url" env:"RFC_HTML_URL" default:"https://www.rfc-editor.org/rfc/rfc%s.html" help:"URL template of the HTML variant"`
	TextURL string        `name:"text-url" env:"RFC_TEXT_URL" default:"https://www.rfc-editor.org/rfc/rfc%s.txt" help:"URL template of the text variant"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	Rate    float64       `default:"2" help:"Requests per second per host (0 disables limiting)"`
	Cache   string        `env:"RFC_CACHE" default:"${default_cache}" help:"SQLite cache path (empty keeps the cache in memory)"`
	Verbose bool          `short:"v" help:"Log each fetch, parse and cache operation to stderr"`

	Get      GetCmd      `cmd:"" help:"Retrieve documents"`
	Sections SectionsCmd `cmd:"" help:"List the sections of a document"`
	Cached   CachedCmd   `cmd:"" help:"List cached documents"`
	Forget   ForgetCmd   `cmd:"" help:"Remove documents from the cache"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Numbers     []string `arg:"" help:"RFC numbers, e.g. 2616 or RFC9110"`
	Format      string   `short:"f" enum:"json,markdown,xml" default:"json" help:"Output format (json, markdown, xml)"`
	Output      string   `short:"o" help:"Write one file per document to this directory instead of stdout"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent retrieval limit"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Number  string `arg:"" help:"RFC number"`
	Anchors bool   `short:"a" help:"Show an anchor for each heading"`
}

// CachedCmd is the "cached" subcommand.
type CachedCmd struct {
	Format string `short:"f" help:"Only list documents parsed from this format (html, text)"`
	Limit  int    `short:"n" default:"0" help:"Maximum number of entries (0 lists all)"`
}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	Numbers []string `arg:"" help:"RFC numbers to remove"`
}
