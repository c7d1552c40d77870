package main

import (
	"context"
	"io"

	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/etree"
	"github.com/fwojciec/subscan/extract"
	"github.com/fwojciec/subscan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Creators subscan.CreatorService
	Articles subscan.ArticleService
	Batch    *extract.Batch
	Exporter *etree.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`

	Scan   ScanCmd   `cmd:"" help:"Scan one or more Substack newsletters"`
	List   ListCmd   `cmd:"" help:"List scanned creators"`
	Show   ShowCmd   `cmd:"" help:"Show a creator and its articles"`
	Delete DeleteCmd `cmd:"" help:"Delete a creator and its articles"`
	Export ExportCmd `cmd:"" help:"Export creators as an OPML subscription list"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URLs        []string `arg:"" help:"Newsletter URLs or subdomains"`
	Save        bool     `short:"s" help:"Persist results to the database"`
	Out         string   `short:"o" help:"Write result.json and article files under this directory"`
	Enrich      bool     `short:"e" help:"Fetch full article content for each post"`
	Browser     bool     `help:"Render pages in a headless browser"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent scan limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per host"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Creator name"`
	Full bool   `help:"Show full article content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Creator name"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out string `short:"o" help:"Write OPML to a file instead of stdout"`
}
