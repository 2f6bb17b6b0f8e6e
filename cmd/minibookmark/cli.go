package main

import (
	"context"
	"io"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/Lawliet-3/mini-bookmark/pipeline"
	"github.com/Lawliet-3/mini-bookmark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Bookmarks bookmark.BookmarkService
	Pipeline  *pipeline.Pipeline
	Converter bookmark.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch  FetchCmd  `cmd:"" help:"Fetch a URL and print the extracted content"`
	Add    AddCmd    `cmd:"" help:"Fetch URLs and save them as bookmarks"`
	List   ListCmd   `cmd:"" help:"List saved bookmarks"`
	Delete DeleteCmd `cmd:"" help:"Delete a bookmark"`

	Delay     time.Duration `default:"1s" help:"Minimum delay before each fetch"`
	QuietWait time.Duration `default:"500ms" help:"Network-quiet period treated as render settled"`
	Verbose   bool          `short:"v" help:"Log fetch and classification details"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" help:"Page URL"`
	JSON bool   `help:"Print the raw extraction result as JSON"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	User        string   `short:"u" default:"local" help:"Owning user identifier"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	User string `short:"u" default:"local" help:"Owning user identifier"`
	Full bool   `help:"Show full bookmark summaries"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Bookmark ID"`
}
