package main

import (
	"fmt"
	"strings"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"golang.org/x/sync/errgroup"
)

// Run executes the add command. URLs are fetched concurrently; the
// pipeline's limiter still spaces the actual network requests.
func (c *AddCmd) Run(deps *Dependencies) error {
	g, ctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}

	saved := make([]*bookmark.Bookmark, len(c.URLs))
	for i, rawURL := range c.URLs {
		g.Go(func() error {
			result, err := deps.Pipeline.Run(ctx, bookmark.FetchRequest{URL: rawURL})
			if err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", rawURL, bookmark.ErrorMessage(err))
				return err
			}

			title, summary, err := summarize(result, deps.Converter)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", rawURL, bookmark.ErrorMessage(err))
				return err
			}

			b := &bookmark.Bookmark{
				UserID:  c.User,
				URL:     result.URL,
				Title:   title,
				Summary: summary,
			}
			if err := deps.Bookmarks.CreateBookmark(ctx, b); err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", rawURL, bookmark.ErrorMessage(err))
				return err
			}

			saved[i] = b
			return nil
		})
	}

	err := g.Wait()

	for _, b := range saved {
		if b != nil {
			fmt.Fprintf(deps.Stdout, "Added bookmark %q (%s)\n", b.Title, b.ID)
		}
	}

	return err
}

// summarize derives a bookmark title and summary from an extraction
// result. Articles become Markdown; listings become a short link digest.
func summarize(result *bookmark.Result, converter bookmark.Converter) (title, summary string, err error) {
	switch result.Type {
	case bookmark.PageTypeList:
		title = result.List.Title
		var sb strings.Builder
		for _, link := range result.List.Links {
			fmt.Fprintf(&sb, "- [%s](%s)\n", link.Title, link.URL)
		}
		summary = sb.String()
	default:
		title = result.Article.Title
		if result.Article.MainContent == "" {
			summary = result.Article.Metadata.Description
			break
		}
		summary, err = converter.Convert(result.Article.MainContent)
	}
	return title, summary, err
}
