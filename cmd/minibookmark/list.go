package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

// summaryPreviewLen bounds the summary shown without --full.
const summaryPreviewLen = 100

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, bookmark.BookmarkFilter{UserID: &c.User})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmark.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks found. Use 'minibookmark add' to create one.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s  %s\n    %s\n", b.ID, b.Title, b.URL)
		if c.Full {
			fmt.Fprintln(deps.Stdout, b.Summary)
			continue
		}
		if preview := previewSummary(b.Summary); preview != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", preview)
		}
	}

	return nil
}

// previewSummary collapses a summary to a single truncated line.
// Truncation is by rune so a multi-byte character is never split.
func previewSummary(summary string) string {
	summary = strings.Join(strings.Fields(summary), " ")
	if utf8.RuneCountInString(summary) > summaryPreviewLen {
		summary = string([]rune(summary)[:summaryPreviewLen]) + "..."
	}
	return summary
}
