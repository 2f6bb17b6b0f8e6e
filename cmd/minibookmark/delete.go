package main

import (
	"fmt"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	b, err := deps.Bookmarks.FindBookmarkByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmark.ErrorMessage(err))
		return err
	}

	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %q (%s)\n", b.Title, b.ID)
	return nil
}
