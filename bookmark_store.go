package bookmark

import (
	"context"
	"time"
)

// Bookmark represents a saved page. Summary is the Markdown digest of the
// extracted content at save time; ContentHash identifies that digest so a
// caller can cheaply detect a changed page on re-fetch.
type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.UserID == "" {
		return Errorf(EINVALID, "bookmark user ID required")
	}
	if b.URL == "" {
		return Errorf(EINVALID, "bookmark URL required")
	}
	return nil
}

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	ID     *string `json:"id"`
	UserID *string `json:"userId"`
	URL    *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BookmarkService represents a service for managing saved bookmarks.
// The extraction core never writes storage itself; this boundary belongs
// to the caller.
type BookmarkService interface {
	// CreateBookmark creates a new bookmark, assigning its ID, content
	// hash, and creation time.
	CreateBookmark(ctx context.Context, b *Bookmark) error

	// FindBookmarkByID retrieves a bookmark by ID.
	// Returns ENOTFOUND if the bookmark does not exist.
	FindBookmarkByID(ctx context.Context, id string) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks matching the filter, newest first.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)

	// DeleteBookmark permanently removes a bookmark.
	// Returns ENOTFOUND if the bookmark does not exist.
	DeleteBookmark(ctx context.Context, id string) error
}
