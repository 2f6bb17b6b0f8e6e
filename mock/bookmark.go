package mock

import (
	"context"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

var _ bookmark.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of bookmark.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn   func(ctx context.Context, b *bookmark.Bookmark) error
	FindBookmarkByIDFn func(ctx context.Context, id string) (*bookmark.Bookmark, error)
	FindBookmarksFn    func(ctx context.Context, filter bookmark.BookmarkFilter) ([]*bookmark.Bookmark, error)
	DeleteBookmarkFn   func(ctx context.Context, id string) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, b *bookmark.Bookmark) error {
	return s.CreateBookmarkFn(ctx, b)
}

func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	return s.FindBookmarkByIDFn(ctx, id)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter bookmark.BookmarkFilter) ([]*bookmark.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	return s.DeleteBookmarkFn(ctx, id)
}
