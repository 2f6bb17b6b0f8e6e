package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bookmark.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements bookmark.BookmarkService using SQLite.
type BookmarkService struct {
	db *DB
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateBookmark creates a new bookmark, assigning its ID, content hash,
// and creation time.
func (s *BookmarkService) CreateBookmark(ctx context.Context, b *bookmark.Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	b.ContentHash = hashContent(b.Summary)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, user_id, url, title, summary, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.URL, b.Title, b.Summary, b.ContentHash,
		b.CreatedAt.Format(time.RFC3339))

	return err
}

// FindBookmarkByID retrieves a bookmark by ID.
func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, url, title, summary, content_hash, created_at
		FROM bookmarks
		WHERE id = ?
	`, id).Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.Summary, &b.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, bookmark.Errorf(bookmark.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}

	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &b, nil
}

// FindBookmarks retrieves bookmarks matching the filter, newest first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter bookmark.BookmarkFilter) ([]*bookmark.Bookmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, user_id, url, title, summary, content_hash, created_at FROM bookmarks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.UserID != nil {
		query.WriteString(" AND user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT clause; -1 means no limit.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*bookmark.Bookmark
	for rows.Next() {
		var b bookmark.Bookmark
		var createdAt string

		if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.Summary, &b.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		bookmarks = append(bookmarks, &b)
	}

	return bookmarks, rows.Err()
}

// DeleteBookmark permanently removes a bookmark.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookmark.Errorf(bookmark.ENOTFOUND, "bookmark not found")
	}

	return nil
}
