// Package mock provides function-field mock implementations of the
// bookmark interfaces for testing.
package mock

import (
	"context"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

var _ bookmark.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bookmark.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*bookmark.RenderedPage, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*bookmark.RenderedPage, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
