// Package rod provides a headless-Chrome implementation of the rendered
// page fetcher using go-rod browser automation.
package rod

import (
	"context"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements bookmark.Fetcher at compile time.
var _ bookmark.Fetcher = (*Fetcher)(nil)

// DefaultQuietWait is the default stretch of network silence treated as
// "client-side rendering has settled". The right threshold is
// deployment-dependent; override it with WithQuietWait.
const DefaultQuietWait = 500 * time.Millisecond

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Every fetch runs in its own incognito browser context, so
// concurrent fetches share no cookie or storage state; the underlying
// browser process is shared and recycled by a BrowserManager.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	quietWait time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithQuietWait sets the quiet-network period the fetcher waits for after
// page load before reading back the document.
func WithQuietWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.quietWait = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	return NewFetcherWithManager(manager, opts...), nil
}

// NewFetcherWithManager creates a Fetcher on an existing BrowserManager.
// The caller retains ownership of the manager unless Close is called.
func NewFetcherWithManager(manager *BrowserManager, opts ...Option) *Fetcher {
	f := &Fetcher{
		manager:   manager,
		quietWait: DefaultQuietWait,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL in a fresh incognito context, waits for the
// network to go quiet, and returns the rendered page. The context and its
// page are torn down on every exit path.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*bookmark.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: %v", url, err)
	}

	browser := f.manager.Acquire()
	defer f.manager.Release()

	// Isolated browsing context per invocation: no shared session or
	// cookie state across fetches.
	incognito, err := browser.Incognito()
	if err != nil {
		return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: create context: %v", url, err)
	}
	defer func() {
		_ = proto.TargetDisposeBrowserContext{
			BrowserContextID: incognito.BrowserContextID,
		}.Call(browser)
	}()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: open page: %v", url, err)
	}
	defer page.Close()

	// Bind timeout and cancellation to all subsequent operations.
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: navigate: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: load: %v", url, err)
	}

	// Downstream classification assumes client-side-injected content has
	// materialized, so wait until network activity has been idle for the
	// quiet period before serializing the document.
	page.WaitRequestIdle(f.quietWait, nil, nil, nil)()

	html, err := page.HTML()
	if err != nil {
		return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: serialize: %v", url, err)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	f.manager.IncrementFetchCount()

	return &bookmark.RenderedPage{HTML: html, FinalURL: finalURL}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
