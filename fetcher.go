package bookmark

import "context"

// FetchRequest describes a single extraction request. URL must be an
// absolute HTTP(S) URL; anything else is rejected before any network
// access happens.
type FetchRequest struct {
	URL string `json:"url"`
}

// RenderedPage is the DOM serialization of a page after its own scripts
// have executed. FinalURL is the address the browser ended up on after
// redirects; downstream URL resolution uses it as the base.
//
// A RenderedPage belongs to the invocation that produced it and is never
// mutated by classification or extraction.
type RenderedPage struct {
	HTML     string
	FinalURL string
}

// Fetcher retrieves fully rendered HTML from URLs.
// Implementations use browser automation so that content injected by the
// page's own JavaScript is present in the result.
type Fetcher interface {
	// Fetch navigates to the URL, waits for client-side rendering to
	// settle, and returns the rendered page. The context controls timeout
	// and cancellation; a cancelled render surfaces as EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (*RenderedPage, error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
