//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/Lawliet-3/mini-bookmark/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements bookmark.Fetcher.
var _ bookmark.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve a page that uses JavaScript to add content.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := fetcher.Fetch(ctx, srv.URL)

	require.NoError(t, err)
	assert.Contains(t, page.HTML, "JavaScript Rendered")
	assert.NotContains(t, page.HTML, "Loading...")
	assert.Contains(t, page.FinalURL, srv.URL)
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Don't respond - let context timeout
		select {}
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.Equal(t, bookmark.EUNAVAILABLE, bookmark.ErrorCode(err))
}

func TestFetcher_Fetch_IsolatedContexts(t *testing.T) {
	t.Parallel()

	// First fetch sets a cookie; the second must not see it because each
	// fetch runs in a fresh incognito context.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "one"})
		w.Header().Set("Content-Type", "text/html")
		if _, err := r.Cookie("session"); err != nil {
			_, _ = w.Write([]byte("<html><body>no cookie</body></html>"))
			return
		}
		_, _ = w.Write([]byte("<html><body>has cookie</body></html>"))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	first, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, first.HTML, "no cookie")

	second, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, second.HTML, "no cookie")
}
