package robotstxt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/Lawliet-3/mini-bookmark/robotstxt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Gate implements bookmark.PolicyGate.
var _ bookmark.PolicyGate = (*robotstxt.Gate)(nil)

func robotsServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGate_ExplicitDisallow(t *testing.T) {
	t.Parallel()

	srv := robotsServer(t, "User-agent: *\nDisallow: /private/\n")
	gate := robotstxt.NewGate()

	allowed, err := gate.Allowed(context.Background(), srv.URL+"/private/x")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = gate.Allowed(context.Background(), srv.URL+"/public/x")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGate_NamedAgentGroup(t *testing.T) {
	t.Parallel()

	srv := robotsServer(t, "User-agent: minibookmark\nDisallow: /members/\n\nUser-agent: *\nDisallow:\n")
	gate := robotstxt.NewGate(robotstxt.WithUserAgent("minibookmark"))

	allowed, err := gate.Allowed(context.Background(), srv.URL+"/members/area")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestGate_MissingDocumentIsPermissive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	gate := robotstxt.NewGate()
	allowed, err := gate.Allowed(context.Background(), srv.URL+"/anything")

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGate_UnreachableOriginIsPermissive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	gate := robotstxt.NewGate()
	allowed, err := gate.Allowed(context.Background(), url+"/path")

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGate_ServerErrorIsPermissive(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	gate := robotstxt.NewGate()
	allowed, err := gate.Allowed(context.Background(), srv.URL+"/path")

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGate_InvalidTargetURL(t *testing.T) {
	t.Parallel()

	gate := robotstxt.NewGate()
	_, err := gate.Allowed(context.Background(), "not-a-url")

	require.Error(t, err)
	assert.Equal(t, bookmark.EINVALID, bookmark.ErrorCode(err))
}
