package goquery_test

import (
	"testing"

	"github.com/Lawliet-3/mini-bookmark/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchors_ResolvesRelativeHrefs(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/absolute-path">One</a>
<a href="relative">Two</a>
<a href="https://other.example.org/x">Three</a>
</body></html>`

	links := goquery.Anchors(html, "https://example.com/blog/post")

	require.Len(t, links, 3)
	assert.Equal(t, "https://example.com/absolute-path", links[0].URL)
	assert.Equal(t, "https://example.com/blog/relative", links[1].URL)
	assert.Equal(t, "https://other.example.org/x", links[2].URL)
}

func TestAnchors_PreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/a">first mention</a>
<a href="/b">middle</a>
<a href="/a">second mention</a>
</body></html>`

	links := goquery.Anchors(html, "https://example.com/")

	require.Len(t, links, 3)
	assert.Equal(t, "first mention", links[0].Text)
	assert.Equal(t, "second mention", links[2].Text)
	assert.Equal(t, links[0].URL, links[2].URL)
}

func TestAnchors_SkipsNonHTTPLinks(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="mailto:someone@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="tel:+123">Call</a>
<a href="/keep">Keep</a>
</body></html>`

	links := goquery.Anchors(html, "https://example.com/")

	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/keep", links[0].URL)
}

func TestAnchors_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	links := goquery.Anchors(`<a href="/a">A</a>`, "://bad")

	assert.Empty(t, links)
}
