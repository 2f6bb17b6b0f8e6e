// Package trafilatura provides an article extractor built on
// go-trafilatura's boilerplate-removal pipeline. It implements the same
// interface as the readability package; pick whichever suits the corpus.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	bmgoquery "github.com/Lawliet-3/mini-bookmark/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bookmark.ArticleExtractor at compile time.
var _ bookmark.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content and metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle processes a rendered page and returns a best-effort
// result; trafilatura failures degrade to empty content rather than an
// error so the pipeline stays total once rendering has succeeded.
func (e *Extractor) ExtractArticle(page *bookmark.RenderedPage) (*bookmark.ArticleResult, error) {
	result := &bookmark.ArticleResult{
		Links: bmgoquery.Anchors(page.HTML, page.FinalURL),
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(page.FinalURL); err == nil {
		opts.OriginalURL = u
	}

	extract, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil {
		return result, nil
	}

	result.Title = extract.Metadata.Title
	result.Metadata.Author = extract.Metadata.Author
	result.Metadata.Description = extract.Metadata.Description
	result.Metadata.Keywords = strings.Join(extract.Metadata.Tags, ", ")

	if extract.ContentNode != nil {
		if contentHTML, err := renderNode(extract.ContentNode); err == nil {
			result.MainContent = contentHTML
		}
	}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(page.HTML)); err == nil {
		result.Metadata.OGTitle = og.Title
		result.Metadata.OGDescription = og.Description
	}

	return result, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
