// Package readability provides an article extractor built on
// go-readability's main-content scoring algorithm.
package readability

import (
	"net/url"
	"strings"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	bmgoquery "github.com/Lawliet-3/mini-bookmark/goquery"
	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements bookmark.ArticleExtractor at compile time.
var _ bookmark.ArticleExtractor = (*Extractor)(nil)

// Extractor reduces an article page to title, metadata, and main-content
// HTML. Extraction is best-effort: missing tags degrade to empty fields
// and malformed HTML yields a partial result rather than an error.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle processes a rendered page. The main content is located by
// readability's text-density scoring and returned as HTML; standard and
// Open Graph metadata come from fixed meta-tag lookups; links cover the
// whole document in order, duplicates included.
func (e *Extractor) ExtractArticle(page *bookmark.RenderedPage) (*bookmark.ArticleResult, error) {
	result := &bookmark.ArticleResult{
		Links: bmgoquery.Anchors(page.HTML, page.FinalURL),
	}

	pageURL, _ := url.Parse(page.FinalURL)

	if article, err := readability.FromReader(strings.NewReader(page.HTML), pageURL); err == nil {
		result.Title = article.Title
		result.MainContent = article.Content
		result.Metadata.Author = article.Byline
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML)); err == nil {
		if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			result.Title = title
		}
		if author := metaContent(doc, "author"); author != "" {
			result.Metadata.Author = author
		}
		result.Metadata.Description = metaContent(doc, "description")
		result.Metadata.Keywords = metaContent(doc, "keywords")
	}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(page.HTML)); err == nil {
		result.Metadata.OGTitle = og.Title
		result.Metadata.OGDescription = og.Description
	}

	return result, nil
}

// metaContent returns the content attribute of a <meta name=...> tag, or
// empty string when the tag is absent.
func metaContent(doc *goquery.Document, name string) string {
	return strings.TrimSpace(doc.Find(`meta[name="` + name + `"]`).First().AttrOr("content", ""))
}
