package goquery

import (
	"net/url"
	"strings"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/PuerkitoBio/goquery"
)

// Ensure ListExtractor implements bookmark.ListExtractor at compile time.
var _ bookmark.ListExtractor = (*ListExtractor)(nil)

// listTitleFallback labels listing results whose document has no title.
const listTitleFallback = "Untitled"

// ListExtractor reduces a listing page to an ordered, deduplicated set of
// outgoing links with optional thumbnails.
type ListExtractor struct{}

// NewListExtractor creates a new ListExtractor.
func NewListExtractor() *ListExtractor {
	return &ListExtractor{}
}

// ExtractList walks all hyperlinks in document order, resolves them to
// absolute URLs, dedupes by URL keeping the first occurrence, and caps the
// result at bookmark.MaxListEntries. Links without visible text fall back
// to their title attribute; links with neither are skipped.
func (e *ListExtractor) ExtractList(page *bookmark.RenderedPage) (*bookmark.ListResult, error) {
	result := &bookmark.ListResult{Title: listTitleFallback}

	base, err := url.Parse(page.FinalURL)
	if err != nil {
		return result, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return result, nil
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		result.Title = title
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href := sel.AttrOr("href", "")
		if href == "" || isNonHTTPLink(href) {
			return true
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return true
		}
		if _, ok := seen[resolved]; ok {
			return true
		}

		label := strings.TrimSpace(sel.Text())
		if label == "" {
			label = strings.TrimSpace(sel.AttrOr("title", ""))
		}
		if label == "" {
			return true
		}

		entry := bookmark.ListEntry{Title: label, URL: resolved}
		if src := sel.Find("img").First().AttrOr("src", ""); src != "" {
			entry.Image = resolveURL(base, src)
		}

		seen[resolved] = struct{}{}
		result.Links = append(result.Links, entry)
		return len(result.Links) < bookmark.MaxListEntries
	})

	return result, nil
}
