// Package goquery provides CSS-selector based page classification and
// link extraction over rendered HTML.
package goquery

import (
	"net/url"
	"strings"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/PuerkitoBio/goquery"
)

// Anchors walks every hyperlink in the document in order and resolves each
// href to an absolute URL against baseURL. Duplicates are preserved; only
// non-HTTP links (javascript:, mailto:, ...) and unparseable hrefs are
// skipped. Malformed HTML degrades to an empty slice.
func Anchors(html string, baseURL string) []bookmark.LinkEntry {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []bookmark.LinkEntry
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		links = append(links, bookmark.LinkEntry{
			Text: strings.TrimSpace(sel.Text()),
			URL:  resolved,
		})
	})
	return links
}

// resolveURL resolves a relative URL against a base URL. Returns empty
// string if the href cannot be parsed or resolves to a non-HTTP scheme.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
