package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Classifier implements bookmark.Classifier at compile time.
var _ bookmark.Classifier = (*Classifier)(nil)

// Classification thresholds. No single structural signal is reliable, so
// signals are layered from most to least specific; these constants set the
// cutoffs for the structural probes.
const (
	// articleTextMin is the minimum text length for a lone content
	// container to mark the page as an article.
	articleTextMin = 1000

	// listLinkMin is the number of anchors a list container must exceed
	// to mark the page as a listing.
	listLinkMin = 5

	// charsPerLinkMin is the text-to-link density below which a page
	// reads as a link collection rather than prose.
	charsPerLinkMin = 100
)

// datePath matches date-segmented URL paths like /2024/05/01/.
var datePath = regexp.MustCompile(`/\d{4}/\d{2}/\d{2}(/|$)`)

// Classifier decides between article and listing pages using layered
// structural heuristics over the rendered document.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the page type. Rules are evaluated in precedence
// order, first match wins; uncertain pages default to article.
func (c *Classifier) Classify(page *bookmark.RenderedPage) bookmark.PageType {
	// Rule 1: URL shape. Date-segmented and /article/ paths are article
	// permalinks regardless of page structure.
	if u, err := url.Parse(page.FinalURL); err == nil {
		path := u.Path
		if datePath.MatchString(path) || hasArticleSegment(path) {
			return bookmark.PageTypeArticle
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return bookmark.PageTypeArticle
	}

	// Rule 2: structural dominance. Exactly one substantial content
	// container means a single-subject page.
	content := doc.Find("article, div, section").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return classContainsAny(sel, "article", "post", "content")
	})
	if content.Length() == 1 && utf8.RuneCountInString(strings.TrimSpace(content.Text())) > articleTextMin {
		return bookmark.PageTypeArticle
	}

	// Rule 3: list container. A list- or grid-classed element dense with
	// anchors marks an index page.
	containers := doc.Find("ul, ol, div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return classContainsAny(sel, "list", "grid")
	})
	if containers.Length() > 0 && containers.First().Find("a[href]").Length() > listLinkMin {
		return bookmark.PageTypeList
	}

	// Rule 4: text-to-link density across the whole page.
	linkCount := doc.Find("a[href]").Length()
	if linkCount > 0 {
		textLen := utf8.RuneCountInString(strings.TrimSpace(doc.Find("body").Text()))
		if textLen/linkCount < charsPerLinkMin {
			return bookmark.PageTypeList
		}
	}

	return bookmark.PageTypeArticle
}

// hasArticleSegment reports whether the path contains an /article/ segment.
func hasArticleSegment(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == "article" {
			return true
		}
	}
	return false
}

// classContainsAny reports whether the element's class attribute contains
// any of the given substrings, case-insensitively.
func classContainsAny(sel *goquery.Selection, substrs ...string) bool {
	class := strings.ToLower(sel.AttrOr("class", ""))
	if class == "" {
		return false
	}
	for _, s := range substrs {
		if strings.Contains(class, s) {
			return true
		}
	}
	return false
}
