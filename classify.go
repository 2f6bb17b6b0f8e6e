package bookmark

// PageType is the result of page classification.
type PageType string

// Page classifications. There is no "unknown": uncertain pages classify
// as PageTypeArticle by explicit policy.
const (
	PageTypeArticle PageType = "article"
	PageTypeList    PageType = "list"
)

// Classifier decides whether a rendered page is a single article or a
// listing/index page.
type Classifier interface {
	// Classify inspects the rendered HTML and the final URL shape and
	// returns a best-effort classification. It is a pure function of its
	// input and never fails; malformed HTML classifies as an article.
	Classify(page *RenderedPage) PageType
}
