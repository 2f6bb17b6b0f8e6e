package bookmark

// MaxListEntries caps the number of links surfaced for a listing page.
const MaxListEntries = 20

// Metadata holds standard and Open Graph page metadata. Absent tags
// degrade to empty strings rather than failing extraction.
type Metadata struct {
	Author        string `json:"author"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
}

// LinkEntry is a single outgoing link found in an article. Duplicates are
// preserved: repeated in-article links can each carry distinct anchor text.
type LinkEntry struct {
	Text string `json:"text"`
	URL  string `json:"url"` // always absolute
}

// ListEntry is a single item of a listing page. URL is absolute and
// unique within a ListResult.
type ListEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Image string `json:"image,omitempty"` // absolute thumbnail URL, if any
}

// ArticleResult holds the extracted content of a single-article page.
// MainContent is clean HTML; callers that need plain text strip markup
// themselves.
type ArticleResult struct {
	Title       string      `json:"title"`
	MainContent string      `json:"mainContent"`
	Metadata    Metadata    `json:"metadata"`
	Links       []LinkEntry `json:"links"` // document order, duplicates kept
}

// ListResult holds the extracted links of a listing page. Links are in
// document order, deduplicated by URL, and capped at MaxListEntries.
type ListResult struct {
	Title string      `json:"title"`
	Links []ListEntry `json:"links"`
}

// Result is the tagged outcome of one pipeline invocation. Exactly one of
// Article and List is set, matching Type.
type Result struct {
	URL     string         `json:"url"`
	Type    PageType       `json:"type"`
	Article *ArticleResult `json:"article,omitempty"`
	List    *ListResult    `json:"list,omitempty"`
}

// ArticleExtractor reduces article HTML to title, metadata, and main
// content.
type ArticleExtractor interface {
	// ExtractArticle processes a rendered page and returns a best-effort
	// result. Missing fields degrade to empty values; malformed HTML never
	// fails the extraction.
	ExtractArticle(page *RenderedPage) (*ArticleResult, error)
}

// ListExtractor reduces listing HTML to an ordered, deduplicated
// collection of links.
type ListExtractor interface {
	// ExtractList processes a rendered page and returns a best-effort
	// result. Entries without a usable label are skipped.
	ExtractList(page *RenderedPage) (*ListResult, error)
}
