package bookmark

// Converter converts HTML to Markdown.
// The bookmark layer uses it to derive plain, storable summaries from
// extracted article content.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an ArticleExtractor).
	Convert(html string) (string, error)
}
