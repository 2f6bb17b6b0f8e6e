package mock

import bookmark "github.com/Lawliet-3/mini-bookmark"

var _ bookmark.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of bookmark.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(page *bookmark.RenderedPage) (*bookmark.ArticleResult, error)
}

func (e *ArticleExtractor) ExtractArticle(page *bookmark.RenderedPage) (*bookmark.ArticleResult, error) {
	return e.ExtractArticleFn(page)
}

var _ bookmark.ListExtractor = (*ListExtractor)(nil)

// ListExtractor is a mock implementation of bookmark.ListExtractor.
type ListExtractor struct {
	ExtractListFn func(page *bookmark.RenderedPage) (*bookmark.ListResult, error)
}

func (e *ListExtractor) ExtractList(page *bookmark.RenderedPage) (*bookmark.ListResult, error) {
	return e.ExtractListFn(page)
}
