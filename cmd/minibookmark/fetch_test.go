package main

import (
	"bytes"
	"context"
	"testing"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/Lawliet-3/mini-bookmark/mock"
	"github.com/Lawliet-3/mini-bookmark/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDeps returns Dependencies with a pipeline run entirely on mocks.
func testDeps(pageType bookmark.PageType, article *bookmark.ArticleResult, list *bookmark.ListResult) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	p := &pipeline.Pipeline{
		Gate: &mock.PolicyGate{AllowedFn: func(ctx context.Context, url string) (bool, error) {
			return true, nil
		}},
		Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*bookmark.RenderedPage, error) {
			return &bookmark.RenderedPage{HTML: "<html></html>", FinalURL: url}, nil
		}},
		Classifier: &mock.Classifier{ClassifyFn: func(page *bookmark.RenderedPage) bookmark.PageType {
			return pageType
		}},
		Articles: &mock.ArticleExtractor{ExtractArticleFn: func(page *bookmark.RenderedPage) (*bookmark.ArticleResult, error) {
			return article, nil
		}},
		Lists: &mock.ListExtractor{ExtractListFn: func(page *bookmark.RenderedPage) (*bookmark.ListResult, error) {
			return list, nil
		}},
	}

	deps := &Dependencies{
		Ctx:      context.Background(),
		Stdout:   &stdout,
		Stderr:   &stderr,
		Pipeline: p,
		Converter: &mock.Converter{ConvertFn: func(html string) (string, error) {
			return "converted markdown", nil
		}},
	}
	return deps, &stdout, &stderr
}

func TestFetchCmd_PrintsArticle(t *testing.T) {
	t.Parallel()

	article := &bookmark.ArticleResult{
		Title:       "My Post",
		MainContent: "<p>Body</p>",
		Metadata:    bookmark.Metadata{Description: "A description."},
	}
	deps, stdout, _ := testDeps(bookmark.PageTypeArticle, article, nil)

	cmd := &FetchCmd{URL: "https://example.com/blog/my-post"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "My Post (article)")
	assert.Contains(t, stdout.String(), "A description.")
	assert.Contains(t, stdout.String(), "converted markdown")
}

func TestFetchCmd_PrintsList(t *testing.T) {
	t.Parallel()

	list := &bookmark.ListResult{
		Title: "News",
		Links: []bookmark.ListEntry{
			{Title: "First", URL: "https://example.com/1"},
			{Title: "Second", URL: "https://example.com/2"},
		},
	}
	deps, stdout, _ := testDeps(bookmark.PageTypeList, nil, list)

	cmd := &FetchCmd{URL: "https://example.com/news"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "News (list, 2 links)")
	assert.Contains(t, stdout.String(), "https://example.com/1")
}

func TestFetchCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	article := &bookmark.ArticleResult{Title: "My Post"}
	deps, stdout, _ := testDeps(bookmark.PageTypeArticle, article, nil)

	cmd := &FetchCmd{URL: "https://example.com/blog/my-post", JSON: true}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), `"type": "article"`)
	assert.Contains(t, stdout.String(), `"title": "My Post"`)
}

func TestFetchCmd_ReportsPolicyDenied(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps(bookmark.PageTypeArticle, nil, nil)
	deps.Pipeline.Gate = &mock.PolicyGate{AllowedFn: func(ctx context.Context, url string) (bool, error) {
		return false, nil
	}}

	cmd := &FetchCmd{URL: "https://example.com/private/x"}
	err := cmd.Run(deps)

	require.Error(t, err)
	assert.Equal(t, bookmark.EFORBIDDEN, bookmark.ErrorCode(err))
	assert.Contains(t, stderr.String(), "not allowed by robots.txt")
}
