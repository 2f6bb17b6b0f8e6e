// Package pipeline orchestrates the fetch-and-extract operation: policy
// check, throttled rendered fetch, page classification, and article or
// list extraction, returning a single tagged result.
package pipeline

import (
	"context"
	"net/url"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

// Pipeline runs one extraction per invocation. Invocations are
// independent and stateless across calls; the only shared state is the
// injected collaborators, each of which is safe for concurrent use.
type Pipeline struct {
	Gate       bookmark.PolicyGate
	Fetcher    bookmark.Fetcher
	Classifier bookmark.Classifier
	Articles   bookmark.ArticleExtractor
	Lists      bookmark.ListExtractor

	// Limiter, if set, spaces outbound fetches. The policy check runs
	// before the wait so a denied URL never consumes fetch budget.
	Limiter bookmark.Limiter
}

// Run executes a single fetch-and-extract operation.
//
// It fails with EINVALID before any network access when the URL is not an
// absolute HTTP(S) URL, with EFORBIDDEN when the origin's policy
// explicitly disallows the path, and propagates fetch errors unchanged.
// Once rendering succeeds the result is guaranteed: classification and
// extraction are total.
func (p *Pipeline) Run(ctx context.Context, req bookmark.FetchRequest) (*bookmark.Result, error) {
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}

	allowed, err := p.Gate.Allowed(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, bookmark.Errorf(bookmark.EFORBIDDEN, "access to %s is not allowed by robots.txt", req.URL)
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return nil, bookmark.Errorf(bookmark.EUNAVAILABLE, "render %s: %v", req.URL, err)
		}
	}

	page, err := p.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	result := &bookmark.Result{
		URL:  page.FinalURL,
		Type: p.Classifier.Classify(page),
	}

	switch result.Type {
	case bookmark.PageTypeList:
		list, err := p.Lists.ExtractList(page)
		if err != nil {
			return nil, err
		}
		result.List = list
	default:
		article, err := p.Articles.ExtractArticle(page)
		if err != nil {
			return nil, err
		}
		result.Article = article
	}

	return result, nil
}

// validateURL rejects anything but an absolute HTTP(S) URL.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return bookmark.Errorf(bookmark.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return bookmark.Errorf(bookmark.EINVALID, "URL must be absolute http(s): %q", rawURL)
	}
	return nil
}
