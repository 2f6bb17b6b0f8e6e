// Package robotstxt provides a robots.txt-backed crawling policy gate.
package robotstxt

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/temoto/robotstxt"
)

// Ensure Gate implements bookmark.PolicyGate at compile time.
var _ bookmark.PolicyGate = (*Gate)(nil)

// robotsPath is the well-known path for robots.txt files.
const robotsPath = "/robots.txt"

// maxRobotsBody limits the size of robots.txt responses we will read.
const maxRobotsBody = 512 * 1024

// defaultTimeout bounds the policy document fetch. The policy document is
// advisory infrastructure: a slow origin must not stall the pipeline.
const defaultTimeout = 10 * time.Second

// Gate checks target URLs against the origin's robots.txt rules for the
// wildcard user-agent. A missing, unreachable, or malformed document is
// treated as "no restrictions"; only an explicit matching disallow rule
// denies a fetch.
type Gate struct {
	client    *http.Client
	userAgent string
}

// Option configures a Gate.
type Option func(*Gate)

// WithHTTPClient sets the HTTP client used to fetch policy documents.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gate) {
		g.client = client
	}
}

// WithUserAgent sets the user-agent token evaluated against the ruleset
// and sent on policy document requests. Defaults to "*".
func WithUserAgent(ua string) Option {
	return func(g *Gate) {
		g.userAgent = ua
	}
}

// NewGate creates a new Gate.
func NewGate(opts ...Option) *Gate {
	g := &Gate{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: "*",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Allowed reports whether the URL may be fetched under the origin's
// published rules. The error is non-nil only for an unusable target URL;
// policy document fetch failures degrade to a permissive true.
func (g *Gate) Allowed(ctx context.Context, rawURL string) (bool, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Host == "" {
		return false, bookmark.Errorf(bookmark.EINVALID, "invalid target URL %q", rawURL)
	}

	data, ok := g.fetchRules(ctx, target)
	if !ok {
		return true, nil
	}

	path := target.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, g.userAgent), nil
}

// fetchRules retrieves and parses the origin's robots.txt. The second
// return value is false whenever no usable ruleset could be obtained.
func (g *Gate) fetchRules(ctx context.Context, target *url.URL) (*robotstxt.RobotsData, bool) {
	robotsURL := target.Scheme + "://" + target.Host + robotsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, http.NoBody)
	if err != nil {
		return nil, false
	}
	if g.userAgent != "*" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBody))
	if err != nil {
		return nil, false
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil, false
	}
	return data, true
}
