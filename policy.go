package bookmark

import "context"

// PolicyGate checks a target URL against the origin's published crawling
// policy (robots.txt) before a fetch proceeds.
type PolicyGate interface {
	// Allowed reports whether the wildcard user-agent may fetch the URL.
	// A missing, unreachable, or malformed policy document is treated as
	// "no restrictions": Allowed returns true and no error. False is
	// returned only when an explicit disallow rule matches. An error is
	// returned only for an unusable target URL.
	Allowed(ctx context.Context, url string) (bool, error)
}
