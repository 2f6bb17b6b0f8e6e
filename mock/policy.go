package mock

import (
	"context"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

var _ bookmark.PolicyGate = (*PolicyGate)(nil)

// PolicyGate is a mock implementation of bookmark.PolicyGate.
type PolicyGate struct {
	AllowedFn func(ctx context.Context, url string) (bool, error)
}

func (g *PolicyGate) Allowed(ctx context.Context, url string) (bool, error) {
	return g.AllowedFn(ctx, url)
}
