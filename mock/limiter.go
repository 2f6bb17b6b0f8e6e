package mock

import (
	"context"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

var _ bookmark.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of bookmark.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
