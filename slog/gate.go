// Package slog provides logging decorators for bookmark interfaces using
// the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

// Ensure LoggingGate implements bookmark.PolicyGate.
var _ bookmark.PolicyGate = (*LoggingGate)(nil)

// LoggingGate wraps a PolicyGate with debug logging of policy decisions.
type LoggingGate struct {
	next   bookmark.PolicyGate
	logger *slog.Logger
}

// NewLoggingGate creates a new LoggingGate.
func NewLoggingGate(next bookmark.PolicyGate, logger *slog.Logger) *LoggingGate {
	return &LoggingGate{next: next, logger: logger}
}

// Allowed logs the policy decision and delegates to the wrapped gate.
func (g *LoggingGate) Allowed(ctx context.Context, url string) (allowed bool, err error) {
	defer func(begin time.Time) {
		g.logger.Info("policy check",
			"url", url,
			"allowed", allowed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Allowed(ctx, url)
}
