package slog

import (
	"log/slog"
	"time"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

// Ensure LoggingClassifier implements bookmark.Classifier.
var _ bookmark.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging of the decided
// page type.
type LoggingClassifier struct {
	next   bookmark.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next bookmark.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify logs the classification and delegates to the wrapped classifier.
func (c *LoggingClassifier) Classify(page *bookmark.RenderedPage) bookmark.PageType {
	begin := time.Now()
	pageType := c.next.Classify(page)
	c.logger.Info("classification",
		"url", page.FinalURL,
		"type", string(pageType),
		"duration", time.Since(begin),
	)
	return pageType
}
