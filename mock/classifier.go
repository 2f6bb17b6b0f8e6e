package mock

import bookmark "github.com/Lawliet-3/mini-bookmark"

var _ bookmark.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of bookmark.Classifier.
type Classifier struct {
	ClassifyFn func(page *bookmark.RenderedPage) bookmark.PageType
}

func (c *Classifier) Classify(page *bookmark.RenderedPage) bookmark.PageType {
	return c.ClassifyFn(page)
}
