package mock

import bookmark "github.com/Lawliet-3/mini-bookmark"

var _ bookmark.Converter = (*Converter)(nil)

// Converter is a mock implementation of bookmark.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
