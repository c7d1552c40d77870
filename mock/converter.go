package mock

import "github.com/fwojciec/subscan"

var _ subscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of subscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
