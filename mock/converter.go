package mock

import "github.com/fwojciec/edugen"

var _ edugen.Converter = (*Converter)(nil)

// Converter is a mock implementation of edugen.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
