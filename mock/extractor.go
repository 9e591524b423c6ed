package mock

import "github.com/fwojciec/edugen"

var _ edugen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of edugen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*edugen.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*edugen.ExtractResult, error) {
	return e.ExtractFn(html)
}
