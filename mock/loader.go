package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of edugen.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, source string) ([]*edugen.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, source string) ([]*edugen.Document, error) {
	return l.LoadFn(ctx, source)
}
