package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of edugen.Retriever.
type Retriever struct {
	AddFn    func(ctx context.Context, chunks []*edugen.Chunk) error
	SearchFn func(ctx context.Context, query string, limit int) ([]edugen.SearchResult, error)
}

func (r *Retriever) Add(ctx context.Context, chunks []*edugen.Chunk) error {
	return r.AddFn(ctx, chunks)
}

func (r *Retriever) Search(ctx context.Context, query string, limit int) ([]edugen.SearchResult, error) {
	return r.SearchFn(ctx, query, limit)
}
