package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of edugen.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (t *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return t.CountTokensFn(ctx, text)
}
