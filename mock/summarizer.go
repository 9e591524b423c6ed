package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of edugen.Summarizer.
type Summarizer struct {
	SummarizeTextFn  func(ctx context.Context, text string) (string, error)
	SummarizeImageFn func(ctx context.Context, data []byte, mimeType string) (string, error)
}

func (s *Summarizer) SummarizeText(ctx context.Context, text string) (string, error) {
	return s.SummarizeTextFn(ctx, text)
}

func (s *Summarizer) SummarizeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	return s.SummarizeImageFn(ctx, data, mimeType)
}
