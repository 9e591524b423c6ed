// Package pipeline wires ingestion, retrieval, generation, and
// rendering into the end-to-end artifact flows. Each run builds its
// own vector index and discards it; generation is retried up to
// edugen.MaxGenerateAttempts times before giving up.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/edugen"
)

// DefaultTopK is the number of context chunks retrieved per attempt.
const DefaultTopK = 4

// Ingester loads documents from a typed source reference.
type Ingester interface {
	Ingest(ctx context.Context, source string, sourceType edugen.SourceType) ([]*edugen.Document, error)
}

// IngesterFunc adapts a function to the Ingester interface.
type IngesterFunc func(ctx context.Context, source string, sourceType edugen.SourceType) ([]*edugen.Document, error)

// Ingest calls f.
func (f IngesterFunc) Ingest(ctx context.Context, source string, sourceType edugen.SourceType) ([]*edugen.Document, error) {
	return f(ctx, source, sourceType)
}

// RetrieverFactory builds a fresh index for one pipeline run.
type RetrieverFactory func() edugen.Retriever

// retryGenerate runs generate until it succeeds or the attempt budget
// is spent. Failed attempts are logged and counted; any error from a
// single attempt is soft because the next attempt may produce valid
// output.
func retryGenerate[T any](ctx context.Context, logger *slog.Logger, kind string, generate func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var zero T
	for attempt := 1; attempt <= edugen.MaxGenerateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		out, err := generate(ctx, attempt)
		if err == nil {
			if attempt > 1 {
				logger.Info("generation succeeded after retries", "kind", kind, "attempt", attempt)
			}
			return out, nil
		}

		logger.Warn("generation attempt failed", "kind", kind, "attempt", attempt, "err", err)
	}
	return zero, edugen.Errorf(edugen.EINTERNAL, "%s generation failed after %d attempts", kind, edugen.MaxGenerateAttempts)
}
