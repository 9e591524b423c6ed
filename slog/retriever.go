package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/edugen"
)

// Ensure LoggingRetriever implements edugen.Retriever.
var _ edugen.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with indexing and search logging.
type LoggingRetriever struct {
	next   edugen.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next edugen.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Add delegates to the wrapped retriever and logs the operation.
func (r *LoggingRetriever) Add(ctx context.Context, chunks []*edugen.Chunk) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("index add",
			"chunks", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Add(ctx, chunks)
}

// Search delegates to the wrapped retriever and logs the operation.
func (r *LoggingRetriever) Search(ctx context.Context, query string, limit int) (results []edugen.SearchResult, err error) {
	defer func(begin time.Time) {
		r.logger.Info("index search",
			"query", query,
			"limit", limit,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Search(ctx, query, limit)
}
