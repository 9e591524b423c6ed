// Package memindex provides an in-memory vector index for session-scoped
// retrieval. An index lives for a single generation run and is discarded
// with it, so there is no persistence layer.
package memindex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/bloom"
)

var _ edugen.Retriever = (*Index)(nil)

const (
	// defaultExpectedChunks sizes the dedupe filter for a typical run.
	defaultExpectedChunks = 10000

	// defaultEmbedRPS limits embedding batch calls per second.
	defaultEmbedRPS = 2

	// defaultBatchSize is the number of texts embedded per request.
	defaultBatchSize = 32
)

// Index is an in-memory vector index. Chunks are embedded on Add and
// matched by cosine similarity on Search. Duplicate chunk contents are
// detected with a Bloom filter over content hashes and skipped.
type Index struct {
	mu        sync.RWMutex
	embedder  edugen.Embedder
	limiter   *rate.Limiter
	dedupe    *bloom.Filter
	batchSize int
	chunks    []*edugen.Chunk
}

// Option configures an Index.
type Option func(*Index)

// WithEmbedRPS sets the embedding calls per second limit.
func WithEmbedRPS(rps float64) Option {
	return func(idx *Index) {
		idx.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithBatchSize sets the number of texts embedded per request.
func WithBatchSize(n int) Option {
	return func(idx *Index) {
		if n > 0 {
			idx.batchSize = n
		}
	}
}

// NewIndex creates an empty index backed by the given embedder.
func NewIndex(embedder edugen.Embedder, opts ...Option) *Index {
	idx := &Index{
		embedder:  embedder,
		limiter:   rate.NewLimiter(rate.Limit(defaultEmbedRPS), 1),
		dedupe:    bloom.NewFilter(defaultExpectedChunks, 0.01),
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Add embeds and indexes chunks. Chunks whose content hash has already
// been seen are skipped. Chunks that arrive with an embedding are
// indexed as-is.
func (idx *Index) Add(ctx context.Context, chunks []*edugen.Chunk) error {
	var pending []*edugen.Chunk
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
		hash := contentHash(chunk.Content)
		if idx.dedupe.Test(hash) {
			continue
		}
		idx.dedupe.Add(hash)
		if chunk.ID == "" {
			chunk.ID = uuid.New().String()
		}
		pending = append(pending, chunk)
	}
	if len(pending) == 0 {
		return nil
	}

	var toEmbed []*edugen.Chunk
	for _, chunk := range pending {
		if len(chunk.Embedding) == 0 {
			toEmbed = append(toEmbed, chunk)
		}
	}

	for start := 0; start < len(toEmbed); start += idx.batchSize {
		end := start + idx.batchSize
		if end > len(toEmbed) {
			end = len(toEmbed)
		}
		batch := toEmbed[start:end]

		if err := idx.limiter.Wait(ctx); err != nil {
			return edugen.Errorf(edugen.EUNAVAILABLE, "rate limit wait: %v", err)
		}

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Content
		}
		vectors, err := idx.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return err
		}
		if len(vectors) != len(batch) {
			return edugen.Errorf(edugen.EINTERNAL, "embedding count mismatch: got %d, want %d", len(vectors), len(batch))
		}
		for i, chunk := range batch {
			chunk.Embedding = vectors[i]
		}
	}

	idx.mu.Lock()
	idx.chunks = append(idx.chunks, pending...)
	idx.mu.Unlock()

	return nil
}

// Search embeds the query and returns up to limit chunks ordered by
// descending cosine similarity.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]edugen.SearchResult, error) {
	if query == "" {
		return nil, edugen.Errorf(edugen.EINVALID, "search query required")
	}
	if limit <= 0 {
		return nil, edugen.Errorf(edugen.EINVALID, "search limit must be positive")
	}

	idx.mu.RLock()
	n := len(idx.chunks)
	idx.mu.RUnlock()
	if n == 0 {
		return nil, nil
	}

	if err := idx.limiter.Wait(ctx); err != nil {
		return nil, edugen.Errorf(edugen.EUNAVAILABLE, "rate limit wait: %v", err)
	}
	qv, err := idx.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	results := make([]edugen.SearchResult, 0, len(idx.chunks))
	for _, chunk := range idx.chunks {
		results = append(results, edugen.SearchResult{
			Chunk: chunk,
			Score: cosineSimilarity(qv, chunk.Embedding),
		})
	}
	idx.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks)
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
