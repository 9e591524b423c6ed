package memindex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/memindex"
	"github.com/fwojciec/edugen/mock"
)

func TestIndex_Add(t *testing.T) {
	t.Parallel()

	t.Run("embeds and indexes chunks", func(t *testing.T) {
		t.Parallel()

		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				vectors := make([][]float32, len(texts))
				for i := range texts {
					vectors[i] = []float32{1, 0, 0}
				}
				return vectors, nil
			},
		}
		idx := memindex.NewIndex(embedder, memindex.WithEmbedRPS(1000))

		chunks := []*edugen.Chunk{
			{DocumentID: "d1", Content: "photosynthesis overview"},
			{DocumentID: "d1", Content: "light-dependent reactions"},
		}
		err := idx.Add(context.Background(), chunks)
		require.NoError(t, err)
		assert.Equal(t, 2, idx.Len())
		assert.NotEmpty(t, chunks[0].ID)
		assert.Equal(t, []float32{1, 0, 0}, chunks[0].Embedding)
	})

	t.Run("skips duplicate content", func(t *testing.T) {
		t.Parallel()

		var embedded int
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				embedded += len(texts)
				vectors := make([][]float32, len(texts))
				for i := range texts {
					vectors[i] = []float32{1}
				}
				return vectors, nil
			},
		}
		idx := memindex.NewIndex(embedder, memindex.WithEmbedRPS(1000))

		err := idx.Add(context.Background(), []*edugen.Chunk{
			{DocumentID: "d1", Content: "same text"},
			{DocumentID: "d2", Content: "same text"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Len())
		assert.Equal(t, 1, embedded)
	})

	t.Run("preserves existing embeddings", func(t *testing.T) {
		t.Parallel()

		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				t.Fatal("should not embed pre-embedded chunks")
				return nil, nil
			},
		}
		idx := memindex.NewIndex(embedder, memindex.WithEmbedRPS(1000))

		err := idx.Add(context.Background(), []*edugen.Chunk{
			{DocumentID: "d1", Content: "already embedded", Embedding: []float32{0.5, 0.5}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("validates chunks", func(t *testing.T) {
		t.Parallel()

		idx := memindex.NewIndex(&mock.Embedder{}, memindex.WithEmbedRPS(1000))

		err := idx.Add(context.Background(), []*edugen.Chunk{
			{DocumentID: "", Content: "orphan"},
		})
		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("batches embedding requests", func(t *testing.T) {
		t.Parallel()

		var batches [][]string
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				batches = append(batches, texts)
				vectors := make([][]float32, len(texts))
				for i := range texts {
					vectors[i] = []float32{1}
				}
				return vectors, nil
			},
		}
		idx := memindex.NewIndex(embedder, memindex.WithEmbedRPS(1000), memindex.WithBatchSize(2))

		chunks := []*edugen.Chunk{
			{DocumentID: "d1", Content: "one"},
			{DocumentID: "d1", Content: "two"},
			{DocumentID: "d1", Content: "three"},
		}
		err := idx.Add(context.Background(), chunks)
		require.NoError(t, err)
		require.Len(t, batches, 2)
		assert.Len(t, batches[0], 2)
		assert.Len(t, batches[1], 1)
	})
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	newIndex := func(t *testing.T, queryVec []float32) *memindex.Index {
		t.Helper()
		vectors := map[string][]float32{
			"cell structure": {1, 0},
			"cell division":  {0.9, 0.1},
			"french grammar": {0, 1},
			"roman empire":   {0.1, 0.9},
		}
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				out := make([][]float32, len(texts))
				for i, text := range texts {
					out[i] = vectors[text]
				}
				return out, nil
			},
			EmbedQueryFn: func(ctx context.Context, text string) ([]float32, error) {
				return queryVec, nil
			},
		}
		idx := memindex.NewIndex(embedder, memindex.WithEmbedRPS(1000))
		err := idx.Add(context.Background(), []*edugen.Chunk{
			{DocumentID: "d1", Content: "cell structure"},
			{DocumentID: "d1", Content: "cell division"},
			{DocumentID: "d2", Content: "french grammar"},
			{DocumentID: "d3", Content: "roman empire"},
		})
		require.NoError(t, err)
		return idx
	}

	t.Run("orders by similarity", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []float32{1, 0})
		results, err := idx.Search(context.Background(), "biology", 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "cell structure", results[0].Chunk.Content)
		assert.Equal(t, "cell division", results[1].Chunk.Content)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []float32{1, 0})
		results, err := idx.Search(context.Background(), "biology", 3)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("empty index returns no results", func(t *testing.T) {
		t.Parallel()

		idx := memindex.NewIndex(&mock.Embedder{}, memindex.WithEmbedRPS(1000))
		results, err := idx.Search(context.Background(), "anything", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty query is invalid", func(t *testing.T) {
		t.Parallel()

		idx := memindex.NewIndex(&mock.Embedder{}, memindex.WithEmbedRPS(1000))
		_, err := idx.Search(context.Background(), "", 5)
		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("non-positive limit is invalid", func(t *testing.T) {
		t.Parallel()

		idx := memindex.NewIndex(&mock.Embedder{}, memindex.WithEmbedRPS(1000))
		_, err := idx.Search(context.Background(), "anything", 0)
		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})
}
