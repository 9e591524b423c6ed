package openai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fwojciec/edugen"
)

// Ensure Embedder implements edugen.Embedder at compile time.
var _ edugen.Embedder = (*Embedder)(nil)

// Embedder computes embeddings using the OpenAI embeddings API.
type Embedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// EmbedderOption configures an Embedder.
type EmbedderOption func(*Embedder)

// WithEmbeddingModel overrides the default embedding model.
func WithEmbeddingModel(model string) EmbedderOption {
	return func(e *Embedder) { e.model = openai.EmbeddingModel(model) }
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *openai.Client, opts ...EmbedderOption) *Embedder {
	e := &Embedder{client: client, model: openai.EmbeddingModel(defaultEmbeddingModel)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EmbedDocuments embeds a batch of chunk contents in one request.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if e.client == nil {
		return nil, edugen.Errorf(edugen.EINTERNAL, "openai client not configured")
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, edugen.Errorf(edugen.EUNAVAILABLE, "openai embeddings: %v", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, edugen.Errorf(edugen.EINTERNAL, "embedding count mismatch: got %d, want %d", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

// EmbedQuery embeds a retrieval query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, edugen.Errorf(edugen.EINTERNAL, "expected one embedding, got %d", len(vectors))
	}
	return vectors[0], nil
}
