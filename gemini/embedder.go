package gemini

import (
	"context"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Ensure Embedder implements edugen.Embedder at compile time.
var _ edugen.Embedder = (*Embedder)(nil)

// Embedder computes vector embeddings using the Gemini embedding model.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client, model: defaultEmbeddingModel}
}

// EmbedDocuments embeds a batch of chunk contents in a single API call.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, edugen.Errorf(edugen.EINTERNAL, "gemini returned %d embeddings for %d inputs", embeddingCount(resp), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for i, emb := range resp.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// EmbedQuery embeds a retrieval query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func embeddingCount(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}
