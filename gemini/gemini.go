// Package gemini implements the model-facing interfaces using Google
// Gemini via google.golang.org/genai: artifact generators with
// schema-constrained JSON output, an embedder, a summarizer, a topic
// classifier, and a token counter.
package gemini

import (
	"context"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Default models. The flash tier is sufficient for structured generation
// and keeps per-attempt cost low, which matters with a 6-attempt loop.
const (
	defaultModel          = "gemini-2.5-flash"
	defaultEmbeddingModel = "gemini-embedding-001"
)

// generate performs a single GenerateContent call and returns the text of
// the response.
func generate(ctx context.Context, client *genai.Client, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", edugen.Errorf(edugen.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}
