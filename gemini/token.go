package gemini

import (
	"context"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ edugen.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally using the Gemini tokenizer. The
// pipelines use it to report how much context a run fed the model.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
