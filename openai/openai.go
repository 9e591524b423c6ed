// Package openai implements model interfaces using the OpenAI API.
// It is an alternative to the gemini package, selected through
// configuration. OpenAI has no server-side response schemas, so the
// generators rely on JSON-object response format plus prompt
// instructions and leave structural validation to the parser.
package openai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fwojciec/edugen"
)

const (
	defaultModel          = "gpt-4o-mini"
	defaultEmbeddingModel = string(openai.SmallEmbedding3)
	defaultMaxTokens      = 4096
)

// chat sends a system and user message pair and returns the first
// choice's content. The response format is constrained to a JSON object.
func chat(ctx context.Context, client *openai.Client, model, system, user string, temperature float32) (string, error) {
	if client == nil {
		return "", edugen.Errorf(edugen.EINTERNAL, "openai client not configured")
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   defaultMaxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", edugen.Errorf(edugen.EUNAVAILABLE, "openai chat completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", edugen.Errorf(edugen.EUNAVAILABLE, "openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
