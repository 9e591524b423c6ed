package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Ensure Summarizer implements edugen.Summarizer at compile time.
var _ edugen.Summarizer = (*Summarizer)(nil)

// Summarizer condenses uploaded artifacts into the text summaries that
// seed syllabus generation. Images go through Gemini's multimodal input.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client, model: defaultModel}
}

const summaryInstruction = "Summarize the provided course material for a teacher " +
	"planning a course: main topics, their order, and any stated goals or " +
	"prerequisites. Keep the summary under 400 words."

// SummarizeText summarizes plain or markdown text.
func (s *Summarizer) SummarizeText(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", edugen.Errorf(edugen.EINVALID, "text required")
	}

	return generate(ctx, s.client, s.model, text, summaryConfig())
}

// SummarizeImage summarizes an image given its raw bytes and MIME type.
func (s *Summarizer) SummarizeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", edugen.Errorf(edugen.EINVALID, "image data required")
	}
	if mimeType == "" {
		return "", edugen.Errorf(edugen.EINVALID, "image MIME type required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}},
				{Text: "Describe and summarize the course material shown in this image."},
			},
		}},
		summaryConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", edugen.Errorf(edugen.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

func summaryConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: summaryInstruction}},
		},
		Temperature: &temp,
	}
}
