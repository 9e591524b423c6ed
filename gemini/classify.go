package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Ensure Classifier implements edugen.Classifier at compile time.
var _ edugen.Classifier = (*Classifier)(nil)

// Classifier assigns a course type to a topic using Gemini.
type Classifier struct {
	client *genai.Client
	model  string
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *genai.Client) *Classifier {
	return &Classifier{client: client, model: defaultModel}
}

// ClassifyTopic returns the course type for a topic.
func (c *Classifier) ClassifyTopic(ctx context.Context, topic string) (edugen.CourseType, error) {
	if strings.TrimSpace(topic) == "" {
		return "", edugen.Errorf(edugen.EINVALID, "topic required")
	}

	raw, err := generate(ctx, c.client, c.model, "Topic: "+topic, BuildClassifyConfig())
	if err != nil {
		return "", err
	}

	ct := edugen.CourseType(strings.TrimSpace(raw))
	if !ct.Valid() {
		return "", edugen.Errorf(edugen.EINTERNAL, "model returned unknown course type %q", raw)
	}
	return ct, nil
}

// BuildClassifyConfig returns the GenerateContentConfig for classification
// calls. The response is constrained to the known course types.
func BuildClassifyConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	types := edugen.CourseTypes()
	enum := make([]string, len(types))
	for i, t := range types {
		enum[i] = string(t)
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Classify the topic into exactly one of the listed course types. Respond with the course type only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "text/x.enum",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeString,
			Enum: enum,
		},
	}
}
