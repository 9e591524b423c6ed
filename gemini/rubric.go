package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Ensure RubricGenerator implements edugen.RubricGenerator at compile time.
var _ edugen.RubricGenerator = (*RubricGenerator)(nil)

// RubricGenerator generates grading rubrics using Gemini.
type RubricGenerator struct {
	client *genai.Client
	parser edugen.RubricParser
	model  string
}

// RubricOption configures a RubricGenerator.
type RubricOption func(*RubricGenerator)

// WithRubricModel overrides the default model.
func WithRubricModel(model string) RubricOption {
	return func(g *RubricGenerator) { g.model = model }
}

// NewRubricGenerator creates a new RubricGenerator.
func NewRubricGenerator(client *genai.Client, parser edugen.RubricParser, opts ...RubricOption) *RubricGenerator {
	g := &RubricGenerator{client: client, parser: parser, model: defaultModel}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateRubric prompts Gemini with the request parameters and retrieved
// context, then parses the structured response. The returned rubric is
// unvalidated; the pipeline runs it through Rubric.Validate.
func (g *RubricGenerator) GenerateRubric(ctx context.Context, req *edugen.RubricRequest, contextText string) (*edugen.Rubric, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildRubricPrompt(req, contextText)
	raw, err := generate(ctx, g.client, g.model, prompt, BuildRubricConfig(req.PointScale))
	if err != nil {
		return nil, err
	}

	return g.parser.ParseRubric([]byte(raw))
}

// BuildRubricConfig returns the GenerateContentConfig for rubric calls.
func BuildRubricConfig(pointScale int) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: fmt.Sprintf("You are an experienced teacher creating grading rubrics. "+
					"Produce a rubric as JSON matching the response schema. "+
					"Every criterion must have exactly %d point levels, ordered from highest to lowest. "+
					"Base the criteria only on the provided learning standard and context.", pointScale),
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   rubricSchema(),
	}
}

// BuildRubricPrompt builds the user prompt containing the retrieved
// context and the rubric attributes.
func BuildRubricPrompt(req *edugen.RubricRequest, contextText string) string {
	var sb strings.Builder
	if contextText != "" {
		sb.WriteString("<context>\n")
		sb.WriteString(contextText)
		sb.WriteString("\n</context>\n\n")
	}
	fmt.Fprintf(&sb, "Grade Level: %s\n", req.GradeLevel)
	fmt.Fprintf(&sb, "Point Scale: %d\n", req.PointScale)
	fmt.Fprintf(&sb, "Standard: %s\n", req.Standard)
	fmt.Fprintf(&sb, "Language (YOU MUST RESPOND IN THIS LANGUAGE): %s\n", req.Lang)
	return sb.String()
}
