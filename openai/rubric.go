package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/gemini"
)

// Ensure RubricGenerator implements edugen.RubricGenerator at compile time.
var _ edugen.RubricGenerator = (*RubricGenerator)(nil)

// RubricGenerator generates grading rubrics using OpenAI chat completions.
type RubricGenerator struct {
	client *openai.Client
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
func NewRubricGenerator(client *openai.Client, parser edugen.RubricParser, opts ...RubricOption) *RubricGenerator {
	g := &RubricGenerator{client: client, parser: parser, model: defaultModel}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateRubric prompts the model with the request parameters and
// retrieved context, then parses the structured response. The returned
// rubric is unvalidated; the pipeline runs it through Rubric.Validate.
func (g *RubricGenerator) GenerateRubric(ctx context.Context, req *edugen.RubricRequest, contextText string) (*edugen.Rubric, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := chat(ctx, g.client, g.model, rubricSystemPrompt(req.PointScale), gemini.BuildRubricPrompt(req, contextText), 0.4)
	if err != nil {
		return nil, err
	}

	return g.parser.ParseRubric([]byte(raw))
}

// rubricSystemPrompt spells out the response shape in full since the
// chat API cannot enforce a schema server-side.
func rubricSystemPrompt(pointScale int) string {
	return fmt.Sprintf("You are an experienced teacher creating grading rubrics. "+
		"Respond with a single JSON object with keys: \"title\" (string), "+
		"\"grade_level\" (string), \"criterias\" (array of objects with "+
		"\"criteria\" (string) and \"criteria_description\" (array of objects "+
		"with \"points\" (string) and \"description\" (array of strings))), "+
		"and \"feedback\" (string). "+
		"Every criterion must have exactly %d point levels, ordered from highest to lowest. "+
		"Base the criteria only on the provided learning standard and context.", pointScale)
}
