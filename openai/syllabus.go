package openai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/gemini"
)

// Ensure SyllabusGenerator implements edugen.SyllabusGenerator at compile time.
var _ edugen.SyllabusGenerator = (*SyllabusGenerator)(nil)

// SyllabusGenerator generates course syllabi using OpenAI chat completions.
type SyllabusGenerator struct {
	client *openai.Client
	parser edugen.SyllabusParser
	model  string
}

// NewSyllabusGenerator creates a new SyllabusGenerator.
func NewSyllabusGenerator(client *openai.Client, parser edugen.SyllabusParser) *SyllabusGenerator {
	return &SyllabusGenerator{client: client, parser: parser, model: defaultModel}
}

// GenerateSyllabus prompts the model with the course metadata and the
// artifact summary, then parses the structured response.
func (g *SyllabusGenerator) GenerateSyllabus(ctx context.Context, req *edugen.SyllabusRequest) (*edugen.Syllabus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := chat(ctx, g.client, g.model, syllabusSystemPrompt(), gemini.BuildSyllabusPrompt(req), 0.4)
	if err != nil {
		return nil, err
	}

	return g.parser.ParseSyllabus([]byte(raw))
}

func syllabusSystemPrompt() string {
	return "You are an experienced teacher writing a course syllabus. " +
		"Respond with a single JSON object with keys: \"course_title\", " +
		"\"grade_level\", \"instructor\", \"overview\" (strings), " +
		"\"objectives\", \"required_items\", \"policies\" (arrays of strings), " +
		"\"grade_components\" (array of objects with \"component\" and \"weight\" " +
		"strings), and \"schedule\" (array of objects with \"unit\", \"topic\", " +
		"and \"timing\" strings). " +
		"Build the unit schedule from the course summary, spreading topics " +
		"across the stated number of time units starting from the start date."
}
