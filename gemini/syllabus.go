package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Ensure SyllabusGenerator implements edugen.SyllabusGenerator at compile time.
var _ edugen.SyllabusGenerator = (*SyllabusGenerator)(nil)

// SyllabusGenerator generates course syllabi using Gemini.
type SyllabusGenerator struct {
	client *genai.Client
	parser edugen.SyllabusParser
	model  string
}

// NewSyllabusGenerator creates a new SyllabusGenerator.
func NewSyllabusGenerator(client *genai.Client, parser edugen.SyllabusParser) *SyllabusGenerator {
	return &SyllabusGenerator{client: client, parser: parser, model: defaultModel}
}

// GenerateSyllabus prompts Gemini with the course metadata and the
// artifact summary, then parses the structured response.
func (g *SyllabusGenerator) GenerateSyllabus(ctx context.Context, req *edugen.SyllabusRequest) (*edugen.Syllabus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := generate(ctx, g.client, g.model, BuildSyllabusPrompt(req), BuildSyllabusConfig())
	if err != nil {
		return nil, err
	}

	return g.parser.ParseSyllabus([]byte(raw))
}

// BuildSyllabusConfig returns the GenerateContentConfig for syllabus calls.
func BuildSyllabusConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an experienced teacher writing a course syllabus. " +
					"Produce a syllabus as JSON matching the response schema. " +
					"Build the unit schedule from the course summary, spreading topics " +
					"across the stated number of time units starting from the start date.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   syllabusSchema(),
	}
}

// BuildSyllabusPrompt builds the user prompt from the course metadata and
// the summary of the uploaded artifact.
func BuildSyllabusPrompt(req *edugen.SyllabusRequest) string {
	var sb strings.Builder
	if req.Summary != "" {
		sb.WriteString("<course_summary>\n")
		sb.WriteString(req.Summary)
		sb.WriteString("\n</course_summary>\n\n")
	}
	fmt.Fprintf(&sb, "Grade Level: %s\n", req.GradeLevel)
	fmt.Fprintf(&sb, "Course: %s\n", req.Course)
	fmt.Fprintf(&sb, "Instructor: %s %s\n", req.InstructorTitle, req.InstructorName)
	fmt.Fprintf(&sb, "Duration: %d %s(s)\n", req.UnitTimeValue, req.UnitTime)
	fmt.Fprintf(&sb, "Start Date: %s\n", req.StartDate)
	fmt.Fprintf(&sb, "Assessment Methods: %s\n", req.AssessmentMethods)
	fmt.Fprintf(&sb, "Grading Scale: %s\n", req.GradingScale)
	fmt.Fprintf(&sb, "Language (YOU MUST RESPOND IN THIS LANGUAGE): %s\n", req.Lang)
	return sb.String()
}
