package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/edugen"
	"google.golang.org/genai"
)

// Ensure NotesGenerator implements edugen.NotesGenerator at compile time.
var _ edugen.NotesGenerator = (*NotesGenerator)(nil)

// NotesGenerator generates study notes using Gemini.
type NotesGenerator struct {
	client *genai.Client
	parser edugen.NotesParser
	model  string
}

// NewNotesGenerator creates a new NotesGenerator.
func NewNotesGenerator(client *genai.Client, parser edugen.NotesParser) *NotesGenerator {
	return &NotesGenerator{client: client, parser: parser, model: defaultModel}
}

// GenerateNotes prompts Gemini with the source content and parses the
// structured response.
func (g *NotesGenerator) GenerateNotes(ctx context.Context, req *edugen.NotesRequest, content string) (*edugen.Notes, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, edugen.Errorf(edugen.EINVALID, "notes content required")
	}

	raw, err := generate(ctx, g.client, g.model, BuildNotesPrompt(req, content), BuildNotesConfig(req.Structure))
	if err != nil {
		return nil, err
	}

	return g.parser.ParseNotes([]byte(raw))
}

// BuildNotesConfig returns the GenerateContentConfig for notes calls.
func BuildNotesConfig(structure edugen.NotesStructure) *genai.GenerateContentConfig {
	temp := float32(0.3)
	var shape string
	switch structure {
	case edugen.NotesParagraph:
		shape = "Write each section as flowing paragraphs."
	case edugen.NotesTable:
		shape = "Write each section as a markdown table of term and explanation."
	default:
		shape = "Write each section as concise bullet points."
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You create study notes from source material. " +
					"Produce notes as JSON matching the response schema. " + shape,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   notesSchema(),
	}
}

// BuildNotesPrompt builds the user prompt from the source content.
func BuildNotesPrompt(req *edugen.NotesRequest, content string) string {
	var sb strings.Builder
	sb.WriteString("<content>\n")
	sb.WriteString(content)
	sb.WriteString("\n</content>\n\n")
	if req.FocusTopic != "" {
		fmt.Fprintf(&sb, "Focus Topic: %s\n", req.FocusTopic)
	}
	if req.Lang != "" {
		fmt.Fprintf(&sb, "Language (YOU MUST RESPOND IN THIS LANGUAGE): %s\n", req.Lang)
	}
	return sb.String()
}
