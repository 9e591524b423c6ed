package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.RubricGenerator = (*RubricGenerator)(nil)

// RubricGenerator is a mock implementation of edugen.RubricGenerator.
type RubricGenerator struct {
	GenerateRubricFn func(ctx context.Context, req *edugen.RubricRequest, contextText string) (*edugen.Rubric, error)
}

func (g *RubricGenerator) GenerateRubric(ctx context.Context, req *edugen.RubricRequest, contextText string) (*edugen.Rubric, error) {
	return g.GenerateRubricFn(ctx, req, contextText)
}

var _ edugen.SyllabusGenerator = (*SyllabusGenerator)(nil)

// SyllabusGenerator is a mock implementation of edugen.SyllabusGenerator.
type SyllabusGenerator struct {
	GenerateSyllabusFn func(ctx context.Context, req *edugen.SyllabusRequest) (*edugen.Syllabus, error)
}

func (g *SyllabusGenerator) GenerateSyllabus(ctx context.Context, req *edugen.SyllabusRequest) (*edugen.Syllabus, error) {
	return g.GenerateSyllabusFn(ctx, req)
}

var _ edugen.NotesGenerator = (*NotesGenerator)(nil)

// NotesGenerator is a mock implementation of edugen.NotesGenerator.
type NotesGenerator struct {
	GenerateNotesFn func(ctx context.Context, req *edugen.NotesRequest, content string) (*edugen.Notes, error)
}

func (g *NotesGenerator) GenerateNotes(ctx context.Context, req *edugen.NotesRequest, content string) (*edugen.Notes, error) {
	return g.GenerateNotesFn(ctx, req, content)
}
