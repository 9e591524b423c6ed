package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of edugen.Renderer.
type Renderer struct {
	RenderRubricFn   func(ctx context.Context, rubric *edugen.Rubric, pointScale int) (string, error)
	RenderSyllabusFn func(ctx context.Context, syllabus *edugen.Syllabus) (string, error)
	RenderNotesFn    func(ctx context.Context, notes *edugen.Notes, format edugen.ExportFormat) (string, error)
}

func (r *Renderer) RenderRubric(ctx context.Context, rubric *edugen.Rubric, pointScale int) (string, error) {
	return r.RenderRubricFn(ctx, rubric, pointScale)
}

func (r *Renderer) RenderSyllabus(ctx context.Context, syllabus *edugen.Syllabus) (string, error) {
	return r.RenderSyllabusFn(ctx, syllabus)
}

func (r *Renderer) RenderNotes(ctx context.Context, notes *edugen.Notes, format edugen.ExportFormat) (string, error) {
	return r.RenderNotesFn(ctx, notes, format)
}
