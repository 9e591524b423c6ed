package edugen

import "context"

// Renderer turns generated artifacts into distributable documents and
// returns the path of the produced file. Implementations log rendering
// failures rather than failing the run; callers check that the returned
// path exists before reporting success.
type Renderer interface {
	// RenderRubric renders a rubric to a print-ready document.
	RenderRubric(ctx context.Context, rubric *Rubric, pointScale int) (path string, err error)

	// RenderSyllabus renders a syllabus to a print-ready document.
	RenderSyllabus(ctx context.Context, syllabus *Syllabus) (path string, err error)

	// RenderNotes exports notes in the requested format.
	RenderNotes(ctx context.Context, notes *Notes, format ExportFormat) (path string, err error)
}
