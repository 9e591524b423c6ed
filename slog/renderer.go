package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/edugen"
)

// Ensure LoggingRenderer implements edugen.Renderer.
var _ edugen.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with render logging.
type LoggingRenderer struct {
	next   edugen.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next edugen.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// RenderRubric delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderRubric(ctx context.Context, rubric *edugen.Rubric, pointScale int) (path string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render rubric",
			"path", path,
			"criteria", len(rubric.Criteria),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderRubric(ctx, rubric, pointScale)
}

// RenderSyllabus delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderSyllabus(ctx context.Context, syllabus *edugen.Syllabus) (path string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render syllabus",
			"path", path,
			"units", len(syllabus.Schedule),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderSyllabus(ctx, syllabus)
}

// RenderNotes delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderNotes(ctx context.Context, notes *edugen.Notes, format edugen.ExportFormat) (path string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render notes",
			"path", path,
			"format", string(format),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderNotes(ctx, notes, format)
}
