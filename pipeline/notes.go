package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/edugen"
)

// NotesResult is the outcome of a notes run.
type NotesResult struct {
	Notes      *edugen.Notes
	OutputPath string
}

// Notes generates study notes from loaded content. Unlike the rubric
// flow, notes work from the full loaded text rather than retrieval.
type Notes struct {
	ingester  Ingester
	generator edugen.NotesGenerator
	renderer  edugen.Renderer
	counter   edugen.TokenCounter
	logger    *slog.Logger
}

// NewNotes creates a notes pipeline. The token counter is optional and
// is only used to log the prompt size.
func NewNotes(ingester Ingester, generator edugen.NotesGenerator, renderer edugen.Renderer, counter edugen.TokenCounter, logger *slog.Logger) *Notes {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notes{
		ingester:  ingester,
		generator: generator,
		renderer:  renderer,
		counter:   counter,
		logger:    logger,
	}
}

// Run executes the notes flow: load content, generate until the notes
// pass validation or the attempt budget runs out, then export in the
// requested format.
func (p *Notes) Run(ctx context.Context, req *edugen.NotesRequest, source string, sourceType edugen.SourceType) (*NotesResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	docs, err := p.ingester.Ingest(ctx, source, sourceType)
	if err != nil {
		return nil, err
	}
	content := edugen.FormatDocuments(docs)

	if p.counter != nil {
		if tokens, err := p.counter.CountTokens(ctx, content); err == nil {
			p.logger.Debug("notes content loaded", "tokens", tokens)
		}
	}

	notes, err := retryGenerate(ctx, p.logger, "notes", func(ctx context.Context, attempt int) (*edugen.Notes, error) {
		notes, err := p.generator.GenerateNotes(ctx, req, content)
		if err != nil {
			return nil, err
		}
		if err := notes.Validate(); err != nil {
			return nil, err
		}
		return notes, nil
	})
	if err != nil {
		return nil, err
	}

	result := &NotesResult{Notes: notes}
	path, err := p.renderer.RenderNotes(ctx, notes, req.Format)
	if err != nil {
		p.logger.Error("notes render failed", "err", err)
		return result, nil
	}
	result.OutputPath = path
	return result, nil
}
