package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/edugen"
)

// RubricResult is the outcome of a rubric run. PDFPath is empty when
// rendering failed; the rubric itself is still returned.
type RubricResult struct {
	Rubric  *edugen.Rubric
	PDFPath string
}

// Rubric generates a grading rubric from source material.
type Rubric struct {
	ingester     Ingester
	newRetriever RetrieverFactory
	generator    edugen.RubricGenerator
	renderer     edugen.Renderer
	logger       *slog.Logger
	topK         int
}

// RubricOption configures a Rubric pipeline.
type RubricOption func(*Rubric)

// WithRubricTopK sets the number of context chunks retrieved per attempt.
func WithRubricTopK(k int) RubricOption {
	return func(p *Rubric) {
		if k > 0 {
			p.topK = k
		}
	}
}

// NewRubric creates a rubric pipeline.
func NewRubric(ingester Ingester, newRetriever RetrieverFactory, generator edugen.RubricGenerator, renderer edugen.Renderer, logger *slog.Logger, opts ...RubricOption) *Rubric {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Rubric{
		ingester:     ingester,
		newRetriever: newRetriever,
		generator:    generator,
		renderer:     renderer,
		logger:       logger,
		topK:         DefaultTopK,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the rubric flow: load documents from the source, index
// them in a fresh ephemeral index, then retrieve and generate until a
// rubric passes validation or the attempt budget runs out.
func (p *Rubric) Run(ctx context.Context, req *edugen.RubricRequest, source string, sourceType edugen.SourceType) (*RubricResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	docs, err := p.ingester.Ingest(ctx, source, sourceType)
	if err != nil {
		return nil, err
	}

	retriever := p.newRetriever()
	var chunks []*edugen.Chunk
	for _, doc := range docs {
		chunks = append(chunks, edugen.SplitDocument(doc, edugen.DefaultChunkSize)...)
	}
	if err := retriever.Add(ctx, chunks); err != nil {
		return nil, err
	}
	p.logger.Debug("indexed source material", "documents", len(docs), "chunks", len(chunks))

	rubric, err := retryGenerate(ctx, p.logger, "rubric", func(ctx context.Context, attempt int) (*edugen.Rubric, error) {
		results, err := retriever.Search(ctx, req.Standard, p.topK)
		if err != nil {
			return nil, err
		}

		rubric, err := p.generator.GenerateRubric(ctx, req, edugen.FormatContext(results))
		if err != nil {
			return nil, err
		}
		if err := rubric.Validate(req.PointScale); err != nil {
			return nil, err
		}
		return rubric, nil
	})
	if err != nil {
		return nil, err
	}

	result := &RubricResult{Rubric: rubric}
	path, err := p.renderer.RenderRubric(ctx, rubric, req.PointScale)
	if err != nil {
		p.logger.Error("rubric render failed", "err", err)
		return result, nil
	}
	result.PDFPath = path
	return result, nil
}
