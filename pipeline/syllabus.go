package pipeline

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/fwojciec/edugen"
)

// SyllabusResult is the outcome of a syllabus run.
type SyllabusResult struct {
	Syllabus *edugen.Syllabus
	PDFPath  string
}

// Syllabus generates a course syllabus seeded by a summary of the
// uploaded artifact.
type Syllabus struct {
	ingester   Ingester
	summarizer edugen.Summarizer
	generator  edugen.SyllabusGenerator
	renderer   edugen.Renderer
	logger     *slog.Logger
}

// NewSyllabus creates a syllabus pipeline.
func NewSyllabus(ingester Ingester, summarizer edugen.Summarizer, generator edugen.SyllabusGenerator, renderer edugen.Renderer, logger *slog.Logger) *Syllabus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syllabus{
		ingester:   ingester,
		summarizer: summarizer,
		generator:  generator,
		renderer:   renderer,
		logger:     logger,
	}
}

// Run executes the syllabus flow: summarize the source artifact, then
// generate until a syllabus passes validation or the attempt budget
// runs out. A request arriving with a Summary skips summarization.
func (p *Syllabus) Run(ctx context.Context, req *edugen.SyllabusRequest) (*SyllabusResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	genReq := *req
	if genReq.Summary == "" && genReq.Source != "" {
		summary, err := p.summarize(ctx, genReq.Source, genReq.SourceType)
		if err != nil {
			return nil, err
		}
		genReq.Summary = summary
	}

	syllabus, err := retryGenerate(ctx, p.logger, "syllabus", func(ctx context.Context, attempt int) (*edugen.Syllabus, error) {
		syllabus, err := p.generator.GenerateSyllabus(ctx, &genReq)
		if err != nil {
			return nil, err
		}
		if err := syllabus.Validate(); err != nil {
			return nil, err
		}
		return syllabus, nil
	})
	if err != nil {
		return nil, err
	}

	result := &SyllabusResult{Syllabus: syllabus}
	path, err := p.renderer.RenderSyllabus(ctx, syllabus)
	if err != nil {
		p.logger.Error("syllabus render failed", "err", err)
		return result, nil
	}
	result.PDFPath = path
	return result, nil
}

// summarize condenses the source artifact into seed text. Images go
// straight to the multimodal summarizer; everything else is loaded as
// documents first.
func (p *Syllabus) summarize(ctx context.Context, source string, sourceType edugen.SourceType) (string, error) {
	if p.summarizer == nil {
		return "", edugen.Errorf(edugen.EINVALID, "the configured provider does not support source summarization")
	}
	if sourceType == edugen.SourceImage {
		data, err := os.ReadFile(source)
		if err != nil {
			return "", edugen.Errorf(edugen.ENOTFOUND, "read image: %v", err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(source))
		if mimeType == "" {
			mimeType = "image/png"
		}
		return p.summarizer.SummarizeImage(ctx, data, mimeType)
	}

	docs, err := p.ingester.Ingest(ctx, source, sourceType)
	if err != nil {
		return "", err
	}
	return p.summarizer.SummarizeText(ctx, edugen.FormatDocuments(docs))
}
