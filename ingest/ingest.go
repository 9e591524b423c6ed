// Package ingest routes source references to the loader that can turn
// them into documents: inline text, local files, web pages, and video
// transcripts.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/edugen"
)

// Ingester turns a typed source reference into documents.
type Ingester struct {
	files     edugen.DocumentLoader
	videos    edugen.DocumentLoader
	fetcher   edugen.Fetcher
	extractor edugen.Extractor
	fallbacks []edugen.Extractor
	converter edugen.Converter
	logger    *slog.Logger
}

// Config holds the collaborators an Ingester routes between. Fallbacks
// are optional extractors tried in order when the primary one finds no
// content; the other fields are required for the source types they
// serve and may be nil when those types are not used.
type Config struct {
	Files     edugen.DocumentLoader
	Videos    edugen.DocumentLoader
	Fetcher   edugen.Fetcher
	Extractor edugen.Extractor
	Fallbacks []edugen.Extractor
	Converter edugen.Converter
	Logger    *slog.Logger
}

// NewIngester creates a new Ingester.
func NewIngester(cfg Config) *Ingester {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{
		files:     cfg.Files,
		videos:    cfg.Videos,
		fetcher:   cfg.Fetcher,
		extractor: cfg.Extractor,
		fallbacks: cfg.Fallbacks,
		converter: cfg.Converter,
		logger:    logger,
	}
}

// Ingest loads documents from source according to its type. Image
// sources carry no indexable text and are rejected; they go through
// the summarizer path instead.
func (i *Ingester) Ingest(ctx context.Context, source string, sourceType edugen.SourceType) ([]*edugen.Document, error) {
	switch sourceType {
	case edugen.SourceText:
		return i.ingestText(source)
	case edugen.SourceFile:
		if i.files == nil {
			return nil, edugen.Errorf(edugen.EINVALID, "file loading not configured")
		}
		return i.files.Load(ctx, source)
	case edugen.SourceYouTube:
		if i.videos == nil {
			return nil, edugen.Errorf(edugen.EINVALID, "video loading not configured")
		}
		return i.videos.Load(ctx, source)
	case edugen.SourceURL:
		return i.ingestURL(ctx, source)
	case edugen.SourceImage:
		return nil, edugen.Errorf(edugen.EINVALID, "image sources cannot be indexed")
	default:
		return nil, edugen.Errorf(edugen.EINVALID, "unsupported source type %q", sourceType)
	}
}

func (i *Ingester) ingestText(text string) ([]*edugen.Document, error) {
	if text == "" {
		return nil, edugen.Errorf(edugen.EINVALID, "text source is empty")
	}
	doc := &edugen.Document{
		ID:          uuid.New().String(),
		Source:      "inline",
		SourceType:  edugen.SourceText,
		Content:     text,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		LoadedAt:    time.Now(),
	}
	return []*edugen.Document{doc}, nil
}

func (i *Ingester) ingestURL(ctx context.Context, url string) ([]*edugen.Document, error) {
	if i.fetcher == nil || i.extractor == nil || i.converter == nil {
		return nil, edugen.Errorf(edugen.EINVALID, "url loading not configured")
	}

	html, err := FetchWithRetry(ctx, url, i.fetcher.Fetch, i.logger)
	if err != nil {
		return nil, err
	}

	res, err := i.extractor.Extract(html)
	for _, fallback := range i.fallbacks {
		if err == nil && res.ContentHTML != "" {
			break
		}
		i.logger.Debug("extraction found no content, trying fallback", "url", url, "err", err)
		res, err = fallback.Extract(html)
	}
	if err != nil {
		return nil, err
	}
	if res.ContentHTML == "" {
		return nil, edugen.Errorf(edugen.ENOTFOUND, "no content extracted from %s", url)
	}

	content, err := i.converter.Convert(res.ContentHTML)
	if err != nil {
		return nil, err
	}

	doc := &edugen.Document{
		ID:          uuid.New().String(),
		Source:      url,
		SourceType:  edugen.SourceURL,
		Title:       res.Title,
		Content:     content,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(content)),
		LoadedAt:    time.Now(),
	}
	return []*edugen.Document{doc}, nil
}
