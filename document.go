package edugen

import (
	"context"
	"time"
)

// SourceType identifies the kind of artifact a document was loaded from.
type SourceType string

// SourceType constants cover the artifact kinds accepted by the pipelines.
const (
	SourceText    SourceType = "text"
	SourceFile    SourceType = "file"
	SourceURL     SourceType = "url"
	SourceImage   SourceType = "img"
	SourceYouTube SourceType = "youtube_url"
)

// Document represents a loaded piece of source material: a file, a web
// page, or a transcript. Documents are transient; they live for the
// duration of a single generation run.
type Document struct {
	ID          string     `json:"id"`
	Source      string     `json:"source"` // file path or URL
	SourceType  SourceType `json:"sourceType"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentHash string     `json:"contentHash"`
	Position    int        `json:"position"`
	LoadedAt    time.Time  `json:"loadedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentLoader loads documents from a source reference.
type DocumentLoader interface {
	// Load reads the source and returns one or more documents.
	// Returns EINVALID if the source type is not supported.
	Load(ctx context.Context, source string) ([]*Document, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch downloads the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with
	// boilerplate (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown suitable for chunking and prompting.
	Convert(html string) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
