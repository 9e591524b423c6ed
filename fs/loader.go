// Package fs loads source documents from the local filesystem.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/edugen"
)

// Ensure Loader implements edugen.DocumentLoader at compile time.
var _ edugen.DocumentLoader = (*Loader)(nil)

// Loader reads local files into documents. Plain text and markdown are
// read verbatim, CSV rows are flattened to text, and HTML is run
// through the extractor and converter used for web pages.
type Loader struct {
	extractor edugen.Extractor
	converter edugen.Converter
}

// NewLoader creates a new Loader. The extractor and converter handle
// HTML files and may be nil if HTML sources are not expected.
func NewLoader(extractor edugen.Extractor, converter edugen.Converter) *Loader {
	return &Loader{extractor: extractor, converter: converter}
}

// Load reads the file at source into a single document.
func (l *Loader) Load(ctx context.Context, source string) ([]*edugen.Document, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, edugen.Errorf(edugen.ENOTFOUND, "file not found: %s", source)
		}
		return nil, edugen.Errorf(edugen.EINTERNAL, "read file: %v", err)
	}

	var title, content string
	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".txt", ".md", ".markdown":
		content = string(data)
	case ".csv":
		content, err = flattenCSV(data)
		if err != nil {
			return nil, edugen.Errorf(edugen.EINVALID, "parse csv: %v", err)
		}
	case ".html", ".htm":
		title, content, err = l.convertHTML(string(data))
		if err != nil {
			return nil, err
		}
	default:
		return nil, edugen.Errorf(edugen.EINVALID, "unsupported file type %q", ext)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, edugen.Errorf(edugen.EINVALID, "file is empty: %s", source)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}

	doc := &edugen.Document{
		ID:          uuid.New().String(),
		Source:      source,
		SourceType:  edugen.SourceFile,
		Title:       title,
		Content:     content,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(content)),
		LoadedAt:    time.Now(),
	}
	return []*edugen.Document{doc}, nil
}

func (l *Loader) convertHTML(html string) (title, content string, err error) {
	if l.extractor == nil || l.converter == nil {
		return "", "", edugen.Errorf(edugen.EINVALID, "html loading not configured")
	}
	res, err := l.extractor.Extract(html)
	if err != nil {
		return "", "", err
	}
	md, err := l.converter.Convert(res.ContentHTML)
	if err != nil {
		return "", "", err
	}
	return res.Title, md, nil
}

// flattenCSV renders each record as "header: value" lines so the model
// sees column context next to every cell.
func flattenCSV(data []byte) (string, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", nil
	}

	header := records[0]
	var b strings.Builder
	for _, record := range records[1:] {
		for i, field := range record {
			if i < len(header) {
				b.WriteString(header[i])
				b.WriteString(": ")
			}
			b.WriteString(field)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(records) == 1 {
		b.WriteString(strings.Join(header, ", "))
		b.WriteString("\n")
	}
	return b.String(), nil
}
