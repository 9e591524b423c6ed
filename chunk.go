package edugen

import (
	"context"
	"regexp"
	"strings"
)

// Chunk represents a slice of a document sized for embedding and retrieval.
type Chunk struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	Source     string    `json:"source"`
	Content    string    `json:"content"`
	Embedding  []float32 `json:"embedding,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// Embedder computes vector embeddings for text.
type Embedder interface {
	// EmbedDocuments embeds a batch of chunk contents.
	// The returned slice has one vector per input, in order.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a retrieval query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// SearchResult represents a retrieval match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// Retriever provides semantic search over an indexed set of chunks.
// Implementations are session-scoped: built for one generation run and
// discarded afterwards.
type Retriever interface {
	// Add indexes chunks, embedding any that lack vectors.
	Add(ctx context.Context, chunks []*Chunk) error

	// Search returns up to limit chunks ordered by relevance to query.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// headingRe matches markdown headings H1-H6 at the start of a line.
var headingRe = regexp.MustCompile(`(?m)^#{1,6}\s+.+$`)

// DefaultChunkSize is the target chunk size in characters.
const DefaultChunkSize = 2000

// SplitDocument splits a document into chunks for embedding. Markdown
// content is split at headings first so chunks follow the document's own
// structure; oversized segments are then split at paragraph boundaries.
// The returned chunks have no IDs or embeddings.
func SplitDocument(doc *Document, size int) []*Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	content := strings.TrimSpace(doc.Content)
	if content == "" {
		return nil
	}

	var segments []string
	for _, seg := range splitAtHeadings(content) {
		segments = append(segments, splitBySize(seg, size)...)
	}

	chunks := make([]*Chunk, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		chunks = append(chunks, &Chunk{
			DocumentID: doc.ID,
			Source:     doc.Source,
			Content:    seg,
		})
	}
	return chunks
}

// splitAtHeadings cuts markdown at each heading line. Content before the
// first heading forms its own segment.
func splitAtHeadings(content string) []string {
	locs := headingRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return []string{content}
	}

	var segments []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			segments = append(segments, content[prev:loc[0]])
		}
		prev = loc[0]
	}
	segments = append(segments, content[prev:])
	return segments
}

// splitBySize splits a segment larger than size at paragraph boundaries,
// falling back to a hard cut for single paragraphs that exceed the limit.
func splitBySize(segment string, size int) []string {
	if len(segment) <= size {
		return []string{segment}
	}

	paragraphs := strings.Split(segment, "\n\n")
	var out []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}

	for _, p := range paragraphs {
		if len(p) > size {
			flush()
			for len(p) > size {
				out = append(out, p[:size])
				p = p[size:]
			}
			if p != "" {
				out = append(out, p)
			}
			continue
		}
		if b.Len()+len(p)+2 > size {
			flush()
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}
	flush()

	return out
}
