package edugen

import "strings"

// FormatContext formats retrieved search results for inclusion in a
// prompt. Each chunk is introduced by its source so the model can cite
// where material came from. Chunks are separated by blank lines.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		header := r.Chunk.Source
		if header == "" {
			header = r.Chunk.DocumentID
		}
		parts = append(parts, "## Source: "+header+"\n"+r.Chunk.Content)
	}

	return strings.Join(parts, "\n\n")
}

// FormatDocuments formats whole documents for display or for prompts
// that take full-document context. Uses title if available, falls back
// to the source reference.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.Source
		}
		parts = append(parts, "## Document: "+header+"\n"+doc.Content)
	}

	return strings.Join(parts, "\n\n")
}
