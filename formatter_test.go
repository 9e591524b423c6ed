package edugen_test

import (
	"testing"

	"github.com/fwojciec/edugen"
	"github.com/stretchr/testify/assert"
)

func TestFormatContext(t *testing.T) {
	t.Parallel()

	t.Run("formats single result with source", func(t *testing.T) {
		t.Parallel()

		results := []edugen.SearchResult{
			{Chunk: &edugen.Chunk{Source: "outline.md", Content: "Cells are small."}},
		}

		result := edugen.FormatContext(results)

		assert.Equal(t, "## Source: outline.md\nCells are small.", result)
	})

	t.Run("falls back to document ID when source is empty", func(t *testing.T) {
		t.Parallel()

		results := []edugen.SearchResult{
			{Chunk: &edugen.Chunk{DocumentID: "doc-1", Content: "Some content."}},
		}

		result := edugen.FormatContext(results)

		assert.Equal(t, "## Source: doc-1\nSome content.", result)
	})

	t.Run("separates results with blank lines", func(t *testing.T) {
		t.Parallel()

		results := []edugen.SearchResult{
			{Chunk: &edugen.Chunk{Source: "a.md", Content: "First."}},
			{Chunk: &edugen.Chunk{Source: "b.md", Content: "Second."}},
		}

		result := edugen.FormatContext(results)

		assert.Equal(t, "## Source: a.md\nFirst.\n\n## Source: b.md\nSecond.", result)
	})

	t.Run("returns empty string for no results", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, edugen.FormatContext(nil))
	})
}

func TestFormatDocuments(t *testing.T) {
	t.Parallel()

	t.Run("uses title when available", func(t *testing.T) {
		t.Parallel()

		docs := []*edugen.Document{
			{Title: "Course Outline", Content: "Twelve weeks."},
		}

		result := edugen.FormatDocuments(docs)

		assert.Equal(t, "## Document: Course Outline\nTwelve weeks.", result)
	})

	t.Run("falls back to source", func(t *testing.T) {
		t.Parallel()

		docs := []*edugen.Document{
			{Source: "outline.md", Content: "Twelve weeks."},
		}

		result := edugen.FormatDocuments(docs)

		assert.Equal(t, "## Document: outline.md\nTwelve weeks.", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, edugen.FormatDocuments([]*edugen.Document{}))
	})
}
