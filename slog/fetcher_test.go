package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/mock"
	edugenslog "github.com/fwojciec/edugen/slog"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := edugenslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := edugenslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingRetriever(t *testing.T) {
	t.Parallel()

	t.Run("logs add and search", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Retriever{
			AddFn: func(ctx context.Context, chunks []*edugen.Chunk) error { return nil },
			SearchFn: func(ctx context.Context, query string, limit int) ([]edugen.SearchResult, error) {
				return []edugen.SearchResult{{Chunk: &edugen.Chunk{DocumentID: "d1", Content: "c"}}}, nil
			},
		}

		retriever := edugenslog.NewLoggingRetriever(inner, logger)
		require.NoError(t, retriever.Add(context.Background(), []*edugen.Chunk{{DocumentID: "d1", Content: "c"}}))
		results, err := retriever.Search(context.Background(), "biology", 4)
		require.NoError(t, err)
		require.Len(t, results, 1)

		output := buf.String()
		assert.Contains(t, output, "index add")
		assert.Contains(t, output, "chunks=1")
		assert.Contains(t, output, "index search")
		assert.Contains(t, output, "query=biology")
		assert.Contains(t, output, "results=1")
	})
}

func TestLoggingRenderer(t *testing.T) {
	t.Parallel()

	t.Run("logs render path and error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderNotesFn: func(ctx context.Context, notes *edugen.Notes, format edugen.ExportFormat) (string, error) {
				return "/out/notes.md", nil
			},
		}

		renderer := edugenslog.NewLoggingRenderer(inner, logger)
		path, err := renderer.RenderNotes(context.Background(), &edugen.Notes{Title: "T", Sections: []string{"s"}}, edugen.ExportMarkdown)
		require.NoError(t, err)
		assert.Equal(t, "/out/notes.md", path)

		output := buf.String()
		assert.Contains(t, output, "render notes")
		assert.Contains(t, output, "path=/out/notes.md")
		assert.Contains(t, output, "format=md")
	})
}
