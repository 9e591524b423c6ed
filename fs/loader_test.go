package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/fs"
	"github.com/fwojciec/edugen/mock"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads text file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "standard.txt", "Analyze primary sources.\n")
		loader := fs.NewLoader(nil, nil)

		docs, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Analyze primary sources.", docs[0].Content)
		assert.Equal(t, "standard", docs[0].Title)
		assert.Equal(t, edugen.SourceFile, docs[0].SourceType)
		assert.NotEmpty(t, docs[0].ID)
		assert.NotEmpty(t, docs[0].ContentHash)
	})

	t.Run("loads markdown file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "unit.md", "# Unit 1\n\nCell biology.\n")
		loader := fs.NewLoader(nil, nil)

		docs, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].Content, "# Unit 1")
	})

	t.Run("flattens csv rows with headers", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "standards.csv", "code,description\nRH.9-10.1,Cite textual evidence\n")
		loader := fs.NewLoader(nil, nil)

		docs, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].Content, "code: RH.9-10.1")
		assert.Contains(t, docs[0].Content, "description: Cite textual evidence")
	})

	t.Run("converts html through extractor and converter", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", "<html><head><title>Syllabus</title></head><body><p>Hello</p></body></html>")
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*edugen.ExtractResult, error) {
				return &edugen.ExtractResult{Title: "Syllabus", ContentHTML: "<p>Hello</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Hello", nil
			},
		}
		loader := fs.NewLoader(extractor, converter)

		docs, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Syllabus", docs[0].Title)
		assert.Equal(t, "Hello", docs[0].Content)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		loader := fs.NewLoader(nil, nil)
		_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Equal(t, edugen.ENOTFOUND, edugen.ErrorCode(err))
	})

	t.Run("unsupported extension is invalid", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "data.bin", "\x00\x01")
		loader := fs.NewLoader(nil, nil)
		_, err := loader.Load(context.Background(), path)
		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("empty file is invalid", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "empty.txt", "   \n")
		loader := fs.NewLoader(nil, nil)
		_, err := loader.Load(context.Background(), path)
		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})
}
