package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements edugen.Converter at compile time.
var _ edugen.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello, world!</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li><li>Third</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "- Third")
	})

	t.Run("converts ordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>First</li><li>Second</li><li>Third</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. First")
		assert.Contains(t, md, "2. Second")
		assert.Contains(t, md, "3. Third")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		html := `<p>Run <code>go build</code> to compile.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "`go build`")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">package main

func main() {
    println("Hello")
}
</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, "package main")
		assert.Contains(t, md, "```")
	})

	t.Run("converts code blocks without language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code>some code here</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "some code here")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr><tr><td>Bob</td><td>25</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Name")
		assert.Contains(t, md, "Age")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "Bob")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Bold</strong> and <em>italic</em> text.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		html := `<blockquote><p>This is a quote.</p></blockquote>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "> This is a quote.")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("handles complex course material page", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h1>Unit 3: Cell Biology</h1>
<p>This unit introduces cell structure and function.</p>
<h2>Learning Objectives</h2>
<ul>
<li>Describe the parts of a cell</li>
<li>Compare plant and animal cells</li>
</ul>
<h2>Key Terms</h2>
<p>The <code>mitochondria</code> produce energy for the cell.</p>
<h3>Assessment Breakdown</h3>
<table>
<thead><tr><th>Component</th><th>Weight</th><th>Notes</th></tr></thead>
<tbody>
<tr><td>Lab reports</td><td>40%</td><td>Two per unit</td></tr>
<tr><td>Unit exam</td><td>60%</td><td>Cumulative</td></tr>
</tbody>
</table>
</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Unit 3: Cell Biology")
		assert.Contains(t, md, "## Learning Objectives")
		assert.Contains(t, md, "- Describe the parts of a cell")
		assert.Contains(t, md, "`mitochondria`")
		// Table cells may have padding for alignment
		assert.Contains(t, md, "Component")
		assert.Contains(t, md, "Weight")
		assert.Contains(t, md, "Lab reports")
	})
}
