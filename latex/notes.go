package latex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/edugen"
)

// RenderNotes exports notes in the requested format. Markdown and
// plain text are written directly; PDF goes through pdflatex.
func (r *Renderer) RenderNotes(ctx context.Context, notes *edugen.Notes, format edugen.ExportFormat) (string, error) {
	if notes == nil || len(notes.Sections) == 0 {
		return "", edugen.Errorf(edugen.EINVALID, "notes have no sections to render")
	}

	switch format {
	case edugen.ExportPDF:
		return r.render(ctx, "notes", BuildNotesTeX(notes))
	case edugen.ExportMarkdown:
		return r.writeNotes("notes.md", BuildNotesMarkdown(notes))
	case edugen.ExportTXT:
		return r.writeNotes("notes.txt", BuildNotesText(notes))
	default:
		return "", edugen.Errorf(edugen.EINVALID, "unsupported export format %q", format)
	}
}

func (r *Renderer) writeNotes(name, content string) (string, error) {
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", edugen.Errorf(edugen.EINTERNAL, "write notes file: %v", err)
	}
	return path, nil
}

// BuildNotesTeX builds the LaTeX source for notes.
func BuildNotesTeX(notes *edugen.Notes) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{geometry}\n")
	b.WriteString("\\geometry{margin=1in}\n")
	fmt.Fprintf(&b, "\\title{%s}\n", Escape(notes.Title))
	b.WriteString("\\date{\\today}\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString("\\maketitle\n")
	for _, section := range notes.Sections {
		b.WriteString(Escape(section))
		b.WriteString("\n\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

// BuildNotesMarkdown builds the Markdown export for notes.
func BuildNotesMarkdown(notes *edugen.Notes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", notes.Title)
	for _, section := range notes.Sections {
		b.WriteString(section)
		b.WriteString("\n\n")
	}
	return b.String()
}

// BuildNotesText builds the plain-text export for notes.
func BuildNotesText(notes *edugen.Notes) string {
	var b strings.Builder
	b.WriteString(notes.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(notes.Title)))
	b.WriteString("\n\n")
	for _, section := range notes.Sections {
		b.WriteString(section)
		b.WriteString("\n\n")
	}
	return b.String()
}
