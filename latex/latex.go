// Package latex renders generated artifacts to print-ready documents.
// Artifacts are written as .tex files and compiled to PDF with pdflatex.
// Compilation requires a LaTeX toolchain on PATH; when it fails the
// renderer logs the failure (including the pdflatex log when present)
// and still returns the target path, leaving it to the caller to check
// whether the PDF exists.
package latex

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/edugen"
)

var _ edugen.Renderer = (*Renderer)(nil)

// Renderer renders rubrics, syllabi, and notes into a target directory.
type Renderer struct {
	dir    string
	logger *slog.Logger
}

// NewRenderer creates a Renderer writing into dir. The directory is
// created if it does not exist.
func NewRenderer(dir string, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, edugen.Errorf(edugen.EINTERNAL, "create output directory: %v", err)
	}
	return &Renderer{dir: dir, logger: logger}, nil
}

// render writes the .tex source and compiles it. The returned path
// points at the PDF target whether or not compilation succeeded.
func (r *Renderer) render(ctx context.Context, name, tex string) (string, error) {
	texPath := filepath.Join(r.dir, name+".tex")
	if err := os.WriteFile(texPath, []byte(tex), 0o644); err != nil {
		return "", edugen.Errorf(edugen.EINTERNAL, "write tex file: %v", err)
	}

	pdfPath := filepath.Join(r.dir, name+".pdf")
	r.compile(ctx, texPath, name)

	if _, err := os.Stat(pdfPath); err != nil {
		r.logger.Warn("pdf not produced", "path", pdfPath)
	}
	return pdfPath, nil
}

// compile runs pdflatex on the tex file. Failures are logged, not
// returned: a missing or broken toolchain should not abort generation.
func (r *Renderer) compile(ctx context.Context, texPath, name string) {
	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", r.dir,
		texPath,
	)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return
	}

	r.logger.Error("pdflatex failed", "err", err, "output", tail(string(out), 2000))
	logPath := filepath.Join(r.dir, name+".log")
	if logData, readErr := os.ReadFile(logPath); readErr == nil {
		r.logger.Error("pdflatex log", "path", logPath, "log", tail(string(logData), 2000))
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// latexEscaper escapes characters special to LaTeX in model-produced text.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape escapes LaTeX special characters in s.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}
