package latex

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/edugen"
)

// RenderRubric renders a rubric as a longtable with one column per
// point level and returns the PDF path.
func (r *Renderer) RenderRubric(ctx context.Context, rubric *edugen.Rubric, pointScale int) (string, error) {
	if rubric == nil || len(rubric.Criteria) == 0 {
		return "", edugen.Errorf(edugen.EINVALID, "rubric has no criteria to render")
	}
	return r.render(ctx, "rubric", BuildRubricTeX(rubric, pointScale))
}

// BuildRubricTeX builds the LaTeX source for a rubric. The criteria
// table spans pages via longtable; the point-level headers are taken
// from the first criterion.
func BuildRubricTeX(rubric *edugen.Rubric, pointScale int) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{geometry}\n")
	b.WriteString("\\usepackage{longtable}\n")
	b.WriteString("\\usepackage{tabularx}\n")
	b.WriteString("\\geometry{left=1em,right=0.5em}\n")
	b.WriteString("\\title{Rubric}\n")
	b.WriteString("\\date{\\today}\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString("\\maketitle\n")
	fmt.Fprintf(&b, "\\noindent\\textbf{Title:} %s\\\\\n", Escape(rubric.Title))
	fmt.Fprintf(&b, "\\noindent\\textbf{Grade Level:} %s\\\\\n", Escape(rubric.GradeLevel))
	b.WriteString("\\section*{Criteria}\n")

	cols := pointScale + 1
	colWidth := fmt.Sprintf("%.2f\\textwidth", 0.8/float64(cols))
	b.WriteString("\\begin{longtable}{|")
	for i := 0; i < cols; i++ {
		fmt.Fprintf(&b, "p{%s}|", colWidth)
	}
	b.WriteString("}\n\\hline\n")

	header := []string{"Criteria"}
	for _, level := range rubric.Criteria[0].Levels {
		header = append(header, Escape(level.Points))
	}
	b.WriteString(strings.Join(header, " & "))
	b.WriteString(" \\\\\n\\hline\n\\endfirsthead\n")
	b.WriteString("\\hline\n")
	b.WriteString(strings.Join(header, " & "))
	b.WriteString(" \\\\\n\\hline\n\\endhead\n")
	fmt.Fprintf(&b, "\\hline \\multicolumn{%d}{r}{Continued on next page} \\\\\n\\endfoot\n", cols)
	b.WriteString("\\hline\n\\endlastfoot\n")

	for _, criterion := range rubric.Criteria {
		row := []string{Escape(criterion.Name)}
		for _, level := range criterion.Levels {
			row = append(row, Escape(strings.Join(level.Descriptions, " ")))
		}
		b.WriteString(strings.Join(row, " & "))
		b.WriteString(" \\\\\n\\hline\n")
	}
	b.WriteString("\\end{longtable}\n")

	if rubric.Feedback != "" {
		b.WriteString("\\section*{Feedback}\n")
		b.WriteString(Escape(rubric.Feedback))
		b.WriteString("\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}
