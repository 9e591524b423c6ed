package latex

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/edugen"
)

// RenderSyllabus renders a syllabus as a sectioned document and
// returns the PDF path.
func (r *Renderer) RenderSyllabus(ctx context.Context, syllabus *edugen.Syllabus) (string, error) {
	if syllabus == nil || syllabus.CourseTitle == "" {
		return "", edugen.Errorf(edugen.EINVALID, "syllabus has no course title to render")
	}
	return r.render(ctx, "syllabus", BuildSyllabusTeX(syllabus))
}

// BuildSyllabusTeX builds the LaTeX source for a syllabus.
func BuildSyllabusTeX(syllabus *edugen.Syllabus) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{geometry}\n")
	b.WriteString("\\usepackage{longtable}\n")
	b.WriteString("\\geometry{margin=1in}\n")
	fmt.Fprintf(&b, "\\title{%s}\n", Escape(syllabus.CourseTitle))
	fmt.Fprintf(&b, "\\author{%s}\n", Escape(syllabus.Instructor))
	b.WriteString("\\date{\\today}\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString("\\maketitle\n")

	fmt.Fprintf(&b, "\\noindent\\textbf{Grade Level:} %s\\\\\n", Escape(syllabus.GradeLevel))
	b.WriteString("\\section*{Course Overview}\n")
	b.WriteString(Escape(syllabus.Overview))
	b.WriteString("\n")

	writeItemize(&b, "Learning Objectives", syllabus.Objectives)
	writeItemize(&b, "Required Materials", syllabus.RequiredItems)
	writeItemize(&b, "Course Policies", syllabus.Policies)

	if len(syllabus.GradeComponents) > 0 {
		b.WriteString("\\section*{Grading}\n")
		b.WriteString("\\begin{longtable}{|p{0.5\\textwidth}|p{0.3\\textwidth}|}\n\\hline\n")
		b.WriteString("Component & Weight \\\\\n\\hline\n\\endhead\n")
		for _, gc := range syllabus.GradeComponents {
			fmt.Fprintf(&b, "%s & %s \\\\\n\\hline\n", Escape(gc.Component), Escape(gc.Weight))
		}
		b.WriteString("\\end{longtable}\n")
	}

	if len(syllabus.Schedule) > 0 {
		b.WriteString("\\section*{Schedule}\n")
		b.WriteString("\\begin{longtable}{|p{0.1\\textwidth}|p{0.5\\textwidth}|p{0.25\\textwidth}|}\n\\hline\n")
		b.WriteString("Unit & Topic & Timing \\\\\n\\hline\n\\endhead\n")
		for _, unit := range syllabus.Schedule {
			fmt.Fprintf(&b, "%s & %s & %s \\\\\n\\hline\n", Escape(unit.Unit), Escape(unit.Topic), Escape(unit.Timing))
		}
		b.WriteString("\\end{longtable}\n")
	}

	b.WriteString("\\end{document}\n")
	return b.String()
}

func writeItemize(b *strings.Builder, section string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\\section*{%s}\n\\begin{itemize}\n", section)
	for _, item := range items {
		fmt.Fprintf(b, "\\item %s\n", Escape(item))
	}
	b.WriteString("\\end{itemize}\n")
}
