package main

import (
	"fmt"

	"github.com/fwojciec/edugen"
)

// Run executes the syllabus command.
func (c *SyllabusCmd) Run(deps *Dependencies) error {
	if deps.Syllabi == nil {
		return edugen.Errorf(edugen.EINVALID, "syllabus generation is not available for this provider")
	}

	req := &edugen.SyllabusRequest{
		GradeLevel:        c.GradeLevel,
		Course:            c.Course,
		InstructorName:    c.InstructorName,
		InstructorTitle:   c.InstructorTitle,
		UnitTime:          c.UnitTime,
		UnitTimeValue:     c.UnitTimeValue,
		StartDate:         c.StartDate,
		AssessmentMethods: c.AssessmentMethods,
		GradingScale:      c.GradingScale,
		Source:            c.Source,
		SourceType:        inferSourceType(c.Source, c.SourceType),
		Lang:              c.Lang,
	}

	result, err := deps.Syllabi.Run(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edugen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated syllabus %q with %d scheduled units.\n", result.Syllabus.CourseTitle, len(result.Syllabus.Schedule))
	if result.PDFPath != "" {
		fmt.Fprintln(deps.Stdout, result.PDFPath)
	} else {
		fmt.Fprintln(deps.Stderr, "warning: PDF was not produced; check that pdflatex is installed")
	}
	return nil
}
