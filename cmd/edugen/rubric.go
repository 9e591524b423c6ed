package main

import (
	"fmt"

	"github.com/fwojciec/edugen"
)

// Run executes the rubric command.
func (c *RubricCmd) Run(deps *Dependencies) error {
	if deps.Rubrics == nil {
		return edugen.Errorf(edugen.EINVALID, "rubric generation is not available for this provider")
	}

	pointScale := c.PointScale
	if pointScale == 0 {
		pointScale = deps.Config.PointScale
	}

	req := &edugen.RubricRequest{
		GradeLevel: c.GradeLevel,
		PointScale: pointScale,
		Standard:   c.Standard,
		Lang:       c.Lang,
	}

	source := c.Source
	if source == "" {
		source = c.Standard
	}
	sourceType := inferSourceType(c.Source, c.SourceType)

	result, err := deps.Rubrics.Run(deps.Ctx, req, source, sourceType)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edugen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated rubric %q with %d criteria.\n", result.Rubric.Title, len(result.Rubric.Criteria))
	if result.PDFPath != "" {
		fmt.Fprintln(deps.Stdout, result.PDFPath)
	} else {
		fmt.Fprintln(deps.Stderr, "warning: PDF was not produced; check that pdflatex is installed")
	}
	return nil
}
