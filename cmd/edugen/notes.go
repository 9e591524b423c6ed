package main

import (
	"fmt"

	"github.com/fwojciec/edugen"
)

// Run executes the notes command.
func (c *NotesCmd) Run(deps *Dependencies) error {
	if deps.Notes == nil {
		return edugen.Errorf(edugen.EINVALID, "notes generation is not available for this provider")
	}

	req := &edugen.NotesRequest{
		FocusTopic: c.FocusTopic,
		Structure:  edugen.NotesStructure(c.Structure),
		Format:     edugen.ExportFormat(c.Format),
		Lang:       c.Lang,
	}

	result, err := deps.Notes.Run(deps.Ctx, req, c.Source, inferSourceType(c.Source, c.SourceType))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edugen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated notes %q with %d sections.\n", result.Notes.Title, len(result.Notes.Sections))
	if result.OutputPath != "" {
		fmt.Fprintln(deps.Stdout, result.OutputPath)
	} else {
		fmt.Fprintln(deps.Stderr, "warning: output file was not produced")
	}
	return nil
}
