package main

import (
	"fmt"

	"github.com/fwojciec/edugen"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	if deps.Classifier == nil {
		return edugen.Errorf(edugen.EINVALID, "classification is not available for this provider")
	}

	courseType, err := deps.Classifier.ClassifyTopic(deps.Ctx, c.Topic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edugen.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, courseType)
	return nil
}
