package mock

import (
	"context"

	"github.com/fwojciec/edugen"
)

var _ edugen.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of edugen.Classifier.
type Classifier struct {
	ClassifyTopicFn func(ctx context.Context, topic string) (edugen.CourseType, error)
}

func (c *Classifier) ClassifyTopic(ctx context.Context, topic string) (edugen.CourseType, error) {
	return c.ClassifyTopicFn(ctx, topic)
}
