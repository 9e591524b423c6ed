package edugen

import "context"

// Point scale bounds. Scales outside this range produce rubrics that are
// either meaningless (fewer than 2 levels) or too granular to grade
// consistently (more than 8).
const (
	MinPointScale = 2
	MaxPointScale = 8
)

// MaxGenerateAttempts bounds the generate-validate retry loop. The model
// is non-deterministic, so structurally invalid output is retried rather
// than failed; after this many attempts the run fails with EINTERNAL.
const MaxGenerateAttempts = 6

// RubricRequest describes the rubric to generate.
type RubricRequest struct {
	GradeLevel string `json:"gradeLevel"`
	PointScale int    `json:"pointScale"`
	Standard   string `json:"standard"`
	Lang       string `json:"lang"`
}

// Validate returns an error if the request contains invalid fields.
func (r *RubricRequest) Validate() error {
	if r.GradeLevel == "" {
		return Errorf(EINVALID, "grade level required")
	}
	if r.PointScale < MinPointScale || r.PointScale > MaxPointScale {
		return Errorf(EINVALID, "point scale must be between %d and %d; 4 is a good default for grading granularity", MinPointScale, MaxPointScale)
	}
	if r.Standard == "" {
		return Errorf(EINVALID, "learning standard required")
	}
	if r.Lang == "" {
		return Errorf(EINVALID, "language required")
	}
	return nil
}

// CriterionLevel describes one point level of a grading criterion.
type CriterionLevel struct {
	// Points is the level label, e.g. "4 - Exemplary".
	Points string `json:"points"`

	// Descriptions lists what student work looks like at this level.
	Descriptions []string `json:"description"`
}

// Criterion is a single grading criterion with one level per point on
// the scale.
type Criterion struct {
	Name   string           `json:"criteria"`
	Levels []CriterionLevel `json:"criteria_description"`
}

// Rubric is the structured grading document produced by the model.
type Rubric struct {
	Title      string      `json:"title"`
	GradeLevel string      `json:"grade_level"`
	Criteria   []Criterion `json:"criterias"`
	Feedback   string      `json:"feedback"`
}

// Validate checks a generated rubric against the requested point scale.
// This is the gate that decides whether a model response is usable:
// an empty criteria list, missing feedback, or a criterion whose level
// count does not match the point scale all reject the rubric.
func (r *Rubric) Validate(pointScale int) error {
	if len(r.Criteria) == 0 {
		return Errorf(EINVALID, "rubric has no criteria")
	}
	if r.Feedback == "" {
		return Errorf(EINVALID, "rubric feedback missing")
	}
	for _, c := range r.Criteria {
		if len(c.Levels) != pointScale {
			return Errorf(EINVALID, "criterion %q has %d levels, want %d", c.Name, len(c.Levels), pointScale)
		}
	}
	return nil
}

// RubricGenerator produces a rubric from a request and retrieved context.
type RubricGenerator interface {
	// GenerateRubric prompts the model with the request parameters and
	// the supplied context text. The returned rubric is unvalidated;
	// callers run it through Rubric.Validate.
	GenerateRubric(ctx context.Context, req *RubricRequest, contextText string) (*Rubric, error)
}
