package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyllabusGenerator_RejectsInvalidRequest(t *testing.T) {
	t.Parallel()

	gen := gemini.NewSyllabusGenerator(nil, nil)

	_, err := gen.GenerateSyllabus(context.Background(), &edugen.SyllabusRequest{})

	require.Error(t, err)
	assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
}

func TestBuildSyllabusConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSyllabusConfig()

	require.NotNil(t, config.SystemInstruction)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "syllabus")
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	assert.Contains(t, config.ResponseSchema.Required, "schedule")
}

func TestBuildSyllabusPrompt(t *testing.T) {
	t.Parallel()

	req := &edugen.SyllabusRequest{
		GradeLevel:        "9th grade",
		Course:            "Introduction to Biology",
		InstructorName:    "A. Mendel",
		InstructorTitle:   "Ms.",
		UnitTime:          "week",
		UnitTimeValue:     12,
		StartDate:         "2026-09-01",
		AssessmentMethods: "quizzes, labs",
		GradingScale:      "A-F",
		Lang:              "en",
		Summary:           "Cells, genetics, ecology.",
	}

	prompt := gemini.BuildSyllabusPrompt(req)

	assert.Contains(t, prompt, "<course_summary>")
	assert.Contains(t, prompt, "Cells, genetics, ecology.")
	assert.Contains(t, prompt, "Course: Introduction to Biology")
	assert.Contains(t, prompt, "Instructor: Ms. A. Mendel")
	assert.Contains(t, prompt, "Duration: 12 week(s)")
	assert.Contains(t, prompt, "Start Date: 2026-09-01")
	assert.Contains(t, prompt, "Grading Scale: A-F")
}
