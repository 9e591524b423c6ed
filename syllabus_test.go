package edugen_test

import (
	"testing"

	"github.com/fwojciec/edugen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSyllabusRequest() *edugen.SyllabusRequest {
	return &edugen.SyllabusRequest{
		GradeLevel:        "9th grade",
		Course:            "Introduction to Biology",
		InstructorName:    "A. Mendel",
		InstructorTitle:   "Ms.",
		UnitTime:          "week",
		UnitTimeValue:     12,
		StartDate:         "2026-09-01",
		AssessmentMethods: "quizzes, labs, final exam",
		GradingScale:      "A-F",
		Source:            "biology-outline.md",
		SourceType:        edugen.SourceFile,
		Lang:              "en",
	}
}

func TestSyllabusRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid request", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validSyllabusRequest().Validate())
	})

	t.Run("rejects missing course", func(t *testing.T) {
		t.Parallel()

		req := validSyllabusRequest()
		req.Course = ""

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("rejects missing instructor", func(t *testing.T) {
		t.Parallel()

		req := validSyllabusRequest()
		req.InstructorName = ""

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("rejects non-positive unit time value", func(t *testing.T) {
		t.Parallel()

		req := validSyllabusRequest()
		req.UnitTimeValue = 0

		err := req.Validate()

		require.Error(t, err)
		assert.Contains(t, edugen.ErrorMessage(err), "unit time")
	})
}

func validSyllabus() *edugen.Syllabus {
	return &edugen.Syllabus{
		CourseTitle: "Introduction to Biology",
		GradeLevel:  "9th grade",
		Instructor:  "Ms. A. Mendel",
		Overview:    "A survey of cell biology, genetics, and ecology.",
		Objectives:  []string{"Describe cell structure", "Explain inheritance"},
		Schedule: []edugen.SyllabusUnit{
			{Unit: "Unit 1", Topic: "Cells", Timing: "Weeks 1-3"},
		},
	}
}

func TestSyllabus_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete syllabus", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validSyllabus().Validate())
	})

	t.Run("rejects missing overview", func(t *testing.T) {
		t.Parallel()

		s := validSyllabus()
		s.Overview = ""

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("rejects empty schedule", func(t *testing.T) {
		t.Parallel()

		s := validSyllabus()
		s.Schedule = nil

		err := s.Validate()

		require.Error(t, err)
		assert.Contains(t, edugen.ErrorMessage(err), "schedule")
	})

	t.Run("rejects empty objectives", func(t *testing.T) {
		t.Parallel()

		s := validSyllabus()
		s.Objectives = nil

		err := s.Validate()

		require.Error(t, err)
		assert.Contains(t, edugen.ErrorMessage(err), "objectives")
	})
}
