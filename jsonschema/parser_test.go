package jsonschema_test

import (
	"testing"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRubricJSON = `{
	"title": "Persuasive Essay Rubric",
	"grade_level": "7th grade",
	"criterias": [
		{
			"criteria": "Thesis",
			"criteria_description": [
				{"points": "2 - Proficient", "description": ["Clear thesis."]},
				{"points": "1 - Developing", "description": ["Vague thesis."]}
			]
		}
	],
	"feedback": "Balanced rubric."
}`

func TestParser_ParseRubric(t *testing.T) {
	t.Parallel()

	parser, err := jsonschema.NewParser()
	require.NoError(t, err)

	t.Run("decodes valid rubric", func(t *testing.T) {
		t.Parallel()

		rubric, err := parser.ParseRubric([]byte(validRubricJSON))

		require.NoError(t, err)
		assert.Equal(t, "Persuasive Essay Rubric", rubric.Title)
		require.Len(t, rubric.Criteria, 1)
		assert.Equal(t, "Thesis", rubric.Criteria[0].Name)
		require.Len(t, rubric.Criteria[0].Levels, 2)
		assert.Equal(t, []string{"Clear thesis."}, rubric.Criteria[0].Levels[0].Descriptions)
	})

	t.Run("accepts fenced output", func(t *testing.T) {
		t.Parallel()

		fenced := "```json\n" + validRubricJSON + "\n```"

		rubric, err := parser.ParseRubric([]byte(fenced))

		require.NoError(t, err)
		assert.Equal(t, "Persuasive Essay Rubric", rubric.Title)
	})

	t.Run("rejects non-JSON output", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseRubric([]byte("I could not generate a rubric."))

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("rejects missing criterias", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseRubric([]byte(`{"title": "T", "grade_level": "7", "feedback": "F"}`))

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("rejects empty criterias", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseRubric([]byte(`{"title": "T", "grade_level": "7", "criterias": [], "feedback": "F"}`))

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})

	t.Run("rejects missing feedback", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseRubric([]byte(`{
			"title": "T", "grade_level": "7",
			"criterias": [{"criteria": "C", "criteria_description": [
				{"points": "2", "description": ["d"]},
				{"points": "1", "description": ["d"]}
			]}]
		}`))

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})
}

const validSyllabusJSON = `{
	"course_title": "Introduction to Biology",
	"grade_level": "9th grade",
	"instructor": "Ms. A. Mendel",
	"overview": "A survey of cell biology.",
	"objectives": ["Describe cell structure"],
	"schedule": [{"unit": "Unit 1", "topic": "Cells", "timing": "Weeks 1-3"}]
}`

func TestParser_ParseSyllabus(t *testing.T) {
	t.Parallel()

	parser, err := jsonschema.NewParser()
	require.NoError(t, err)

	t.Run("decodes valid syllabus", func(t *testing.T) {
		t.Parallel()

		syllabus, err := parser.ParseSyllabus([]byte(validSyllabusJSON))

		require.NoError(t, err)
		assert.Equal(t, "Introduction to Biology", syllabus.CourseTitle)
		require.Len(t, syllabus.Schedule, 1)
		assert.Equal(t, "Cells", syllabus.Schedule[0].Topic)
	})

	t.Run("rejects empty schedule", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseSyllabus([]byte(`{
			"course_title": "T", "grade_level": "9", "overview": "O",
			"objectives": ["a"], "schedule": []
		}`))

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})
}

func TestParser_ParseNotes(t *testing.T) {
	t.Parallel()

	parser, err := jsonschema.NewParser()
	require.NoError(t, err)

	t.Run("decodes valid notes", func(t *testing.T) {
		t.Parallel()

		notes, err := parser.ParseNotes([]byte(`{"title": "Biology Notes", "sections": ["Cells are small."]}`))

		require.NoError(t, err)
		assert.Equal(t, "Biology Notes", notes.Title)
	})

	t.Run("rejects empty sections", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseNotes([]byte(`{"title": "T", "sections": []}`))

		require.Error(t, err)
		assert.Equal(t, edugen.EINVALID, edugen.ErrorCode(err))
	})
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare JSON unchanged", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, string(jsonschema.StripCodeFence([]byte(tt.in))))
		})
	}
}
