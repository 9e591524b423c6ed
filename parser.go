package edugen

// RubricParser decodes and validates raw model output into a Rubric.
type RubricParser interface {
	// ParseRubric validates data against the rubric schema and decodes it.
	// Schema violations return EINVALID.
	ParseRubric(data []byte) (*Rubric, error)
}

// SyllabusParser decodes and validates raw model output into a Syllabus.
type SyllabusParser interface {
	ParseSyllabus(data []byte) (*Syllabus, error)
}

// NotesParser decodes and validates raw model output into Notes.
type NotesParser interface {
	ParseNotes(data []byte) (*Notes, error)
}
