package mock

import "github.com/fwojciec/edugen"

var _ edugen.RubricParser = (*RubricParser)(nil)

// RubricParser is a mock implementation of edugen.RubricParser.
type RubricParser struct {
	ParseRubricFn func(data []byte) (*edugen.Rubric, error)
}

func (p *RubricParser) ParseRubric(data []byte) (*edugen.Rubric, error) {
	return p.ParseRubricFn(data)
}

var _ edugen.SyllabusParser = (*SyllabusParser)(nil)

// SyllabusParser is a mock implementation of edugen.SyllabusParser.
type SyllabusParser struct {
	ParseSyllabusFn func(data []byte) (*edugen.Syllabus, error)
}

func (p *SyllabusParser) ParseSyllabus(data []byte) (*edugen.Syllabus, error) {
	return p.ParseSyllabusFn(data)
}

var _ edugen.NotesParser = (*NotesParser)(nil)

// NotesParser is a mock implementation of edugen.NotesParser.
type NotesParser struct {
	ParseNotesFn func(data []byte) (*edugen.Notes, error)
}

func (p *NotesParser) ParseNotes(data []byte) (*edugen.Notes, error) {
	return p.ParseNotesFn(data)
}
