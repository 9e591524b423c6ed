package edugen

import "context"

// NotesStructure selects the shape of generated notes.
type NotesStructure string

// Supported notes structures.
const (
	NotesBullet    NotesStructure = "bullet"
	NotesParagraph NotesStructure = "paragraph"
	NotesTable     NotesStructure = "table"
)

// ExportFormat selects the output file format for notes.
type ExportFormat string

// Supported export formats.
const (
	ExportTXT      ExportFormat = "txt"
	ExportMarkdown ExportFormat = "md"
	ExportPDF      ExportFormat = "pdf"
)

// NotesRequest describes the notes to generate from loaded content.
type NotesRequest struct {
	FocusTopic string         `json:"focusTopic"`
	Structure  NotesStructure `json:"structure"`
	Format     ExportFormat   `json:"format"`
	Lang       string         `json:"lang"`
}

// Validate returns an error if the request contains invalid fields.
func (r *NotesRequest) Validate() error {
	switch r.Structure {
	case NotesBullet, NotesParagraph, NotesTable:
	default:
		return Errorf(EINVALID, "unsupported notes structure %q", r.Structure)
	}
	switch r.Format {
	case ExportTXT, ExportMarkdown, ExportPDF:
	default:
		return Errorf(EINVALID, "unsupported export format %q", r.Format)
	}
	return nil
}

// Notes is the structured study-notes document produced by the model.
type Notes struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

// Validate checks generated notes for renderable structure.
func (n *Notes) Validate() error {
	if n.Title == "" {
		return Errorf(EINVALID, "notes title missing")
	}
	if len(n.Sections) == 0 {
		return Errorf(EINVALID, "notes have no sections")
	}
	return nil
}

// NotesGenerator produces study notes from source content.
type NotesGenerator interface {
	GenerateNotes(ctx context.Context, req *NotesRequest, content string) (*Notes, error)
}
