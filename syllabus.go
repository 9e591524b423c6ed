package edugen

import "context"

// SyllabusRequest bundles the static course metadata with a summary of
// the uploaded artifact (image, video transcript, or document).
type SyllabusRequest struct {
	GradeLevel        string     `json:"gradeLevel"`
	Course            string     `json:"course"`
	InstructorName    string     `json:"instructorName"`
	InstructorTitle   string     `json:"instructorTitle"`
	UnitTime          string     `json:"unitTime"` // e.g. "week", "month"
	UnitTimeValue     int        `json:"unitTimeValue"`
	StartDate         string     `json:"startDate"`
	AssessmentMethods string     `json:"assessmentMethods"`
	GradingScale      string     `json:"gradingScale"`
	Source            string     `json:"source"`
	SourceType        SourceType `json:"sourceType"`
	Lang              string     `json:"lang"`

	// Summary is derived from the source artifact before generation.
	Summary string `json:"summary"`
}

// Validate returns an error if the request contains invalid fields.
func (r *SyllabusRequest) Validate() error {
	if r.GradeLevel == "" {
		return Errorf(EINVALID, "grade level required")
	}
	if r.Course == "" {
		return Errorf(EINVALID, "course name required")
	}
	if r.InstructorName == "" {
		return Errorf(EINVALID, "instructor name required")
	}
	if r.UnitTimeValue <= 0 {
		return Errorf(EINVALID, "unit time value must be positive")
	}
	if r.Lang == "" {
		return Errorf(EINVALID, "language required")
	}
	return nil
}

// SyllabusUnit is one scheduled unit of the course.
type SyllabusUnit struct {
	Unit   string `json:"unit"`
	Topic  string `json:"topic"`
	Timing string `json:"timing"` // e.g. "Week 3, starting 2025-09-15"
}

// GradeComponent is one weighted component of the course grade.
type GradeComponent struct {
	Component string `json:"component"`
	Weight    string `json:"weight"`
}

// Syllabus is the structured course syllabus produced by the model.
type Syllabus struct {
	CourseTitle     string           `json:"course_title"`
	GradeLevel      string           `json:"grade_level"`
	Instructor      string           `json:"instructor"`
	Overview        string           `json:"overview"`
	Objectives      []string         `json:"objectives"`
	RequiredItems   []string         `json:"required_items"`
	Policies        []string         `json:"policies"`
	GradeComponents []GradeComponent `json:"grade_components"`
	Schedule        []SyllabusUnit   `json:"schedule"`
}

// Validate checks a generated syllabus for the structure the renderer
// depends on. Like Rubric.Validate, a failure here is a soft rejection
// that triggers a retry.
func (s *Syllabus) Validate() error {
	if s.CourseTitle == "" {
		return Errorf(EINVALID, "syllabus course title missing")
	}
	if s.Overview == "" {
		return Errorf(EINVALID, "syllabus overview missing")
	}
	if len(s.Objectives) == 0 {
		return Errorf(EINVALID, "syllabus has no objectives")
	}
	if len(s.Schedule) == 0 {
		return Errorf(EINVALID, "syllabus has no schedule")
	}
	return nil
}

// SyllabusGenerator produces a syllabus from a request.
type SyllabusGenerator interface {
	GenerateSyllabus(ctx context.Context, req *SyllabusRequest) (*Syllabus, error)
}

// Summarizer condenses an uploaded artifact into the text summary that
// seeds syllabus generation.
type Summarizer interface {
	// SummarizeText summarizes plain or markdown text.
	SummarizeText(ctx context.Context, text string) (string, error)

	// SummarizeImage summarizes an image given its raw bytes and MIME type.
	SummarizeImage(ctx context.Context, data []byte, mimeType string) (string, error)
}
