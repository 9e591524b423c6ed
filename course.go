package edugen

import "context"

// CourseType is an IB-style subject group classification for a topic.
type CourseType string

// The six course types the classifier may return.
const (
	CourseLanguageLiterature  CourseType = "Language and Literature"
	CourseLanguageAcquisition CourseType = "Language Acquisition"
	CourseIndividualsSociety  CourseType = "Individuals and Societies"
	CourseSciences            CourseType = "Sciences"
	CourseMathematics         CourseType = "Mathematics"
	CourseArts                CourseType = "Arts"
)

// CourseTypes lists all valid classifications.
func CourseTypes() []CourseType {
	return []CourseType{
		CourseLanguageLiterature,
		CourseLanguageAcquisition,
		CourseIndividualsSociety,
		CourseSciences,
		CourseMathematics,
		CourseArts,
	}
}

// Valid reports whether ct is one of the known course types.
func (ct CourseType) Valid() bool {
	for _, t := range CourseTypes() {
		if ct == t {
			return true
		}
	}
	return false
}

// Classifier assigns a course type to a topic.
type Classifier interface {
	// ClassifyTopic returns the course type for a topic.
	// Returns EINVALID if the topic is empty.
	ClassifyTopic(ctx context.Context, topic string) (CourseType, error)
}
