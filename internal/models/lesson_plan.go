package models

import "time"

// LessonPlanInput holds the seven parameters a teacher submits to generate a lesson plan.
// Every field is required; validation rejects values that are empty after trimming.
type LessonPlanInput struct {
	Topic         string `json:"topic"`
	GradeLevel    string `json:"gradeLevel"`
	MainConcept   string `json:"mainConcept"`
	SubTopics     string `json:"subTopics"`
	Materials     string `json:"materials"`
	Objectives    string `json:"objectives"`
	LessonOutline string `json:"lessonOutline"`
}

// GeneratedLessonPlan is the parsed result of one generation call. Sections that could
// not be extracted carry a fixed placeholder instead of an empty string.
type GeneratedLessonPlan struct {
	Overview   string `json:"overview"`
	Activities string `json:"activities"`
	Assessment string `json:"assessment"`
}

// LessonPlan is a stored lesson plan: the submitted input together with the
// generated sections and generation metadata.
type LessonPlan struct {
	ID            string    `json:"id"`
	Topic         string    `json:"topic"`
	GradeLevel    string    `json:"gradeLevel"`
	MainConcept   string    `json:"mainConcept"`
	SubTopics     string    `json:"subTopics"`
	Materials     string    `json:"materials"`
	Objectives    string    `json:"objectives"`
	LessonOutline string    `json:"lessonOutline"`
	Overview      string    `json:"overview"`
	Activities    string    `json:"activities"`
	Assessment    string    `json:"assessment"`
	Model         string    `json:"model"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LessonPlanListItem represents a plan in list responses
type LessonPlanListItem struct {
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	GradeLevel string    `json:"gradeLevel"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ExportedPlan is a rendered PDF document ready to be sent to the client.
type ExportedPlan struct {
	Filename string `json:"filename"`
	Content  []byte `json:"-"`
}
