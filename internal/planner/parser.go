package planner

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lessonplanner/backend/internal/models"
)

// Section markers the model is instructed to emit.
const (
	markerOverview   = "OVERVIEW:"
	markerActivities = "ACTIVITIES:"
	markerAssessment = "ASSESSMENT:"
)

// Placeholders substituted when a section comes back empty.
const (
	PlaceholderOverview   = "No overview provided."
	PlaceholderActivities = "No activities provided."
	PlaceholderAssessment = "No assessment provided."
)

var (
	// ErrBadFormat is returned when the response does not contain the three
	// expected section markers.
	ErrBadFormat = errors.New("response does not contain the expected OVERVIEW/ACTIVITIES/ASSESSMENT sections")
	// ErrIncompletePlan is returned when a section is still empty after
	// placeholder substitution.
	ErrIncompletePlan = errors.New("generated lesson plan is incomplete")
)

var sectionMarkers = regexp.MustCompile(markerOverview + "|" + markerActivities + "|" + markerAssessment)

// ParseResponse splits the model's free-text response on the three section
// markers and returns the trimmed sections. The split must produce at least
// four segments: the discarded preamble before the first marker plus one
// segment per section. Empty sections get their placeholder.
func ParseResponse(text string) (*models.GeneratedLessonPlan, error) {
	segments := sectionMarkers.Split(text, -1)
	if len(segments) < 4 {
		return nil, ErrBadFormat
	}

	plan := &models.GeneratedLessonPlan{
		Overview:   strings.TrimSpace(segments[1]),
		Activities: strings.TrimSpace(segments[2]),
		Assessment: strings.TrimSpace(segments[3]),
	}

	if plan.Overview == "" {
		plan.Overview = PlaceholderOverview
	}
	if plan.Activities == "" {
		plan.Activities = PlaceholderActivities
	}
	if plan.Assessment == "" {
		plan.Assessment = PlaceholderAssessment
	}

	// A parsed plan never carries an empty section. The placeholders above are
	// non-empty constants, so this can only fire if they change.
	if plan.Overview == "" || plan.Activities == "" || plan.Assessment == "" {
		return nil, ErrIncompletePlan
	}

	return plan, nil
}
