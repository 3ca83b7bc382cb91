// Package planner builds generation prompts from lesson-plan input and parses
// the model's free-text response into the three labeled sections.
package planner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lessonplanner/backend/internal/models"
)

// maxPromptLength bounds the prompt sent to the generative API.
const maxPromptLength = 30000

// requiredField pairs a field name (as it appears in API payloads and error
// messages) with its accessor. Order here is the declaration order used when
// reporting validation failures.
type requiredField struct {
	name  string
	value func(models.LessonPlanInput) string
}

var requiredFields = []requiredField{
	{"topic", func(in models.LessonPlanInput) string { return in.Topic }},
	{"gradeLevel", func(in models.LessonPlanInput) string { return in.GradeLevel }},
	{"mainConcept", func(in models.LessonPlanInput) string { return in.MainConcept }},
	{"subTopics", func(in models.LessonPlanInput) string { return in.SubTopics }},
	{"materials", func(in models.LessonPlanInput) string { return in.Materials }},
	{"objectives", func(in models.LessonPlanInput) string { return in.Objectives }},
	{"lessonOutline", func(in models.LessonPlanInput) string { return in.LessonOutline }},
}

// ValidationError reports every required field that was empty after trimming.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Validate checks that every required field has a non-blank value. It returns
// a *ValidationError naming all offending fields in declaration order, or nil.
func Validate(input models.LessonPlanInput) error {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(input)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

const promptTemplate = `You are an experienced curriculum designer. Create a detailed lesson plan using the following details:

Topic: %s
Grade Level: %s
Main Concept: %s
Sub Topics: %s
Materials Needed: %s
Learning Objectives: %s
Lesson Outline: %s

Structure your response in exactly three sections, each starting on its own line with one of these labels:
OVERVIEW: a concise summary of the lesson and its goals.
ACTIVITIES: step-by-step classroom activities for the lesson.
ASSESSMENT: how student understanding will be evaluated.`

// BuildPrompt validates the input and renders the fixed prompt template with
// all seven field values. The result is trimmed and capped at maxPromptLength.
func BuildPrompt(input models.LessonPlanInput) (string, error) {
	if err := Validate(input); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(promptTemplate,
		strings.TrimSpace(input.Topic),
		strings.TrimSpace(input.GradeLevel),
		strings.TrimSpace(input.MainConcept),
		strings.TrimSpace(input.SubTopics),
		strings.TrimSpace(input.Materials),
		strings.TrimSpace(input.Objectives),
		strings.TrimSpace(input.LessonOutline),
	)

	prompt = strings.TrimSpace(prompt)
	if len(prompt) > maxPromptLength {
		// Back the cut off to a rune boundary so the cap never splits a
		// multi-byte character.
		cut := maxPromptLength
		for cut > 0 && !utf8.RuneStart(prompt[cut]) {
			cut--
		}
		prompt = prompt[:cut]
	}
	return prompt, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases s and collapses whitespace runs into single hyphens.
// Used to build export filenames from the lesson topic.
func Slugify(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}
