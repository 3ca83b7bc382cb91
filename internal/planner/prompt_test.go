package planner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lessonplanner/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.LessonPlanInput {
	return models.LessonPlanInput{
		Topic:         "Photosynthesis",
		GradeLevel:    "7th grade",
		MainConcept:   "How plants convert light into energy",
		SubTopics:     "Chlorophyll, light reactions, Calvin cycle",
		Materials:     "Leaves, microscope, worksheets",
		Objectives:    "Students can describe the inputs and outputs of photosynthesis",
		LessonOutline: "Warm-up, direct instruction, lab activity, exit ticket",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*models.LessonPlanInput)
		expectedFields []string
	}{
		{
			name:   "all fields present",
			mutate: func(in *models.LessonPlanInput) {},
		},
		{
			name:           "single empty field",
			mutate:         func(in *models.LessonPlanInput) { in.Topic = "" },
			expectedFields: []string{"topic"},
		},
		{
			name:           "whitespace-only field",
			mutate:         func(in *models.LessonPlanInput) { in.Materials = "   \t\n" },
			expectedFields: []string{"materials"},
		},
		{
			name: "multiple empty fields reported in declaration order",
			mutate: func(in *models.LessonPlanInput) {
				in.LessonOutline = ""
				in.GradeLevel = " "
				in.SubTopics = ""
			},
			expectedFields: []string{"gradeLevel", "subTopics", "lessonOutline"},
		},
		{
			name: "all fields empty",
			mutate: func(in *models.LessonPlanInput) {
				*in = models.LessonPlanInput{}
			},
			expectedFields: []string{
				"topic", "gradeLevel", "mainConcept", "subTopics",
				"materials", "objectives", "lessonOutline",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := Validate(input)

			if len(tt.expectedFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedFields, validationErr.Fields)
			assert.Contains(t, err.Error(), strings.Join(tt.expectedFields, ", "))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Run("prompt contains every field value", func(t *testing.T) {
		input := validInput()

		prompt, err := BuildPrompt(input)
		require.NoError(t, err)

		assert.Contains(t, prompt, input.Topic)
		assert.Contains(t, prompt, input.GradeLevel)
		assert.Contains(t, prompt, input.MainConcept)
		assert.Contains(t, prompt, input.SubTopics)
		assert.Contains(t, prompt, input.Materials)
		assert.Contains(t, prompt, input.Objectives)
		assert.Contains(t, prompt, input.LessonOutline)
	})

	t.Run("field values are trimmed before embedding", func(t *testing.T) {
		input := validInput()
		input.Topic = "  Photosynthesis  "

		prompt, err := BuildPrompt(input)
		require.NoError(t, err)

		assert.Contains(t, prompt, "Topic: Photosynthesis\n")
	})

	t.Run("prompt is capped at the maximum length", func(t *testing.T) {
		input := validInput()
		input.LessonOutline = strings.Repeat("a", maxPromptLength+5000)

		prompt, err := BuildPrompt(input)
		require.NoError(t, err)

		assert.LessOrEqual(t, len(prompt), maxPromptLength)
	})

	t.Run("truncation never splits a multi-byte rune", func(t *testing.T) {
		// Shift the boundary alignment with an ASCII pad so every offset
		// within a 3-byte rune is exercised.
		for pad := 0; pad < 4; pad++ {
			input := validInput()
			input.LessonOutline = strings.Repeat("a", pad) + strings.Repeat("水", maxPromptLength/3+2000)

			prompt, err := BuildPrompt(input)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(prompt), maxPromptLength)
			assert.True(t, utf8.ValidString(prompt))
		}
	})

	t.Run("invalid input is rejected before templating", func(t *testing.T) {
		input := validInput()
		input.Objectives = ""

		_, err := BuildPrompt(input)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"objectives"}, validationErr.Fields)
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple topic", "Photosynthesis", "photosynthesis"},
		{"spaces become hyphens", "The Water Cycle", "the-water-cycle"},
		{"whitespace runs collapse", "Intro   to\tFractions", "intro-to-fractions"},
		{"surrounding whitespace is dropped", "  Plate Tectonics  ", "plate-tectonics"},
		{"already lowercase", "fractions", "fractions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
