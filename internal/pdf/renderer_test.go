package pdf

import (
	"testing"
	"time"

	"github.com/lessonplanner/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer()

	plan := &models.LessonPlan{
		ID:          "plan-1",
		Topic:       "Photosynthesis",
		GradeLevel:  "7th grade",
		MainConcept: "Energy conversion in plants",
		Overview:    "An introductory lesson on photosynthesis.",
		Activities:  "Observe leaf cells under the microscope.",
		Assessment:  "Exit ticket quiz.",
		CreatedAt:   time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	content, err := renderer.Render(plan)

	require.NoError(t, err)
	require.NotEmpty(t, content)
	// PDF files start with the %PDF magic bytes
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderer_RenderLongSections(t *testing.T) {
	renderer := NewRenderer()

	long := ""
	for i := 0; i < 200; i++ {
		long += "This sentence pads the section so the document spans multiple pages. "
	}

	plan := &models.LessonPlan{
		Topic:      "The Water Cycle",
		GradeLevel: "5th grade",
		Overview:   long,
		Activities: long,
		Assessment: long,
		CreatedAt:  time.Now(),
	}

	content, err := renderer.Render(plan)

	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
