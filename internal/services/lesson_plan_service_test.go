package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lessonplanner/backend/internal/llm"
	"github.com/lessonplanner/backend/internal/models"
	"github.com/lessonplanner/backend/internal/planner"
	"github.com/lessonplanner/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockRepository is a mock implementation of LessonPlansRepository
type mockRepository struct {
	inserted  []*models.LessonPlan
	plan      *models.LessonPlan
	listItems []models.LessonPlanListItem
	insertErr error
	getErr    error
	listErr   error
}

func (m *mockRepository) Insert(ctx context.Context, plan *models.LessonPlan) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, plan)
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*models.LessonPlan, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.plan, nil
}

func (m *mockRepository) List(ctx context.Context, limit int) ([]models.LessonPlanListItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listItems, nil
}

// mockRenderer is a mock implementation of PlanRenderer
type mockRenderer struct {
	content []byte
	err     error
}

func (m *mockRenderer) Render(plan *models.LessonPlan) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.content, nil
}

// mockExportStore is a mock implementation of ExportStore
type mockExportStore struct {
	savedID       string
	savedFilename string
	savedContent  []byte
	err           error
}

func (m *mockExportStore) Save(planID, filename string, content []byte) error {
	if m.err != nil {
		return m.err
	}
	m.savedID = planID
	m.savedFilename = filename
	m.savedContent = content
	return nil
}

func validInput() models.LessonPlanInput {
	return models.LessonPlanInput{
		Topic:         "The Water Cycle",
		GradeLevel:    "5th grade",
		MainConcept:   "Evaporation, condensation and precipitation",
		SubTopics:     "Clouds, rain, groundwater",
		Materials:     "Kettle, glass jar, ice",
		Objectives:    "Explain how water moves through the cycle",
		LessonOutline: "Demo, discussion, diagram activity",
	}
}

func newTestService(repo *mockRepository, gen llm.TextGenerator, renderer *mockRenderer, store *mockExportStore) *lessonPlansService {
	logger, _ := zap.NewDevelopment()
	return NewLessonPlansService(repo, gen, renderer, store, logger)
}

func TestLessonPlansService_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockRepository{}
		gen := &llm.MockGenerator{
			Response: "Sure! OVERVIEW: Water moves in a cycle. ACTIVITIES: Boil water, watch condensation. ASSESSMENT: Label a diagram.",
		}
		svc := newTestService(repo, gen, &mockRenderer{}, &mockExportStore{})

		plan, err := svc.Generate(context.Background(), validInput())

		require.NoError(t, err)
		assert.NotEmpty(t, plan.ID)
		assert.Equal(t, "The Water Cycle", plan.Topic)
		assert.Equal(t, "Water moves in a cycle.", plan.Overview)
		assert.Equal(t, "Boil water, watch condensation.", plan.Activities)
		assert.Equal(t, "Label a diagram.", plan.Assessment)
		assert.Equal(t, "mock", plan.Model)
		assert.False(t, plan.CreatedAt.IsZero())

		require.Len(t, repo.inserted, 1)
		assert.Equal(t, plan, repo.inserted[0])

		require.Len(t, gen.Prompts, 1)
		assert.Contains(t, gen.Prompts[0], "The Water Cycle")
		assert.Contains(t, gen.Prompts[0], "Kettle, glass jar, ice")
	})

	t.Run("validation error skips generation", func(t *testing.T) {
		repo := &mockRepository{}
		gen := &llm.MockGenerator{Response: "unused"}
		svc := newTestService(repo, gen, &mockRenderer{}, &mockExportStore{})

		input := validInput()
		input.Topic = "  "
		input.Objectives = ""

		plan, err := svc.Generate(context.Background(), input)

		var validationErr *planner.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"topic", "objectives"}, validationErr.Fields)
		assert.Nil(t, plan)
		assert.Empty(t, gen.Prompts)
		assert.Empty(t, repo.inserted)
	})

	t.Run("missing credential", func(t *testing.T) {
		repo := &mockRepository{}
		gen := &llm.MockGenerator{Err: llm.ErrMissingAPIKey}
		svc := newTestService(repo, gen, &mockRenderer{}, &mockExportStore{})

		plan, err := svc.Generate(context.Background(), validInput())

		assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
		assert.Nil(t, plan)
		assert.Empty(t, repo.inserted)
	})

	t.Run("empty model response", func(t *testing.T) {
		repo := &mockRepository{}
		gen := &llm.MockGenerator{Err: llm.ErrEmptyResponse}
		svc := newTestService(repo, gen, &mockRenderer{}, &mockExportStore{})

		_, err := svc.Generate(context.Background(), validInput())

		assert.ErrorIs(t, err, llm.ErrEmptyResponse)
	})

	t.Run("response without markers", func(t *testing.T) {
		repo := &mockRepository{}
		gen := &llm.MockGenerator{Response: "here is an unstructured wall of text"}
		svc := newTestService(repo, gen, &mockRenderer{}, &mockExportStore{})

		plan, err := svc.Generate(context.Background(), validInput())

		assert.ErrorIs(t, err, planner.ErrBadFormat)
		assert.Nil(t, plan)
		assert.Empty(t, repo.inserted)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockRepository{insertErr: errors.New("database error")}
		gen := &llm.MockGenerator{
			Response: "OVERVIEW: A ACTIVITIES: B ASSESSMENT: C",
		}
		svc := newTestService(repo, gen, &mockRenderer{}, &mockExportStore{})

		plan, err := svc.Generate(context.Background(), validInput())

		assert.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestLessonPlansService_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stored := &models.LessonPlan{ID: "plan-1", Topic: "Fractions"}
		repo := &mockRepository{plan: stored}
		svc := newTestService(repo, &llm.MockGenerator{}, &mockRenderer{}, &mockExportStore{})

		plan, err := svc.GetByID(context.Background(), "plan-1")

		require.NoError(t, err)
		assert.Equal(t, stored, plan)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := newTestService(&mockRepository{}, &llm.MockGenerator{}, &mockRenderer{}, &mockExportStore{})

		_, err := svc.GetByID(context.Background(), "")

		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepository{getErr: repositories.ErrNotFound}
		svc := newTestService(repo, &llm.MockGenerator{}, &mockRenderer{}, &mockExportStore{})

		_, err := svc.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}

func TestLessonPlansService_List(t *testing.T) {
	t.Run("success with default limit", func(t *testing.T) {
		repo := &mockRepository{
			listItems: []models.LessonPlanListItem{{ID: "plan-1", Topic: "Fractions"}},
		}
		svc := newTestService(repo, &llm.MockGenerator{}, &mockRenderer{}, &mockExportStore{})

		plans, err := svc.List(context.Background(), 0)

		require.NoError(t, err)
		assert.Len(t, plans, 1)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockRepository{listErr: errors.New("database error")}
		svc := newTestService(repo, &llm.MockGenerator{}, &mockRenderer{}, &mockExportStore{})

		_, err := svc.List(context.Background(), 10)

		assert.Error(t, err)
	})
}

func TestLessonPlansService_Export(t *testing.T) {
	storedPlan := &models.LessonPlan{
		ID:         "plan-1",
		Topic:      "The   Water Cycle",
		Overview:   "Water moves in a cycle.",
		Activities: "Boil water.",
		Assessment: "Diagram quiz.",
	}

	t.Run("success", func(t *testing.T) {
		repo := &mockRepository{plan: storedPlan}
		renderer := &mockRenderer{content: []byte("%PDF-1.4 fake")}
		store := &mockExportStore{}
		svc := newTestService(repo, &llm.MockGenerator{}, renderer, store)

		exported, err := svc.Export(context.Background(), "plan-1")

		require.NoError(t, err)
		assert.Equal(t, "lesson-plan-the-water-cycle.pdf", exported.Filename)
		assert.Equal(t, []byte("%PDF-1.4 fake"), exported.Content)
		assert.Equal(t, "plan-1", store.savedID)
		assert.Equal(t, "lesson-plan-the-water-cycle.pdf", store.savedFilename)
		assert.Equal(t, []byte("%PDF-1.4 fake"), store.savedContent)
	})

	t.Run("plan not found", func(t *testing.T) {
		repo := &mockRepository{getErr: repositories.ErrNotFound}
		svc := newTestService(repo, &llm.MockGenerator{}, &mockRenderer{}, &mockExportStore{})

		_, err := svc.Export(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("renderer failure", func(t *testing.T) {
		repo := &mockRepository{plan: storedPlan}
		renderer := &mockRenderer{err: errors.New("render failed")}
		svc := newTestService(repo, &llm.MockGenerator{}, renderer, &mockExportStore{})

		_, err := svc.Export(context.Background(), "plan-1")

		assert.ErrorIs(t, err, ErrExportFailed)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockRepository{plan: storedPlan}
		renderer := &mockRenderer{content: []byte("pdf")}
		store := &mockExportStore{err: errors.New("disk full")}
		svc := newTestService(repo, &llm.MockGenerator{}, renderer, store)

		_, err := svc.Export(context.Background(), "plan-1")

		assert.ErrorIs(t, err, ErrExportFailed)
	})
}
