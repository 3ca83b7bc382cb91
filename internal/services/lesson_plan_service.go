package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lessonplanner/backend/internal/llm"
	"github.com/lessonplanner/backend/internal/models"
	"github.com/lessonplanner/backend/internal/planner"
	"github.com/lessonplanner/backend/internal/repositories"
	"go.uber.org/zap"
)

var (
	// ErrPlanNotFound is returned when no stored plan exists for the requested ID.
	ErrPlanNotFound = errors.New("lesson plan not found")
	// ErrExportFailed is returned when PDF rendering or storage fails.
	ErrExportFailed = errors.New("failed to generate PDF")
)

// LessonPlansRepository is the interface that wraps methods for lesson plan data access
type LessonPlansRepository interface {
	// Insert stores a generated lesson plan.
	Insert(ctx context.Context, plan *models.LessonPlan) error
	// GetByID retrieves a lesson plan by its ID.
	//
	// If no plan exists for the ID, repositories.ErrNotFound is returned.
	GetByID(ctx context.Context, id string) (*models.LessonPlan, error)
	// List retrieves the most recently generated plans, newest first, up to "limit" entries.
	List(ctx context.Context, limit int) ([]models.LessonPlanListItem, error)
}

// PlanRenderer renders a stored plan into a downloadable document.
type PlanRenderer interface {
	Render(plan *models.LessonPlan) ([]byte, error)
}

// ExportStore persists rendered export documents.
type ExportStore interface {
	Save(planID, filename string, content []byte) error
}

type lessonPlansService struct {
	repo      LessonPlansRepository
	generator llm.TextGenerator
	renderer  PlanRenderer
	exports   ExportStore
	logger    *zap.Logger
}

// NewLessonPlansService creates a new lesson plan service
func NewLessonPlansService(
	repo LessonPlansRepository,
	generator llm.TextGenerator,
	renderer PlanRenderer,
	exports ExportStore,
	logger *zap.Logger,
) *lessonPlansService {
	return &lessonPlansService{
		repo:      repo,
		generator: generator,
		renderer:  renderer,
		exports:   exports,
		logger:    logger,
	}
}

// Generate runs the full pipeline for one submission: validate the input,
// build the prompt, invoke the model, parse the response into the three
// sections, and persist the result.
//
// Errors keep their category so handlers can map them to HTTP statuses:
// *planner.ValidationError for blank fields, llm.ErrMissingAPIKey for a
// missing credential, llm.ErrEmptyResponse / planner.ErrBadFormat /
// planner.ErrIncompletePlan for unusable model output.
func (s *lessonPlansService) Generate(ctx context.Context, input models.LessonPlanInput) (*models.LessonPlan, error) {
	prompt, err := planner.BuildPrompt(input)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("text generation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate lesson plan: %w", err)
	}

	generated, err := planner.ParseResponse(text)
	if err != nil {
		s.logger.Error("failed to parse generated lesson plan", zap.Error(err))
		return nil, fmt.Errorf("failed to parse lesson plan: %w", err)
	}

	plan := &models.LessonPlan{
		ID:            uuid.New().String(),
		Topic:         input.Topic,
		GradeLevel:    input.GradeLevel,
		MainConcept:   input.MainConcept,
		SubTopics:     input.SubTopics,
		Materials:     input.Materials,
		Objectives:    input.Objectives,
		LessonOutline: input.LessonOutline,
		Overview:      generated.Overview,
		Activities:    generated.Activities,
		Assessment:    generated.Assessment,
		Model:         s.generator.Model(),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, plan); err != nil {
		s.logger.Error("failed to store lesson plan", zap.Error(err), zap.String("id", plan.ID))
		return nil, fmt.Errorf("failed to store lesson plan: %w", err)
	}

	return plan, nil
}

// GetByID retrieves a stored lesson plan
func (s *lessonPlansService) GetByID(ctx context.Context, id string) (*models.LessonPlan, error) {
	if id == "" {
		return nil, fmt.Errorf("lesson plan id is required")
	}

	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("failed to get lesson plan", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get lesson plan: %w", err)
	}

	return plan, nil
}

// List retrieves the most recent lesson plans
func (s *lessonPlansService) List(ctx context.Context, limit int) ([]models.LessonPlanListItem, error) {
	if limit <= 0 {
		limit = 20
	}

	plans, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list lesson plans", zap.Error(err))
		return nil, fmt.Errorf("failed to list lesson plans: %w", err)
	}

	return plans, nil
}

// Export renders the plan as a PDF, stores a copy, and returns the document.
// The filename is "lesson-plan-" plus the slugified topic.
func (s *lessonPlansService) Export(ctx context.Context, id string) (*models.ExportedPlan, error) {
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.renderer.Render(plan)
	if err != nil {
		s.logger.Error("failed to render lesson plan PDF", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	filename := fmt.Sprintf("lesson-plan-%s.pdf", planner.Slugify(plan.Topic))

	if err := s.exports.Save(plan.ID, filename, content); err != nil {
		s.logger.Error("failed to store exported PDF", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return &models.ExportedPlan{
		Filename: filename,
		Content:  content,
	}, nil
}
