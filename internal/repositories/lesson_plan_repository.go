package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lessonplanner/backend/internal/models"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no lesson plan exists for the requested ID.
var ErrNotFound = errors.New("lesson plan not found")

type lessonPlansRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewLessonPlansRepository creates a new instance of the LessonPlansRepository interface
func NewLessonPlansRepository(db *sql.DB, logger *zap.Logger) *lessonPlansRepository {
	return &lessonPlansRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores a generated lesson plan.
func (r *lessonPlansRepository) Insert(ctx context.Context, plan *models.LessonPlan) error {
	query := `
		INSERT INTO lesson_plans
			(id, topic, grade_level, main_concept, sub_topics, materials, objectives,
			 lesson_outline, overview, activities, assessment, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		plan.ID,
		plan.Topic,
		plan.GradeLevel,
		plan.MainConcept,
		plan.SubTopics,
		plan.Materials,
		plan.Objectives,
		plan.LessonOutline,
		plan.Overview,
		plan.Activities,
		plan.Assessment,
		plan.Model,
		plan.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert lesson plan", zap.Error(err), zap.String("id", plan.ID))
		return fmt.Errorf("failed to insert lesson plan: %w", err)
	}

	return nil
}

// GetByID retrieves a lesson plan by its ID. Returns ErrNotFound when no row matches.
func (r *lessonPlansRepository) GetByID(ctx context.Context, id string) (*models.LessonPlan, error) {
	query := `
		SELECT id, topic, grade_level, main_concept, sub_topics, materials, objectives,
		       lesson_outline, overview, activities, assessment, model, created_at
		FROM lesson_plans
		WHERE id = ?
	`

	var plan models.LessonPlan
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID,
		&plan.Topic,
		&plan.GradeLevel,
		&plan.MainConcept,
		&plan.SubTopics,
		&plan.Materials,
		&plan.Objectives,
		&plan.LessonOutline,
		&plan.Overview,
		&plan.Activities,
		&plan.Assessment,
		&plan.Model,
		&plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error("failed to query lesson plan", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to query lesson plan: %w", err)
	}

	return &plan, nil
}

// List retrieves the most recently generated plans, newest first.
func (r *lessonPlansRepository) List(ctx context.Context, limit int) ([]models.LessonPlanListItem, error) {
	query := `
		SELECT id, topic, grade_level, created_at
		FROM lesson_plans
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("failed to query lesson plans", zap.Error(err))
		return nil, fmt.Errorf("failed to query lesson plans: %w", err)
	}
	defer rows.Close()

	var plans []models.LessonPlanListItem
	for rows.Next() {
		var item models.LessonPlanListItem
		if err := rows.Scan(&item.ID, &item.Topic, &item.GradeLevel, &item.CreatedAt); err != nil {
			r.logger.Error("failed to scan lesson plan", zap.Error(err))
			return nil, fmt.Errorf("failed to scan lesson plan: %w", err)
		}
		plans = append(plans, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return plans, nil
}
