package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lessonplanner/backend/internal/llm"
	"github.com/lessonplanner/backend/internal/models"
	"github.com/lessonplanner/backend/internal/planner"
	"github.com/lessonplanner/backend/internal/services"
	"go.uber.org/zap"
)

// LessonPlansService is the interface that wraps methods for lesson plan business logic.
type LessonPlansService interface {
	// Method Generate runs the full generation pipeline for one submission.
	//
	// Validation failures are reported as *planner.ValidationError naming every blank field.
	// A missing API credential is reported as llm.ErrMissingAPIKey before any network call.
	// Unusable model output is reported as llm.ErrEmptyResponse, planner.ErrBadFormat or
	// planner.ErrIncompletePlan, wrapped with context.
	Generate(ctx context.Context, input models.LessonPlanInput) (*models.LessonPlan, error)
	// Method GetByID retrieves a stored lesson plan; services.ErrPlanNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.LessonPlan, error)
	// Method List retrieves the most recent lesson plans, newest first.
	List(ctx context.Context, limit int) ([]models.LessonPlanListItem, error)
	// Method Export renders a stored plan as a PDF document; services.ErrExportFailed
	// when rendering or storing the document fails.
	Export(ctx context.Context, id string) (*models.ExportedPlan, error)
}

// LessonPlansHandler handles HTTP requests for lesson plans
type LessonPlansHandler struct {
	BaseHandler
	service LessonPlansService
}

// NewLessonPlansHandler creates a new lesson plan handler
func NewLessonPlansHandler(svc LessonPlansService, logger *zap.Logger) *LessonPlansHandler {
	return &LessonPlansHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson plan handler routes
func (h *LessonPlansHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lesson-plans", func(r chi.Router) {
		r.Post("/", h.Generate)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Get("/{id}/export", h.Export)
	})
}

// Generate handles POST /api/v1/lesson-plans
// @Summary Generate a lesson plan
// @Description Build a prompt from the submitted parameters, invoke the generative model and store the parsed plan
// @Tags lesson-plans
// @Accept json
// @Produce json
// @Param input body models.LessonPlanInput true "Lesson plan parameters"
// @Success 201 {object} models.LessonPlan
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/lesson-plans [post]
func (h *LessonPlansHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input models.LessonPlanInput
	if err := decodeJSON(r, &input); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.service.Generate(r.Context(), input)
	if err != nil {
		h.respondGenerateError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, plan)
}

// respondGenerateError maps generation pipeline errors to HTTP statuses.
func (h *LessonPlansHandler) respondGenerateError(w http.ResponseWriter, err error) {
	var validationErr *planner.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, llm.ErrMissingAPIKey):
		h.respondError(w, http.StatusServiceUnavailable, "generation service is not configured")
	case errors.Is(err, llm.ErrEmptyResponse),
		errors.Is(err, planner.ErrBadFormat),
		errors.Is(err, planner.ErrIncompletePlan):
		h.logger.Error("unusable model response", zap.Error(err))
		h.respondError(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Error("failed to generate lesson plan", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to generate lesson plan")
	}
}

// List handles GET /api/v1/lesson-plans
// @Summary List lesson plans
// @Description Get the most recently generated lesson plans
// @Tags lesson-plans
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of plans to return, default: 20"
// @Success 200 {array} models.LessonPlanListItem
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lesson-plans [get]
func (h *LessonPlansHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	plans, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list lesson plans", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list lesson plans")
		return
	}

	if plans == nil {
		plans = []models.LessonPlanListItem{}
	}
	h.respondJSON(w, http.StatusOK, plans)
}

// GetByID handles GET /api/v1/lesson-plans/{id}
// @Summary Get lesson plan by ID
// @Description Get a stored lesson plan by its ID
// @Tags lesson-plans
// @Accept json
// @Produce json
// @Param id path string true "Lesson plan ID"
// @Success 200 {object} models.LessonPlan
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lesson-plans/{id} [get]
func (h *LessonPlansHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	plan, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			h.respondError(w, http.StatusNotFound, "lesson plan not found")
			return
		}
		h.logger.Error("failed to get lesson plan", zap.Error(err), zap.String("id", id))
		h.respondError(w, http.StatusInternalServerError, "failed to get lesson plan")
		return
	}

	h.respondJSON(w, http.StatusOK, plan)
}

// Export handles GET /api/v1/lesson-plans/{id}/export
// @Summary Export a lesson plan as PDF
// @Description Render a stored lesson plan as a downloadable PDF document
// @Tags lesson-plans
// @Produce application/pdf
// @Param id path string true "Lesson plan ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lesson-plans/{id}/export [get]
func (h *LessonPlansHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	exported, err := h.service.Export(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			h.respondError(w, http.StatusNotFound, "lesson plan not found")
			return
		}
		h.logger.Error("failed to export lesson plan", zap.Error(err), zap.String("id", id))
		h.respondError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, exported.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(exported.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(exported.Content); err != nil {
		h.logger.Error("failed to write PDF response", zap.Error(err))
	}
}
