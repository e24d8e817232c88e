package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/models"
	"sflix-catalog-service/internal/validation"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

// Recommender is the recommendation gateway.
type Recommender interface {
	FetchByQuery(ctx context.Context, query string) models.Recommendations
	FetchByCategory(ctx context.Context, category string) models.Recommendations
}

// AuditReader lists recorded gateway calls.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.RecommendationLogEntry, error)
}

// RecommendationHandler handles HTTP requests for generated recommendations.
type RecommendationHandler struct {
	store     *catalog.Store
	recs      Recommender
	audit     AuditReader
	validator *validation.Validator
}

// NewRecommendationHandler creates a new RecommendationHandler. audit may be
// nil when no database is configured.
func NewRecommendationHandler(store *catalog.Store, recs Recommender, audit AuditReader) *RecommendationHandler {
	return &RecommendationHandler{
		store:     store,
		recs:      recs,
		audit:     audit,
		validator: validation.New(),
	}
}

// Search asks the gateway for titles matching a mood and records them as the
// session's search results.
// @Summary Search recommendations
// @Tags recommendations
// @Accept json
// @Produce json
// @Param body body models.RecommendationSearchRequest true "Search query"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} ErrorResponse
// @Router /recommendations/search [post]
func (h *RecommendationHandler) Search(c fiber.Ctx) error {
	var req models.RecommendationSearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.Query = strings.TrimSpace(req.Query)
	if err := h.validator.Validate(req); err != nil {
		return writeError(c, err, "invalid search")
	}

	gen := h.store.BeginSearch(req.Query)
	result := h.recs.FetchByQuery(c.Context(), req.Query)
	if !h.store.FinishSearch(gen, result.List()) {
		slog.Debug("search superseded before it completed", "query", req.Query)
	}

	return c.JSON(models.NewRecommendationResponse(result))
}

// Category asks the gateway for titles themed on a category label.
// @Summary Category recommendations
// @Tags recommendations
// @Produce json
// @Param name query string true "Category label"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} ErrorResponse
// @Router /recommendations/category [get]
func (h *RecommendationHandler) Category(c fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return badRequest(c, "query parameter name is required")
	}
	return c.JSON(models.NewRecommendationResponse(h.recs.FetchByCategory(c.Context(), name)))
}

// Log returns the most recent gateway calls.
// @Summary Recommendation audit log
// @Tags recommendations
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} models.RecommendationLogEntry
// @Failure 503 {object} ErrorResponse
// @Router /recommendations/log [get]
func (h *RecommendationHandler) Log(c fiber.Ctx) error {
	if h.audit == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "audit log requires a database",
		})
	}

	limit := fiber.Query(c, "limit", defaultLogLimit)
	if limit < 1 {
		limit = defaultLogLimit
	}
	limit = min(limit, maxLogLimit)

	entries, err := h.audit.ListRecent(c.Context(), limit)
	if err != nil {
		return writeError(c, err, "failed to read audit log")
	}
	return c.JSON(entries)
}
