package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/models"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// TitleHandler handles HTTP requests for catalog titles.
type TitleHandler struct {
	store *catalog.Store
}

// NewTitleHandler creates a new TitleHandler.
func NewTitleHandler(store *catalog.Store) *TitleHandler {
	return &TitleHandler{store: store}
}

// ListTitles returns the whole catalog, newest first.
// @Summary List titles
// @Tags titles
// @Produce json
// @Success 200 {array} models.TitleView
// @Router /titles [get]
func (h *TitleHandler) ListTitles(c fiber.Ctx) error {
	return c.JSON(models.NewTitleViews(h.store.List()))
}

// GetTitle returns a single title.
// @Summary Get title
// @Tags titles
// @Produce json
// @Param id path string true "Title ID"
// @Success 200 {object} models.TitleView
// @Failure 404 {object} ErrorResponse
// @Router /titles/{id} [get]
func (h *TitleHandler) GetTitle(c fiber.Ctx) error {
	t, err := h.store.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err, "failed to retrieve title")
	}
	return c.JSON(models.NewTitleView(t))
}

// CreateTitle adds a title to the front of the catalog.
// @Summary Create title
// @Tags titles
// @Accept json
// @Produce json
// @Param body body models.TitleForm true "Title form"
// @Success 201 {object} models.TitleView
// @Failure 400 {object} ErrorResponse
// @Router /titles [post]
func (h *TitleHandler) CreateTitle(c fiber.Ctx) error {
	var form models.TitleForm
	if err := c.Bind().JSON(&form); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.store.Create(form)
	if err != nil {
		return writeError(c, err, "failed to create title")
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewTitleView(t))
}

// UpdateTitle replaces a title's fields, keeping its id.
// @Summary Update title
// @Tags titles
// @Accept json
// @Produce json
// @Param id path string true "Title ID"
// @Param body body models.TitleForm true "Title form"
// @Success 200 {object} models.TitleView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /titles/{id} [put]
func (h *TitleHandler) UpdateTitle(c fiber.Ctx) error {
	var form models.TitleForm
	if err := c.Bind().JSON(&form); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.store.Update(c.Params("id"), form)
	if err != nil {
		return writeError(c, err, "failed to update title")
	}
	return c.JSON(models.NewTitleView(t))
}

// DeleteTitle removes a title from the catalog.
// @Summary Delete title
// @Tags titles
// @Param id path string true "Title ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /titles/{id} [delete]
func (h *TitleHandler) DeleteTitle(c fiber.Ctx) error {
	if err := h.store.Delete(c.Params("id")); err != nil {
		return writeError(c, err, "failed to delete title")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SearchTitles runs a full-text search over the local catalog.
// @Summary Search catalog
// @Tags titles
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} models.TitleView
// @Failure 400 {object} ErrorResponse
// @Router /titles/search [get]
func (h *TitleHandler) SearchTitles(c fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return badRequest(c, "query parameter q is required")
	}
	limit := fiber.Query(c, "limit", defaultSearchLimit)
	if limit < 1 || limit > maxSearchLimit {
		limit = defaultSearchLimit
	}

	results, err := h.store.Search(q, limit)
	if err != nil {
		return writeError(c, err, "failed to search catalog")
	}
	return c.JSON(models.NewTitleViews(results))
}
