package handler

import (
	"github.com/gofiber/fiber/v3"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/models"
	"sflix-catalog-service/internal/validation"
)

// SessionHandler handles HTTP requests for the shared view session.
type SessionHandler struct {
	store     *catalog.Store
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store *catalog.Store) *SessionHandler {
	return &SessionHandler{store: store, validator: validation.New()}
}

func sessionResponse(c fiber.Ctx, s models.Session, err error) error {
	if err != nil {
		return writeError(c, err, "failed to update session")
	}
	return c.JSON(models.NewSessionView(s))
}

// GetSession returns the current session.
// @Summary Get session
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionView
// @Router /session [get]
func (h *SessionHandler) GetSession(c fiber.Ctx) error {
	return c.JSON(models.NewSessionView(h.store.Session()))
}

// SelectProfile makes a profile active.
// @Summary Select profile
// @Tags session
// @Accept json
// @Produce json
// @Param body body models.SelectProfileRequest true "Profile"
// @Success 200 {object} models.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /session/profile [put]
func (h *SessionHandler) SelectProfile(c fiber.Ctx) error {
	var req models.SelectProfileRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return writeError(c, err, "invalid request")
	}
	s, err := h.store.SelectProfile(req.ProfileID)
	return sessionResponse(c, s, err)
}

// SwitchProfile clears the active profile.
// @Summary Switch profile
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionView
// @Router /session/profile [delete]
func (h *SessionHandler) SwitchProfile(c fiber.Ctx) error {
	return c.JSON(models.NewSessionView(h.store.SwitchProfile()))
}

// SetView switches the current page.
// @Summary Set view
// @Tags session
// @Accept json
// @Produce json
// @Param body body models.SetViewRequest true "View"
// @Success 200 {object} models.SessionView
// @Failure 400 {object} ErrorResponse
// @Router /session/view [put]
func (h *SessionHandler) SetView(c fiber.Ctx) error {
	var req models.SetViewRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return writeError(c, err, "invalid request")
	}
	s, err := h.store.SetView(req.View)
	return sessionResponse(c, s, err)
}

// Select opens the detail view for a title.
// @Summary Open title detail
// @Tags session
// @Accept json
// @Produce json
// @Param body body models.SelectTitleRequest true "Title"
// @Success 200 {object} models.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /session/selection [put]
func (h *SessionHandler) Select(c fiber.Ctx) error {
	var req models.SelectTitleRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return writeError(c, err, "invalid request")
	}
	s, err := h.store.Select(req.TitleID)
	return sessionResponse(c, s, err)
}

// CloseSelection closes the detail view.
// @Summary Close title detail
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionView
// @Router /session/selection [delete]
func (h *SessionHandler) CloseSelection(c fiber.Ctx) error {
	return c.JSON(models.NewSessionView(h.store.CloseSelection()))
}

// Play starts the player. An empty body plays the current selection.
// @Summary Play
// @Tags session
// @Accept json
// @Produce json
// @Param body body models.PlayRequest false "Title"
// @Success 200 {object} models.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /session/play [post]
func (h *SessionHandler) Play(c fiber.Ctx) error {
	var req models.PlayRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	s, err := h.store.Play(req.TitleID)
	return sessionResponse(c, s, err)
}
