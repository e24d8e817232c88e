package handler

import (
	"github.com/gofiber/fiber/v3"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/models"
	"sflix-catalog-service/internal/validation"
)

// ProfileHandler handles HTTP requests for viewer profiles.
type ProfileHandler struct {
	store     *catalog.Store
	validator *validation.Validator
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store *catalog.Store) *ProfileHandler {
	return &ProfileHandler{store: store, validator: validation.New()}
}

// ListProfiles returns every profile.
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} models.ProfileView
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c fiber.Ctx) error {
	profiles := h.store.Profiles()
	views := make([]models.ProfileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, models.NewProfileView(p))
	}
	return c.JSON(views)
}

// AddProfile creates a profile with a generated name and colour.
// @Summary Add profile
// @Tags profiles
// @Produce json
// @Success 201 {object} models.ProfileView
// @Router /profiles [post]
func (h *ProfileHandler) AddProfile(c fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(models.NewProfileView(h.store.AddProfile()))
}

// GetProfile returns a single profile.
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.ProfileView
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	p, err := h.store.Profile(c.Params("id"))
	if err != nil {
		return writeError(c, err, "failed to retrieve profile")
	}
	return c.JSON(models.NewProfileView(p))
}

// GetMyList returns a profile's personal list.
// @Summary Get my list
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {array} models.TitleView
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id}/my-list [get]
func (h *ProfileHandler) GetMyList(c fiber.Ctx) error {
	list, err := h.store.MyList(c.Params("id"))
	if err != nil {
		return writeError(c, err, "failed to retrieve list")
	}
	return c.JSON(models.NewTitleViews(list))
}

// ToggleMyList adds a title to a profile's list, or removes it if present.
// @Summary Toggle my list
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param body body models.ToggleMyListRequest true "Title to toggle"
// @Success 200 {object} models.ToggleMyListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id}/my-list [post]
func (h *ProfileHandler) ToggleMyList(c fiber.Ctx) error {
	var req models.ToggleMyListRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return writeError(c, err, "invalid request")
	}

	profileID := c.Params("id")
	inList, list, err := h.store.ToggleMyList(profileID, req.TitleID)
	if err != nil {
		return writeError(c, err, "failed to update list")
	}
	return c.JSON(models.ToggleMyListResponse{
		ProfileID: profileID,
		InList:    inList,
		MyList:    models.NewTitleViews(list),
	})
}
