package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"sflix-catalog-service/internal/service"
)

// FeedHandler serves the home feed.
type FeedHandler struct {
	feed *service.FeedService
	// ctx bounds background row loads; it is cancelled on shutdown.
	ctx context.Context
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(ctx context.Context, feed *service.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed, ctx: ctx}
}

// GetFeed returns the hero, the category rows and the loading flag.
// @Summary Home feed
// @Tags feed
// @Produce json
// @Success 200 {object} models.Feed
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c fiber.Ctx) error {
	return c.JSON(h.feed.Feed())
}

// RefreshFeed starts a new load of the generated rows in the background.
// @Summary Reload generated rows
// @Tags feed
// @Produce json
// @Success 202 {object} map[string]string
// @Router /feed/refresh [post]
func (h *FeedHandler) RefreshFeed(c fiber.Ctx) error {
	go h.feed.LoadDynamicRows(h.ctx)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "row load started",
	})
}
