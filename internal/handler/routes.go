package handler

import (
	"github.com/gofiber/fiber/v3"
)

// Handlers groups the route handlers mounted under /api/v1.
type Handlers struct {
	Titles          *TitleHandler
	Feed            *FeedHandler
	Recommendations *RecommendationHandler
	Profiles        *ProfileHandler
	Session         *SessionHandler
}

// RegisterRoutes mounts the API. limit guards the recommendation routes and
// may be nil.
func RegisterRoutes(app fiber.Router, h Handlers, limit fiber.Handler) {
	app.Get("/health", Health)

	api := app.Group("/api/v1")

	api.Get("/titles", h.Titles.ListTitles)
	api.Post("/titles", h.Titles.CreateTitle)
	api.Get("/titles/search", h.Titles.SearchTitles)
	api.Get("/titles/:id", h.Titles.GetTitle)
	api.Put("/titles/:id", h.Titles.UpdateTitle)
	api.Delete("/titles/:id", h.Titles.DeleteTitle)

	api.Get("/feed", h.Feed.GetFeed)
	api.Post("/feed/refresh", h.Feed.RefreshFeed)

	recs := api.Group("/recommendations")
	if limit != nil {
		recs.Use(limit)
	}
	recs.Post("/search", h.Recommendations.Search)
	recs.Get("/category", h.Recommendations.Category)
	recs.Get("/log", h.Recommendations.Log)

	api.Get("/profiles", h.Profiles.ListProfiles)
	api.Post("/profiles", h.Profiles.AddProfile)
	api.Get("/profiles/:id", h.Profiles.GetProfile)
	api.Get("/profiles/:id/my-list", h.Profiles.GetMyList)
	api.Post("/profiles/:id/my-list", h.Profiles.ToggleMyList)

	api.Get("/session", h.Session.GetSession)
	api.Put("/session/profile", h.Session.SelectProfile)
	api.Delete("/session/profile", h.Session.SwitchProfile)
	api.Put("/session/view", h.Session.SetView)
	api.Put("/session/selection", h.Session.Select)
	api.Delete("/session/selection", h.Session.CloseSelection)
	api.Post("/session/play", h.Session.Play)
}
