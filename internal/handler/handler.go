// Package handler exposes the library over a small fiber surface for
// hosts that want HTTP out of the box.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"contentkit/internal/service"
	"contentkit/pkg/logger"
)

// Handler bundles the services behind the HTTP routes.
type Handler struct {
	keywords  service.KeywordService
	posts     service.PostService
	features  service.FeatureService
	generator service.GeneratorService
	log       *logger.Logger
}

// New creates the handler set. The generator may be nil when no API
// credentials are configured; its routes then return 503.
func New(keywords service.KeywordService, posts service.PostService, features service.FeatureService, generator service.GeneratorService) *Handler {
	return &Handler{
		keywords:  keywords,
		posts:     posts,
		features:  features,
		generator: generator,
		log:       logger.GetLogger().WithComponent("handler"),
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/keywords", h.ListKeywords)
	api.Post("/keywords", h.CreateKeyword)
	api.Post("/keywords/import", h.ImportKeywords)
	api.Post("/keywords/recalculate", h.RecalculateKeywords)

	api.Get("/posts", h.ListPosts)
	api.Post("/posts", h.CreatePost)
	api.Get("/posts/:slug", h.GetPost)
	api.Put("/posts/:slug", h.UpdatePost)
	api.Delete("/posts/:slug", h.DeletePost)

	api.Get("/features", h.ListFeatures)
	api.Get("/features/:id", h.GetFeature)

	api.Post("/generate/draft", h.GenerateDraft)
	api.Post("/generate/cover", h.GenerateCover)
}

func errorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
