package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"contentkit/pkg/features"
)

// ListFeatures returns the full product feature catalog.
func (h *Handler) ListFeatures(c *fiber.Ctx) error {
	catalog, err := h.features.All()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"features": catalog})
}

// GetFeature returns one catalog entry by id.
func (h *Handler) GetFeature(c *fiber.Ctx) error {
	feature, err := h.features.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, features.ErrFeatureNotFound) {
			return errorJSON(c, fiber.StatusNotFound, err)
		}
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(feature)
}
