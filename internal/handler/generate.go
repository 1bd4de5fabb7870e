package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errGeneratorUnavailable = errors.New("generative APIs are not configured")

type generateRequest struct {
	Topic string `json:"topic"`
}

// GenerateDraft asks the text API for a markdown post draft on a topic.
func (h *Handler) GenerateDraft(c *fiber.Ctx) error {
	if h.generator == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, errGeneratorUnavailable)
	}
	topic, err := parseTopic(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	draft, err := h.generator.DraftPost(c.Context(), topic)
	if err != nil {
		return errorJSON(c, fiber.StatusBadGateway, err)
	}
	return c.JSON(fiber.Map{"draft": draft})
}

// GenerateCover asks the image API for a cover image URL on a topic.
func (h *Handler) GenerateCover(c *fiber.Ctx) error {
	if h.generator == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, errGeneratorUnavailable)
	}
	topic, err := parseTopic(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	url, err := h.generator.CoverImage(c.Context(), topic)
	if err != nil {
		return errorJSON(c, fiber.StatusBadGateway, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

func parseTopic(c *fiber.Ctx) (string, error) {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return "", err
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return "", errors.New("topic can't be blank")
	}
	return topic, nil
}
