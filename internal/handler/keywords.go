package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"contentkit/pkg/keyword"
	"contentkit/pkg/keyword/kwimport"
)

// ListKeywords returns the keyword research table, filtered by query
// parameters.
func (h *Handler) ListKeywords(c *fiber.Ctx) error {
	filter := keyword.Filter{
		Category:       keyword.Category(c.Query("category")),
		Intent:         keyword.Intent(c.Query("intent")),
		Audience:       keyword.Audience(c.Query("audience")),
		MinScore:       c.QueryInt("min_score"),
		QuestionsOnly:  c.QueryBool("questions_only"),
		ExcludeBranded: c.QueryBool("exclude_branded"),
	}

	records, err := h.keywords.List(c.Context(), filter)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{
		"keywords":   records,
		"categories": keyword.CountByCategory(records),
	})
}

type createKeywordRequest struct {
	Text             string `json:"text"`
	MonthlySearches  *int   `json:"monthly_searches"`
	CompetitionIndex *int   `json:"competition_index"`
}

// CreateKeyword adds a single keyword interactively; classification and
// score are derived server-side.
func (h *Handler) CreateKeyword(c *fiber.Ctx) error {
	var req createKeywordRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	rec, err := h.keywords.Create(c.Context(), keyword.Attrs{
		Text:             req.Text,
		MonthlySearches:  req.MonthlySearches,
		CompetitionIndex: req.CompetitionIndex,
	})
	if err != nil {
		if errors.Is(err, keyword.ErrDuplicate) {
			return errorJSON(c, fiber.StatusConflict, err)
		}
		var verr *keyword.ValidationError
		if errors.As(err, &verr) {
			return errorJSON(c, fiber.StatusUnprocessableEntity, err)
		}
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ImportKeywords ingests an uploaded planner export. The file arrives as
// a multipart upload or as the raw request body.
func (h *Handler) ImportKeywords(c *fiber.Ctx) error {
	content, err := importContent(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	result, err := h.keywords.Import(c.Context(), content)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err)
	}
	return c.JSON(result)
}

// RecalculateKeywords re-derives and re-scores every stored keyword.
func (h *Handler) RecalculateKeywords(c *fiber.Ctx) error {
	updated, err := h.keywords.Recalculate(c.Context())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

func importContent(c *fiber.Ctx) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return kwimport.Decode(raw), nil
	}
	return kwimport.Decode(c.Body()), nil
}
