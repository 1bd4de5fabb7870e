package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"contentkit/pkg/blog"
)

type postRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Body      string   `json:"body"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

func (r postRequest) attrs() blog.Attrs {
	return blog.Attrs{
		Title:     r.Title,
		Slug:      r.Slug,
		Body:      r.Body,
		Tags:      r.Tags,
		Published: r.Published,
	}
}

// ListPosts returns posts, newest first. ?published=true restricts the
// list to published posts.
func (h *Handler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.Context(), c.QueryBool("published"))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost renders and stores a new post.
func (h *Handler) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	post, err := h.posts.Create(c.Context(), req.attrs())
	if err != nil {
		if errors.Is(err, blog.ErrDuplicateSlug) {
			return errorJSON(c, fiber.StatusConflict, err)
		}
		return errorJSON(c, fiber.StatusUnprocessableEntity, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost fetches one post by slug.
func (h *Handler) GetPost(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.Context(), c.Params("slug"))
	if err != nil {
		return postError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost applies a partial update to the post behind the slug.
func (h *Handler) UpdatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	post, err := h.posts.Update(c.Context(), c.Params("slug"), req.attrs())
	if err != nil {
		return postError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes the post behind the slug.
func (h *Handler) DeletePost(c *fiber.Ctx) error {
	if err := h.posts.Delete(c.Context(), c.Params("slug")); err != nil {
		return postError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func postError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, blog.ErrPostNotFound):
		return errorJSON(c, fiber.StatusNotFound, err)
	case errors.Is(err, blog.ErrDuplicateSlug):
		return errorJSON(c, fiber.StatusConflict, err)
	default:
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
}
