package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"contentkit/pkg/logger"
)

const excerptLength = 280

// Service implements post CRUD on top of a Store and a Renderer.
type Service struct {
	store    Store
	renderer Renderer
	log      *logger.Logger
}

// NewService creates a post service.
func NewService(store Store, renderer Renderer) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		log:      logger.GetLogger().WithComponent("blog_service"),
	}
}

// Create renders and persists a new post. A missing slug is generated
// from the title.
func (s *Service) Create(ctx context.Context, attrs Attrs) (*Post, error) {
	title := strings.TrimSpace(attrs.Title)
	if title == "" {
		return nil, fmt.Errorf("title can't be blank")
	}

	slug := attrs.Slug
	if slug == "" {
		slug = Slugify(title)
	}

	html, err := s.renderer.Render(attrs.Body)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := Post{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     title,
		Body:      attrs.Body,
		HTML:      html,
		Excerpt:   Excerpt(attrs.Body, excerptLength),
		Tags:      attrs.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if attrs.Published != nil && *attrs.Published {
		post.Published = true
		post.PublishedAt = &now
	}

	created, err := s.store.Insert(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.WithField("slug", created.Slug).Info("Post created")
	return created, nil
}

// Update applies attrs to an existing post, re-rendering the body when it
// changed.
func (s *Service) Update(ctx context.Context, slug string, attrs Attrs) (*Post, error) {
	post, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if attrs.Title != "" {
		post.Title = attrs.Title
	}
	if attrs.Slug != "" {
		post.Slug = attrs.Slug
	}
	if attrs.Tags != nil {
		post.Tags = attrs.Tags
	}
	if attrs.Body != "" && attrs.Body != post.Body {
		html, err := s.renderer.Render(attrs.Body)
		if err != nil {
			return nil, err
		}
		post.Body = attrs.Body
		post.HTML = html
		post.Excerpt = Excerpt(attrs.Body, excerptLength)
	}

	now := time.Now().UTC()
	if attrs.Published != nil && *attrs.Published != post.Published {
		post.Published = *attrs.Published
		if post.Published {
			post.PublishedAt = &now
		} else {
			post.PublishedAt = nil
		}
	}
	post.UpdatedAt = now

	return s.store.Update(ctx, *post)
}

// Get fetches a post by slug.
func (s *Service) Get(ctx context.Context, slug string) (*Post, error) {
	return s.store.FindBySlug(ctx, slug)
}

// List returns posts, optionally restricted to published ones.
func (s *Service) List(ctx context.Context, publishedOnly bool) ([]Post, error) {
	return s.store.List(ctx, publishedOnly)
}

// Delete removes a post by slug.
func (s *Service) Delete(ctx context.Context, slug string) error {
	post, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, post.ID)
}
