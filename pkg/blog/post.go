// Package blog provides blog post CRUD with markdown rendering for the
// host application.
package blog

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateSlug = errors.New("slug already exists")
)

// Post is a blog entry. Body holds the authored markdown; HTML is the
// rendered form and is regenerated whenever the body changes.
type Post struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	HTML        string     `json:"html"`
	Excerpt     string     `json:"excerpt"`
	Tags        []string   `json:"tags,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Attrs carries caller-supplied fields for creating or updating a post.
// An empty slug is generated from the title.
type Attrs struct {
	Slug      string
	Title     string
	Body      string
	Tags      []string
	Published *bool
}

// Store is the persistence collaborator for posts.
type Store interface {
	FindBySlug(ctx context.Context, slug string) (*Post, error)
	Insert(ctx context.Context, post Post) (*Post, error)
	Update(ctx context.Context, post Post) (*Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]Post, error)
}
