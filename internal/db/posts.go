package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"contentkit/pkg/blog"
)

// postColumns is the standard column list for post queries.
const postColumns = `id, slug, title, body, html, excerpt, tags, published,
	published_at, created_at, updated_at`

// PostStore implements blog.Store against Postgres.
type PostStore struct {
	db *DB
}

// NewPostStore creates a Postgres post store.
func NewPostStore(db *DB) *PostStore {
	return &PostStore{db: db}
}

func scanPost(row pgx.Row) (*blog.Post, error) {
	var post blog.Post
	err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Body,
		&post.HTML,
		&post.Excerpt,
		&post.Tags,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, blog.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug fetches a post by slug.
func (s *PostStore) FindBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`
	return scanPost(s.db.Pool.QueryRow(ctx, query, slug))
}

// Insert persists a new post, mapping slug uniqueness violations to
// blog.ErrDuplicateSlug.
func (s *PostStore) Insert(ctx context.Context, post blog.Post) (*blog.Post, error) {
	query := `
		INSERT INTO posts (id, slug, title, body, html, excerpt, tags, published,
			published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + postColumns

	row := s.db.Pool.QueryRow(ctx, query,
		post.ID, post.Slug, post.Title, post.Body, post.HTML, post.Excerpt,
		post.Tags, post.Published, post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)

	inserted, err := scanPost(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, blog.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	return inserted, nil
}

// Update replaces the stored post.
func (s *PostStore) Update(ctx context.Context, post blog.Post) (*blog.Post, error) {
	query := `
		UPDATE posts
		SET slug = $2, title = $3, body = $4, html = $5, excerpt = $6, tags = $7,
			published = $8, published_at = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + postColumns

	row := s.db.Pool.QueryRow(ctx, query,
		post.ID, post.Slug, post.Title, post.Body, post.HTML, post.Excerpt,
		post.Tags, post.Published, post.PublishedAt, post.UpdatedAt,
	)

	updated, err := scanPost(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, blog.ErrDuplicateSlug
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a post by id.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

// List returns posts newest first, optionally published only.
func (s *PostStore) List(ctx context.Context, publishedOnly bool) ([]blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	if publishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []blog.Post
	for rows.Next() {
		var post blog.Post
		if err := rows.Scan(
			&post.ID,
			&post.Slug,
			&post.Title,
			&post.Body,
			&post.HTML,
			&post.Excerpt,
			&post.Tags,
			&post.Published,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
