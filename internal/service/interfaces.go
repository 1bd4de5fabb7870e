package service

import (
	"context"

	"contentkit/pkg/blog"
	"contentkit/pkg/features"
	"contentkit/pkg/keyword"
	"contentkit/pkg/keyword/kwimport"
)

// KeywordService covers the keyword research table: listing with filters,
// planner-export imports and bulk score recalculation.
type KeywordService interface {
	List(ctx context.Context, filter keyword.Filter) ([]keyword.Record, error)
	Create(ctx context.Context, attrs keyword.Attrs) (*keyword.Record, error)
	Import(ctx context.Context, content string) (*kwimport.Result, error)
	Recalculate(ctx context.Context) (int, error)
}

// PostService covers blog post CRUD.
type PostService interface {
	Create(ctx context.Context, attrs blog.Attrs) (*blog.Post, error)
	Update(ctx context.Context, slug string, attrs blog.Attrs) (*blog.Post, error)
	Get(ctx context.Context, slug string) (*blog.Post, error)
	List(ctx context.Context, publishedOnly bool) ([]blog.Post, error)
	Delete(ctx context.Context, slug string) error
}

// FeatureService serves the cached product feature catalog.
type FeatureService interface {
	All() ([]features.Feature, error)
	Get(id string) (*features.Feature, error)
}

// GeneratorService drafts content through the generative APIs.
type GeneratorService interface {
	DraftPost(ctx context.Context, topic string) (string, error)
	CoverImage(ctx context.Context, topic string) (string, error)
}
