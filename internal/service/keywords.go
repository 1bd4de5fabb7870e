package service

import (
	"context"

	"contentkit/pkg/keyword"
	"contentkit/pkg/keyword/kwimport"
)

type keywordService struct {
	store    keyword.Store
	importer *kwimport.Importer
}

// NewKeywordService wires the keyword core to a store.
func NewKeywordService(store keyword.Store) KeywordService {
	return &keywordService{
		store:    store,
		importer: kwimport.New(store),
	}
}

func (s *keywordService) List(ctx context.Context, filter keyword.Filter) ([]keyword.Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records = filter.Apply(records)
	keyword.SortByScore(records)
	return records, nil
}

func (s *keywordService) Create(ctx context.Context, attrs keyword.Attrs) (*keyword.Record, error) {
	rec, err := keyword.NewRecord(attrs)
	if err != nil {
		return nil, err
	}
	return s.store.Insert(ctx, rec)
}

func (s *keywordService) Import(ctx context.Context, content string) (*kwimport.Result, error) {
	return s.importer.ImportContent(ctx, content)
}

func (s *keywordService) Recalculate(ctx context.Context) (int, error) {
	return keyword.RecalculateAll(ctx, s.store)
}
