package keyword

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store implementation. It backs tests and
// small embedded deployments that have no database configured.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]Record
	byText map[string]string // keyword text -> id
	order  []string          // insertion-ordered ids
}

// NewMemoryStore creates an empty in-memory keyword store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]Record),
		byText: make(map[string]string),
	}
}

// FindByText looks up a record by exact keyword text.
func (ms *MemoryStore) FindByText(ctx context.Context, text string) (*Record, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	id, ok := ms.byText[text]
	if !ok {
		return nil, ErrNotFound
	}
	rec := ms.byID[id]
	return &rec, nil
}

// Insert stores a new record, rejecting duplicate keyword text.
func (ms *MemoryStore) Insert(ctx context.Context, rec Record) (*Record, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if rec.Text == "" {
		return nil, &ValidationError{Field: "text", Detail: "can't be blank"}
	}
	if _, exists := ms.byText[rec.Text]; exists {
		return nil, ErrDuplicate
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	ms.byID[rec.ID] = rec
	ms.byText[rec.Text] = rec.ID
	ms.order = append(ms.order, rec.ID)
	return &rec, nil
}

// UpdateFields applies a partial update to the record with the given id.
func (ms *MemoryStore) UpdateFields(ctx context.Context, id string, update FieldUpdate) (*Record, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	rec, ok := ms.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Text != nil && *update.Text != rec.Text {
		if *update.Text == "" {
			return nil, &ValidationError{Field: "text", Detail: "can't be blank"}
		}
		if _, exists := ms.byText[*update.Text]; exists {
			return nil, ErrDuplicate
		}
		delete(ms.byText, rec.Text)
		rec.Text = *update.Text
		ms.byText[rec.Text] = id
	}
	if update.MonthlySearches != nil {
		rec.MonthlySearches = *update.MonthlySearches
	}
	if update.CompetitionIndex != nil {
		rec.CompetitionIndex = update.CompetitionIndex
	}
	if update.Category != nil {
		rec.Category = *update.Category
	}
	if update.Intent != nil {
		rec.Intent = *update.Intent
	}
	if update.IsQuestion != nil {
		rec.IsQuestion = *update.IsQuestion
	}
	if update.IsBranded != nil {
		rec.IsBranded = *update.IsBranded
	}
	if update.Audience != nil {
		rec.Audience = *update.Audience
	}
	if update.BlogScore != nil {
		rec.BlogScore = *update.BlogScore
	}

	ms.byID[id] = rec
	return &rec, nil
}

// ListAll returns every record in insertion order.
func (ms *MemoryStore) ListAll(ctx context.Context) ([]Record, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	records := make([]Record, 0, len(ms.order))
	for _, id := range ms.order {
		records = append(records, ms.byID[id])
	}
	return records, nil
}
