package keyword

import (
	"context"
	"errors"
	"fmt"
)

// Store sentinels. A Store implementation backed by a database with a
// uniqueness constraint on keyword text must map constraint violations to
// ErrDuplicate so the importer can count them as skips.
var (
	ErrNotFound  = errors.New("keyword not found")
	ErrDuplicate = errors.New("keyword already exists")
)

// ValidationError reports a rejected field on insert or update.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Detail)
}

// FieldUpdate carries the fields an UpdateFields call should change.
// Nil fields are left untouched.
type FieldUpdate struct {
	Text             *string
	MonthlySearches  *int
	CompetitionIndex *int
	Category         *Category
	Intent           *Intent
	IsQuestion       *bool
	IsBranded        *bool
	Audience         *Audience
	BlogScore        *int
}

// Store is the persistence collaborator for keyword records.
type Store interface {
	FindByText(ctx context.Context, text string) (*Record, error)
	Insert(ctx context.Context, rec Record) (*Record, error)
	UpdateFields(ctx context.Context, id string, update FieldUpdate) (*Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}
