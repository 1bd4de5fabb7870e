package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"contentkit/pkg/keyword"
)

// uniqueViolation is the Postgres error code for a violated uniqueness
// constraint.
const uniqueViolation = "23505"

// keywordColumns is the standard column list for keyword queries.
const keywordColumns = `id, text, monthly_searches, competition_index, competition,
	three_month_change, yoy_change, top_bid_low, top_bid_high,
	category, intent, is_question, is_branded, audience, blog_score`

// KeywordStore implements keyword.Store against Postgres. The keywords
// table carries a uniqueness constraint on text; violations surface as
// keyword.ErrDuplicate so imports treat them as skips.
type KeywordStore struct {
	db *DB
}

// NewKeywordStore creates a Postgres keyword store.
func NewKeywordStore(db *DB) *KeywordStore {
	return &KeywordStore{db: db}
}

func scanKeyword(row pgx.Row) (*keyword.Record, error) {
	var rec keyword.Record
	err := row.Scan(
		&rec.ID,
		&rec.Text,
		&rec.MonthlySearches,
		&rec.CompetitionIndex,
		&rec.Competition,
		&rec.ThreeMonthChange,
		&rec.YoYChange,
		&rec.TopBidLow,
		&rec.TopBidHigh,
		&rec.Category,
		&rec.Intent,
		&rec.IsQuestion,
		&rec.IsBranded,
		&rec.Audience,
		&rec.BlogScore,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, keyword.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByText looks up a record by exact keyword text.
func (s *KeywordStore) FindByText(ctx context.Context, text string) (*keyword.Record, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE text = $1`
	return scanKeyword(s.db.Pool.QueryRow(ctx, query, text))
}

// Insert persists a new record, mapping uniqueness violations to
// keyword.ErrDuplicate.
func (s *KeywordStore) Insert(ctx context.Context, rec keyword.Record) (*keyword.Record, error) {
	query := `
		INSERT INTO keywords (text, monthly_searches, competition_index, competition,
			three_month_change, yoy_change, top_bid_low, top_bid_high,
			category, intent, is_question, is_branded, audience, blog_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + keywordColumns

	row := s.db.Pool.QueryRow(ctx, query,
		rec.Text, rec.MonthlySearches, rec.CompetitionIndex, rec.Competition,
		rec.ThreeMonthChange, rec.YoYChange, rec.TopBidLow, rec.TopBidHigh,
		rec.Category, rec.Intent, rec.IsQuestion, rec.IsBranded, rec.Audience, rec.BlogScore,
	)

	inserted, err := scanKeyword(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, keyword.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert keyword: %w", err)
	}
	return inserted, nil
}

// UpdateFields applies a partial update, building the SET clause from the
// fields present in the update.
func (s *KeywordStore) UpdateFields(ctx context.Context, id string, update keyword.FieldUpdate) (*keyword.Record, error) {
	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Text != nil {
		add("text", *update.Text)
	}
	if update.MonthlySearches != nil {
		add("monthly_searches", *update.MonthlySearches)
	}
	if update.CompetitionIndex != nil {
		add("competition_index", *update.CompetitionIndex)
	}
	if update.Category != nil {
		add("category", *update.Category)
	}
	if update.Intent != nil {
		add("intent", *update.Intent)
	}
	if update.IsQuestion != nil {
		add("is_question", *update.IsQuestion)
	}
	if update.IsBranded != nil {
		add("is_branded", *update.IsBranded)
	}
	if update.Audience != nil {
		add("audience", *update.Audience)
	}
	if update.BlogScore != nil {
		add("blog_score", *update.BlogScore)
	}

	if len(sets) == 0 {
		return s.findByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE keywords SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), keywordColumns)

	updated, err := scanKeyword(s.db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, keyword.ErrDuplicate
		}
		return nil, err
	}
	return updated, nil
}

// ListAll returns every record in insertion order.
func (s *KeywordStore) ListAll(ctx context.Context) ([]keyword.Record, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords ORDER BY id`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	defer rows.Close()

	var records []keyword.Record
	for rows.Next() {
		var rec keyword.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Text,
			&rec.MonthlySearches,
			&rec.CompetitionIndex,
			&rec.Competition,
			&rec.ThreeMonthChange,
			&rec.YoYChange,
			&rec.TopBidLow,
			&rec.TopBidHigh,
			&rec.Category,
			&rec.Intent,
			&rec.IsQuestion,
			&rec.IsBranded,
			&rec.Audience,
			&rec.BlogScore,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *KeywordStore) findByID(ctx context.Context, id string) (*keyword.Record, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE id = $1`
	return scanKeyword(s.db.Pool.QueryRow(ctx, query, id))
}
