package keyword

import (
	"context"
	"fmt"
	"strings"
)

// NewRecord builds a fully populated Record from caller-supplied attrs.
// Classification fields left empty are derived from the keyword text;
// explicit values win over auto-detection. BlogScore is always recomputed
// regardless of what the caller supplied.
func NewRecord(attrs Attrs) (Record, error) {
	text := strings.TrimSpace(attrs.Text)
	if text == "" {
		return Record{}, &ValidationError{Field: "text", Detail: "can't be blank"}
	}

	rec := Record{
		Text:             text,
		CompetitionIndex: attrs.CompetitionIndex,
		Competition:      attrs.Competition,
		ThreeMonthChange: attrs.ThreeMonthChange,
		YoYChange:        attrs.YoYChange,
		TopBidLow:        attrs.TopBidLow,
		TopBidHigh:       attrs.TopBidHigh,
		Category:         attrs.Category,
		Intent:           attrs.Intent,
		Audience:         attrs.Audience,
	}

	if attrs.MonthlySearches != nil {
		rec.MonthlySearches = *attrs.MonthlySearches
	}
	if rec.MonthlySearches < 0 {
		return Record{}, &ValidationError{Field: "monthly_searches", Detail: "must be greater than or equal to 0"}
	}
	if rec.CompetitionIndex != nil && (*rec.CompetitionIndex < 0 || *rec.CompetitionIndex > 100) {
		return Record{}, &ValidationError{Field: "competition_index", Detail: "must be between 0 and 100"}
	}

	if rec.Category == "" {
		rec.Category = DetectCategory(text)
	}
	if rec.Intent == "" {
		rec.Intent = DetectIntent(text)
	}
	if attrs.IsQuestion != nil {
		rec.IsQuestion = *attrs.IsQuestion
	} else {
		rec.IsQuestion = IsQuestion(text)
	}
	if attrs.IsBranded != nil {
		rec.IsBranded = *attrs.IsBranded
	} else {
		rec.IsBranded = IsBranded(text)
	}
	if rec.Audience == "" {
		rec.Audience = DetectAudience(text)
	}

	rec.BlogScore = ComputeBlogScore(rec)
	return rec, nil
}

// Rederive re-runs classification on a record whose text changed, then
// recomputes the score. All classification fields are overwritten since
// they describe the new text.
func Rederive(rec Record) Record {
	rec.Category = DetectCategory(rec.Text)
	rec.Intent = DetectIntent(rec.Text)
	rec.IsQuestion = IsQuestion(rec.Text)
	rec.IsBranded = IsBranded(rec.Text)
	rec.Audience = DetectAudience(rec.Text)
	rec.BlogScore = ComputeBlogScore(rec)
	return rec
}

// RecalculateAll walks every stored record, fills any missing
// classification fields and recomputes the score, persisting records whose
// derived values changed. Returns the number of records updated.
func RecalculateAll(ctx context.Context, store Store) (int, error) {
	records, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list keywords: %w", err)
	}

	updated := 0
	for _, rec := range records {
		derived := rec
		if derived.Category == "" {
			derived.Category = DetectCategory(derived.Text)
		}
		if derived.Intent == "" {
			derived.Intent = DetectIntent(derived.Text)
		}
		if derived.Audience == "" {
			derived.Audience = DetectAudience(derived.Text)
		}
		derived.BlogScore = ComputeBlogScore(derived)

		if derived == rec {
			continue
		}

		update := FieldUpdate{
			Category:  &derived.Category,
			Intent:    &derived.Intent,
			Audience:  &derived.Audience,
			BlogScore: &derived.BlogScore,
		}
		if _, err := store.UpdateFields(ctx, rec.ID, update); err != nil {
			return updated, fmt.Errorf("failed to update %q: %w", rec.Text, err)
		}
		updated++
	}

	return updated, nil
}
