package keyword

import (
	"context"
	"errors"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestNewRecord_DerivesMissingClassification(t *testing.T) {
	rec, err := NewRecord(Attrs{Text: "digital business card maker"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.Category != CategoryDigital {
		t.Errorf("Expected derived category digital, got: %s", rec.Category)
	}
	if rec.Intent != IntentInformational {
		t.Errorf("Expected derived intent informational, got: %s", rec.Intent)
	}
	if rec.Audience != AudienceDIYCreators {
		t.Errorf("Expected derived audience diy_creators, got: %s", rec.Audience)
	}
	if rec.MonthlySearches != 0 {
		t.Errorf("Expected default monthly searches 0, got: %d", rec.MonthlySearches)
	}
}

func TestNewRecord_ExplicitValuesWin(t *testing.T) {
	rec, err := NewRecord(Attrs{
		Text:       "digital business card maker",
		Category:   CategoryOther,
		Intent:     IntentCommercial,
		Audience:   AudienceGeneral,
		IsQuestion: boolPtr(true),
		IsBranded:  boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.Category != CategoryOther {
		t.Errorf("Expected explicit category to win, got: %s", rec.Category)
	}
	if rec.Intent != IntentCommercial {
		t.Errorf("Expected explicit intent to win, got: %s", rec.Intent)
	}
	if rec.Audience != AudienceGeneral {
		t.Errorf("Expected explicit audience to win, got: %s", rec.Audience)
	}
	if !rec.IsQuestion || !rec.IsBranded {
		t.Error("Expected explicit flags to win over detection")
	}

	// The score is never caller-supplied: it reflects the explicit
	// classification, branded penalty included.
	// 5 (volume) + 20 (default competition) + 15 (commercial)
	// + 15 (question) - 30 (branded)
	if rec.BlogScore != 25 {
		t.Errorf("Expected recomputed score 25, got: %d", rec.BlogScore)
	}
}

func TestNewRecord_Validation(t *testing.T) {
	if _, err := NewRecord(Attrs{Text: "   "}); err == nil {
		t.Error("Expected error for blank text")
	}

	if _, err := NewRecord(Attrs{Text: "x", MonthlySearches: intPtr(-5)}); err == nil {
		t.Error("Expected error for negative monthly searches")
	}

	if _, err := NewRecord(Attrs{Text: "x", CompetitionIndex: intPtr(120)}); err == nil {
		t.Error("Expected error for out-of-range competition index")
	}

	var verr *ValidationError
	_, err := NewRecord(Attrs{Text: ""})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got: %v", err)
	}
	if verr.Field != "text" {
		t.Errorf("Expected field 'text', got: %s", verr.Field)
	}
}

func TestRederive_OverwritesClassification(t *testing.T) {
	rec, err := NewRecord(Attrs{Text: "order business cards"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	rec.Text = "how to network at a conference"
	rec = Rederive(rec)

	if rec.Category != CategoryNetworking {
		t.Errorf("Expected category networking after rederive, got: %s", rec.Category)
	}
	if !rec.IsQuestion {
		t.Error("Expected is_question after rederive")
	}
	if rec.BlogScore != ComputeBlogScore(rec) {
		t.Error("Expected score to match recomputation")
	}
}

func TestRecalculateAll_IdempotentDerivation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	texts := []string{
		"how to network effectively",
		"buy business cards cheap",
		"moo vs zazzle",
	}
	for _, text := range texts {
		rec, err := NewRecord(Attrs{Text: text})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if _, err := store.Insert(ctx, rec); err != nil {
			t.Fatalf("Expected no insert error, got: %v", err)
		}
	}

	before, _ := store.ListAll(ctx)

	// Records created through NewRecord are already fully derived, so a
	// recalculation pass must change nothing.
	updated, err := RecalculateAll(ctx, store)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated != 0 {
		t.Errorf("Expected 0 records updated, got: %d", updated)
	}

	after, _ := store.ListAll(ctx)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Record %q changed during recalculation", before[i].Text)
		}
	}
}

func TestRecalculateAll_FillsMissingFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// A record persisted without classification, as older rows may be.
	if _, err := store.Insert(ctx, Record{Text: "how to network effectively"}); err != nil {
		t.Fatalf("Expected no insert error, got: %v", err)
	}

	updated, err := RecalculateAll(ctx, store)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated != 1 {
		t.Errorf("Expected 1 record updated, got: %d", updated)
	}

	rec, err := store.FindByText(ctx, "how to network effectively")
	if err != nil {
		t.Fatalf("Expected record, got: %v", err)
	}
	if rec.Category != CategoryNetworking {
		t.Errorf("Expected backfilled category networking, got: %s", rec.Category)
	}
	if rec.BlogScore == 0 {
		t.Error("Expected backfilled score to be positive")
	}
}
