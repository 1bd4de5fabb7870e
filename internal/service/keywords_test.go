package service

import (
	"context"
	"testing"

	"contentkit/pkg/keyword"
)

func seedKeyword(t *testing.T, store keyword.Store, text string, searches int) *keyword.Record {
	t.Helper()

	rec, err := keyword.NewRecord(keyword.Attrs{Text: text, MonthlySearches: &searches})
	if err != nil {
		t.Fatalf("Failed to build record %q: %v", text, err)
	}
	inserted, err := store.Insert(context.Background(), rec)
	if err != nil {
		t.Fatalf("Failed to insert record %q: %v", text, err)
	}
	return inserted
}

func TestKeywordServiceList_SortedByScore(t *testing.T) {
	store := keyword.NewMemoryStore()
	svc := NewKeywordService(store)

	seedKeyword(t, store, "vistaprint coupon", 100)
	seedKeyword(t, store, "how to network effectively", 10000)
	seedKeyword(t, store, "business card template", 1000)

	records, err := svc.List(context.Background(), keyword.Filter{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got: %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].BlogScore < records[i].BlogScore {
			t.Errorf("Records out of score order at %d: %d < %d",
				i, records[i-1].BlogScore, records[i].BlogScore)
		}
	}
}

func TestKeywordServiceList_AppliesFilter(t *testing.T) {
	store := keyword.NewMemoryStore()
	svc := NewKeywordService(store)

	seedKeyword(t, store, "vistaprint coupon", 100)
	seedKeyword(t, store, "how to design a business card", 500)

	records, err := svc.List(context.Background(), keyword.Filter{ExcludeBranded: true})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record after filtering, got: %d", len(records))
	}
	if records[0].Text != "how to design a business card" {
		t.Errorf("Expected unbranded record, got: %q", records[0].Text)
	}
}

func TestKeywordServiceCreate_Duplicate(t *testing.T) {
	store := keyword.NewMemoryStore()
	svc := NewKeywordService(store)

	if _, err := svc.Create(context.Background(), keyword.Attrs{Text: "qr code business card"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	_, err := svc.Create(context.Background(), keyword.Attrs{Text: "qr code business card"})
	if err != keyword.ErrDuplicate {
		t.Errorf("Expected ErrDuplicate, got: %v", err)
	}
}

func TestKeywordServiceImportAndRecalculate(t *testing.T) {
	store := keyword.NewMemoryStore()
	svc := NewKeywordService(store)

	content := "Keyword\tAvg. monthly searches\n" +
		"digital business card\t2500\n" +
		"card scanner app\t800\n"

	result, err := svc.Import(context.Background(), content)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("Expected 2 imported, got: %d", result.Imported)
	}

	// Everything was scored on import, so recalculation changes nothing.
	updated, err := svc.Recalculate(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated != 0 {
		t.Errorf("Expected 0 updated records, got: %d", updated)
	}
}
