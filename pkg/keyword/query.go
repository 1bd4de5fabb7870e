package keyword

import "sort"

// Filter narrows a record list. Zero values leave a dimension unfiltered.
type Filter struct {
	Category       Category
	Intent         Intent
	Audience       Audience
	MinScore       int
	QuestionsOnly  bool
	ExcludeBranded bool
}

// Apply returns the records matching every set dimension, preserving the
// input order.
func (f Filter) Apply(records []Record) []Record {
	var out []Record
	for _, rec := range records {
		if f.Category != "" && rec.Category != f.Category {
			continue
		}
		if f.Intent != "" && rec.Intent != f.Intent {
			continue
		}
		if f.Audience != "" && rec.Audience != f.Audience {
			continue
		}
		if rec.BlogScore < f.MinScore {
			continue
		}
		if f.QuestionsOnly && !rec.IsQuestion {
			continue
		}
		if f.ExcludeBranded && rec.IsBranded {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SortByScore orders records by blog score, highest first. Ties keep
// their relative order.
func SortByScore(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BlogScore > records[j].BlogScore
	})
}

// SortByVolume orders records by monthly searches, highest first.
func SortByVolume(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MonthlySearches > records[j].MonthlySearches
	})
}

// CountByCategory tallies records per category.
func CountByCategory(records []Record) map[Category]int {
	counts := make(map[Category]int)
	for _, rec := range records {
		counts[rec.Category]++
	}
	return counts
}
