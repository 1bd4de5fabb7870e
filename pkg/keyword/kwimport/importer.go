// Package kwimport converts keyword-planner CSV exports into stored
// keyword records. Exports vary wildly in the field: UTF-16 or UTF-8,
// tab- or comma-delimited, with preamble rows before the real header, so
// the importer normalizes all of that before row parsing and classifies
// duplicates instead of failing on them.
package kwimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"contentkit/pkg/keyword"
	"contentkit/pkg/logger"
)

// Fatal import errors. Anything past header detection is reported per-row
// in the Result instead.
var (
	ErrReadFailure    = errors.New("could not read import file")
	ErrHeaderNotFound = errors.New("no keyword header row found")
	ErrEmptyFile      = errors.New("no data rows after header")
)

// Result tallies one import run. Errors preserve original row order and
// are formatted as "<keyword>: <validation detail>".
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Recognized normalized column names. Any other column is ignored.
const (
	colKeyword          = "keyword"
	colMonthlySearches  = "avg_monthly_searches"
	colCompetition      = "competition"
	colCompetitionIndex = "competition_indexed_value"
	colThreeMonthChange = "three_month_change"
	colYoYChange        = "yoy_change"
	colTopBidLow        = "top_of_page_bid_low_range"
	colTopBidHigh       = "top_of_page_bid_high_range"
)

// Importer feeds planner export rows through classification and scoring
// into a keyword store.
type Importer struct {
	store keyword.Store
	log   *logger.Logger
}

// New creates an importer writing to the given store.
func New(store keyword.Store) *Importer {
	return &Importer{
		store: store,
		log:   logger.GetLogger().WithComponent("keyword_importer"),
	}
}

// ImportFile reads, decodes and imports a planner export from disk.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadFailure, err)
	}
	return im.ImportContent(ctx, Decode(raw))
}

// ImportContent imports already-decoded export content. Rows are processed
// sequentially: a row inserting a keyword makes any later row with the
// same text a duplicate within the same batch.
func (im *Importer) ImportContent(ctx context.Context, content string) (*Result, error) {
	lines := splitLines(content)

	headerIdx := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "keyword\t") || strings.HasPrefix(lower, "keyword,") {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrHeaderNotFound
	}

	dataRows := lines[headerIdx+1:]
	if len(dataRows) == 0 {
		return nil, ErrEmptyFile
	}

	header := lines[headerIdx]
	delimiter := detectDelimiter(header)
	columns := mapColumns(splitFields(header, delimiter))

	im.log.WithFields(map[string]interface{}{
		"rows":      len(dataRows),
		"delimiter": string(delimiter),
	}).Info("Importing keyword rows")

	result := &Result{Errors: []string{}}
	for _, line := range dataRows {
		im.importRow(ctx, splitFields(line, delimiter), columns, result)
	}

	im.log.WithFields(map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"errors":   len(result.Errors),
	}).Info("Import finished")

	return result, nil
}

func (im *Importer) importRow(ctx context.Context, fields []string, columns map[string]int, result *Result) {
	text := strings.TrimSpace(fieldAt(fields, columns, colKeyword))
	if text == "" {
		result.Skipped++
		return
	}

	// Rows already present in the store count as skips, whether they were
	// there before the import or were inserted by an earlier row.
	if _, err := im.store.FindByText(ctx, text); err == nil {
		result.Skipped++
		return
	} else if !errors.Is(err, keyword.ErrNotFound) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", text, err))
		return
	}

	attrs := keyword.Attrs{
		Text:             text,
		MonthlySearches:  parseLenientInt(fieldAt(fields, columns, colMonthlySearches)),
		Competition:      fieldAt(fields, columns, colCompetition),
		CompetitionIndex: parseLenientInt(fieldAt(fields, columns, colCompetitionIndex)),
		ThreeMonthChange: fieldAt(fields, columns, colThreeMonthChange),
		YoYChange:        fieldAt(fields, columns, colYoYChange),
		TopBidLow:        parseLenientDecimal(fieldAt(fields, columns, colTopBidLow)),
		TopBidHigh:       parseLenientDecimal(fieldAt(fields, columns, colTopBidHigh)),
	}

	rec, err := keyword.NewRecord(attrs)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", text, err))
		return
	}

	if _, err := im.store.Insert(ctx, rec); err != nil {
		// The store may race us to the uniqueness constraint; that is
		// still a duplicate, not a failure.
		if errors.Is(err, keyword.ErrDuplicate) {
			result.Skipped++
			return
		}
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", text, err))
		return
	}

	result.Imported++
}

// splitLines normalizes CRLF/LF endings and drops blank lines, trimming
// each remaining line.
func splitLines(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// detectDelimiter picks tab or comma by counting occurrences in the
// header line; tab wins on the higher count.
func detectDelimiter(header string) rune {
	if strings.Count(header, "\t") > strings.Count(header, ",") {
		return '\t'
	}
	return ','
}

// splitFields splits one line on the delimiter and trims each field.
// Comma splitting goes through encoding/csv so quoted fields with embedded
// commas and doubled-quote escapes survive intact.
func splitFields(line string, delimiter rune) []string {
	var fields []string
	if delimiter == '\t' {
		fields = strings.Split(line, "\t")
	} else {
		reader := csv.NewReader(strings.NewReader(line))
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true
		parsed, err := reader.Read()
		if err != nil {
			// Malformed quoting degrades to a plain split rather than
			// losing the row.
			parsed = strings.Split(line, ",")
		}
		fields = parsed
	}

	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeColumn turns a raw header cell like "Avg. monthly searches"
// into its canonical form ("avg_monthly_searches").
func normalizeColumn(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.Trim(nonAlnum.ReplaceAllString(lower, "_"), "_")
}

func mapColumns(headerFields []string) map[string]int {
	columns := make(map[string]int, len(headerFields))
	for i, field := range headerFields {
		name := normalizeColumn(field)
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func fieldAt(fields []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

// parseLenientInt strips every non-digit character before parsing, so
// "1,000" and "≈1000" both work. Empty or unparsable input is nil, never
// zero.
func parseLenientInt(s string) *int {
	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return nil
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &value
}

var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// parseLenientDecimal strips currency symbols and thousands separators
// before parsing. Unparsable input is nil.
func parseLenientDecimal(s string) *float64 {
	cleaned := strings.TrimSpace(currencyReplacer.Replace(s))
	if cleaned == "" {
		return nil
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}
