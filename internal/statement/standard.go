package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finboard-dev/finboard/internal/id"
	"github.com/finboard-dev/finboard/internal/model"
)

// StandardParser parses the fixed-column bank statement export: ten or more
// fields per row with the transaction date in field 0, description in field
// 6, and debit/credit magnitudes in fields 8 and 9. The column mapping is a
// contract with the upstream export format and is not configurable.
type StandardParser struct{}

const (
	standardMinFields  = 10
	standardColDate    = 0
	standardColDesc    = 6
	standardColDebit   = 8
	standardColCredit  = 9
	standardDateFormat = "2006/01/02"
)

// datePattern matches the YYYY/MM/DD transaction date format.
var datePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// Format returns the parser name.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads a statement CSV and returns normalized Transactions, most
// recent first. Malformed rows are skipped, not propagated as errors; only
// a tokenizer-level failure is returned.
func (p *StandardParser) Parse(r io.Reader) ([]model.Transaction, error) {
	records, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	return ParseRows(records), nil
}

// ReadRows tokenizes a statement CSV into raw rows. Quoted fields follow
// standard CSV rules; lazy quotes tolerate spreadsheet-export escaping.
func ReadRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	return records, nil
}

// ParseRows converts raw CSV rows into Transactions. Row 0 is skipped when
// its first field does not look like a YYYY/MM/DD date (header heuristic).
// Rows that are too short, dateless, descriptionless, or amountless are
// dropped. The result is sorted descending by date, stable within a date.
func ParseRows(records [][]string) []model.Transaction {
	if len(records) == 0 {
		return nil
	}

	start := 0
	if isHeaderRow(records[0]) {
		start = 1
	}

	var txns []model.Transaction
	for i := start; i < len(records); i++ {
		txn, ok := parseRow(records[i], i)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns
}

// parseRow converts a single data row, reporting ok=false when the row
// should be skipped.
func parseRow(rec []string, row int) (model.Transaction, bool) {
	if len(rec) < standardMinFields {
		return model.Transaction{}, false
	}

	dateStr := strings.TrimSpace(rec[standardColDate])
	desc := cleanDescription(rec[standardColDesc])
	if dateStr == "" || desc == "" {
		return model.Transaction{}, false
	}

	date, err := parseDate(dateStr)
	if err != nil {
		slog.Warn("skipping statement row", "row", row+1, "err", err)
		return model.Transaction{}, false
	}

	debit := parseAmount(rec[standardColDebit])
	credit := parseAmount(rec[standardColCredit])
	if debit.IsZero() && credit.IsZero() {
		return model.Transaction{}, false
	}

	// Debit wins if both sides are nonzero.
	isExpense := debit.IsPositive()
	amount := credit
	if isExpense {
		amount = debit
	}

	return model.Transaction{
		ID:          id.FormatTransactionID(date, row),
		Date:        date,
		Description: desc,
		Debit:       debit,
		Credit:      credit,
		IsExpense:   isExpense,
		Amount:      amount,
	}, true
}

// isHeaderRow reports whether a row looks like a column header rather than
// data: an empty first field or one that is not a YYYY/MM/DD date.
func isHeaderRow(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	first := strings.TrimSpace(rec[0])
	return first == "" || !datePattern.MatchString(first)
}

// parseDate parses a YYYY/MM/DD date, rejecting both pattern mismatches and
// impossible calendar dates (month 13, day 32).
func parseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q does not match YYYY/MM/DD", s)
	}
	date, err := time.Parse(standardDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return date, nil
}

// parseAmount parses a decimal monetary field. Empty or non-numeric fields
// are zero, not errors.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// cleanDescription strips spreadsheet-export escaping (a leading ="" or ="
// and trailing "") plus any surrounding quotes, then trims whitespace.
func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `=""`)
	s = strings.TrimSuffix(s, `""`)
	s = strings.TrimPrefix(s, `="`)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
