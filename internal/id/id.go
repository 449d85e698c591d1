package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTransactionID returns a transaction ID like "20240105-007".
// The ID is a pure function of the transaction date and its row index in
// the source file, so re-parsing the same statement yields the same IDs and
// category updates keyed by ID stay stable.
func FormatTransactionID(date time.Time, row int) string {
	return fmt.Sprintf("%s-%03d", date.Format("20060102"), row)
}

// ParseTransactionID parses "20240105-007" into its date and row index.
func ParseTransactionID(id string) (date time.Time, row int, err error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	date, err = time.Parse("20060102", parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid date in transaction ID %q: %w", id, err)
	}

	row, err = strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid row in transaction ID %q: %w", id, err)
	}

	return date, row, nil
}
