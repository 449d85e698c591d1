package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one normalized bank-statement row.
//
// Exactly one of Debit/Credit is expected to be nonzero; the parser never
// constructs a transaction where both are zero. When both are nonzero the
// debit side wins (IsExpense is true and Amount carries the debit).
type Transaction struct {
	ID          string    // deterministic: statement date + row index
	Date        time.Time // calendar date, no time-of-day component
	Description string    // cleaned vendor/memo text
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	IsExpense   bool            // true iff Debit > 0
	Amount      decimal.Decimal // the nonzero one of Debit/Credit
	Category    string          // empty means uncategorized
}
