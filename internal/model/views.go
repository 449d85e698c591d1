package model

import "github.com/shopspring/decimal"

// Granularity selects the bucket grain for the spending time series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// CategoryBreakdown is one slice of the expense-by-category view.
type CategoryBreakdown struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64 // share of total expenses, 0-100
}

// VendorSpending is one row of the top-vendors ranking.
type VendorSpending struct {
	Vendor       string
	Amount       decimal.Decimal
	Transactions int
}

// SeriesPoint is one bucket of the time-bucketed spending series.
// Key sorts both lexicographically and chronologically ("2024-01-05",
// "2024-01", "2024" depending on grain).
type SeriesPoint struct {
	Key    string
	Label  string // human-readable form of Key
	Amount decimal.Decimal
}

// Period is the statement period as display strings, "N/A" when unknown.
type Period struct {
	Start string
	End   string
}

// Totals are the headline figures over a full statement.
type Totals struct {
	Income   decimal.Decimal // sum of credits
	Expenses decimal.Decimal // sum of debits
	NetFlow  decimal.Decimal // Income - Expenses
}
