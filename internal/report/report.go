// Package report computes chart-ready aggregates from a transaction list.
// Every function is a pure transform: no persistence, no side effects, and
// re-running one on an unchanged input yields identical output.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finboard-dev/finboard/internal/categories"
	"github.com/finboard-dev/finboard/internal/model"
)

// CategoryLookup resolves a vendor description to a category.
type CategoryLookup interface {
	Lookup(description string) (string, bool)
}

// DefaultTopVendors is the vendor-ranking truncation used when the caller
// does not supply one.
const DefaultTopVendors = 10

const periodDateFormat = "Jan 2, 2006"

// Breakdown partitions expense transactions by category and sums amounts
// per bucket, descending by amount. A transaction's own Category wins, then
// the lookup over its description, then Uncategorized. Returns nil when
// there are no expenses.
func Breakdown(txns []model.Transaction, lookup CategoryLookup) []model.CategoryBreakdown {
	total := decimal.Zero
	sums := map[string]decimal.Decimal{}
	var order []string

	for _, txn := range txns {
		if !txn.IsExpense {
			continue
		}
		category := txn.Category
		if category == "" && lookup != nil {
			if c, ok := lookup.Lookup(txn.Description); ok {
				category = c
			}
		}
		if category == "" {
			category = categories.Uncategorized
		}
		if _, seen := sums[category]; !seen {
			order = append(order, category)
		}
		sums[category] = sums[category].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	if total.IsZero() {
		return nil
	}

	totalFloat := total.InexactFloat64()
	out := make([]model.CategoryBreakdown, 0, len(order))
	for _, category := range order {
		amount := sums[category]
		out = append(out, model.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: amount.InexactFloat64() / totalFloat * 100,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// TopVendors ranks expense vendors by summed amount, descending, truncated
// to n entries. n <= 0 means DefaultTopVendors.
func TopVendors(txns []model.Transaction, n int) []model.VendorSpending {
	if n <= 0 {
		n = DefaultTopVendors
	}

	sums := map[string]*model.VendorSpending{}
	var order []string
	for _, txn := range txns {
		if !txn.IsExpense {
			continue
		}
		v, seen := sums[txn.Description]
		if !seen {
			v = &model.VendorSpending{Vendor: txn.Description}
			sums[txn.Description] = v
			order = append(order, txn.Description)
		}
		v.Amount = v.Amount.Add(txn.Amount)
		v.Transactions++
	}

	out := make([]model.VendorSpending, 0, len(order))
	for _, vendor := range order {
		out = append(out, *sums[vendor])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Series groups expense transactions into date buckets at the given grain,
// ascending by bucket key. A non-nil from/to restricts to the inclusive
// date range before bucketing.
func Series(txns []model.Transaction, g model.Granularity, from, to *time.Time) []model.SeriesPoint {
	sums := map[string]decimal.Decimal{}
	labels := map[string]string{}

	for _, txn := range txns {
		if !txn.IsExpense {
			continue
		}
		if from != nil && txn.Date.Before(*from) {
			continue
		}
		if to != nil && txn.Date.After(*to) {
			continue
		}
		key, label := bucket(txn.Date, g)
		sums[key] = sums[key].Add(txn.Amount)
		labels[key] = label
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	// Lexicographic order on the bucket keys is also chronological.
	sort.Strings(keys)

	out := make([]model.SeriesPoint, 0, len(keys))
	for _, key := range keys {
		out = append(out, model.SeriesPoint{Key: key, Label: labels[key], Amount: sums[key]})
	}
	return out
}

// bucket truncates a date to the bucket grain, returning the sortable key
// and its display label.
func bucket(date time.Time, g model.Granularity) (key, label string) {
	switch g {
	case model.GranularityMonthly:
		return date.Format("2006-01"), date.Format("Jan 2006")
	case model.GranularityYearly:
		return date.Format("2006"), date.Format("2006")
	default:
		return date.Format("2006-01-02"), date.Format("Jan 02")
	}
}

// StatementPeriod returns the earliest and latest transaction dates across
// the full, unfiltered list as display strings, or "N/A" when empty.
func StatementPeriod(txns []model.Transaction) model.Period {
	if len(txns) == 0 {
		return model.Period{Start: "N/A", End: "N/A"}
	}

	start, end := txns[0].Date, txns[0].Date
	for _, txn := range txns[1:] {
		if txn.Date.Before(start) {
			start = txn.Date
		}
		if txn.Date.After(end) {
			end = txn.Date
		}
	}
	return model.Period{
		Start: start.Format(periodDateFormat),
		End:   end.Format(periodDateFormat),
	}
}

// Totals sums the headline figures: income (credit side), expenses (debit
// side), and their net flow.
func Totals(txns []model.Transaction) model.Totals {
	income, expenses := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if txn.IsExpense {
			expenses = expenses.Add(txn.Amount)
		} else {
			income = income.Add(txn.Amount)
		}
	}
	return model.Totals{
		Income:   income,
		Expenses: expenses,
		NetFlow:  income.Sub(expenses),
	}
}
