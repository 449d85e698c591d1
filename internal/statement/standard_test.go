package statement

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row builds a 10-field statement row with the given date, description,
// debit, and credit.
func row(date, desc, debit, credit string) []string {
	return []string{date, "CHK-2201", "POS", "0012", "R00000", "00", desc, "0.00", debit, credit}
}

func TestStandardParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/statement.csv")
	require.NoError(t, err)

	p := &StandardParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// 9 raw rows: header, 6 good, 1 zero-amount memo, 1 short, 1 bad date.
	require.Len(t, txns, 6)

	// Most recent first.
	assert.Equal(t, "MONTHLY PLAN FEE", txns[0].Description)
	assert.Equal(t, "15.95", txns[0].Debit.StringFixed(2))
	assert.True(t, txns[0].IsExpense)

	assert.Equal(t, "PAYROLL ACME CONSULTING", txns[1].Description)
	assert.False(t, txns[1].IsExpense)
	assert.Equal(t, "2500.00", txns[1].Amount.StringFixed(2))

	// Same-date rows keep their source order.
	assert.Equal(t, "AMAZON MARKETPLACE PMTS", txns[2].Description)
	assert.Equal(t, "CITY TRANSIT PASS", txns[3].Description)

	assert.Equal(t, "COFFEE SHOP", txns[4].Description)
	assert.Equal(t, "GROCERY MART #204", txns[5].Description)
}

func TestStandardParser_SortedDescending(t *testing.T) {
	data, err := os.ReadFile("../../testdata/statement.csv")
	require.NoError(t, err)

	p := &StandardParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	for i := 0; i+1 < len(txns); i++ {
		assert.False(t, txns[i].Date.Before(txns[i+1].Date),
			"transactions[%d] older than transactions[%d]", i, i+1)
	}
}

func TestParseRows_CoffeeShopScenario(t *testing.T) {
	txns := ParseRows([][]string{
		{"2024/01/05", "", "", "", "", "", "Coffee Shop", "", "4.50", "0"},
	})
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, 2024, txn.Date.Year())
	assert.Equal(t, 1, int(txn.Date.Month()))
	assert.Equal(t, 5, txn.Date.Day())
	assert.Equal(t, "Coffee Shop", txn.Description)
	assert.Equal(t, "4.50", txn.Debit.StringFixed(2))
	assert.True(t, txn.Credit.IsZero())
	assert.True(t, txn.IsExpense)
	assert.Equal(t, "4.50", txn.Amount.StringFixed(2))
}

func TestParseRows_HeaderSkipped(t *testing.T) {
	txns := ParseRows([][]string{
		{"Date", "Account", "Type", "Branch", "Reference", "Code", "Description", "Balance", "Debit", "Credit"},
		row("2024/01/05", "COFFEE SHOP", "4.50", "0"),
	})
	require.Len(t, txns, 1)
	assert.Equal(t, "COFFEE SHOP", txns[0].Description)
}

func TestParseRows_NoHeader(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/01/05", "COFFEE SHOP", "4.50", "0"),
		row("2024/01/06", "GROCERY MART", "20.00", "0"),
	})
	assert.Len(t, txns, 2)
}

func TestParseRows_ShortRowSkipped(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/01/05", "COFFEE SHOP", "4.50", "0"),
		{"2024/01/06", "CHK-2201", "POS"},
	})
	assert.Len(t, txns, 1)
}

func TestParseRows_BothZeroSkipped(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/01/05", "BALANCE FORWARD", "0", "0"),
		row("2024/01/06", "BLANK AMOUNTS", "", ""),
	})
	assert.Empty(t, txns)
}

func TestParseRows_InvalidDateSkipped(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/13/05", "COFFEE SHOP", "4.50", "0"),
		row("2024/01/32", "COFFEE SHOP", "4.50", "0"),
		row("2024-01-05", "COFFEE SHOP", "4.50", "0"),
	})
	assert.Empty(t, txns)
}

func TestParseRows_EmptyDescriptionSkipped(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/01/05", "", "4.50", "0"),
		row("2024/01/05", `=""`, "4.50", "0"),
	})
	assert.Empty(t, txns)
}

func TestParseRows_NonNumericAmountIsZero(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/01/05", "REFUND VENDOR", "notanumber", "12.00"),
	})
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Debit.IsZero())
	assert.False(t, txns[0].IsExpense)
	assert.Equal(t, "12.00", txns[0].Amount.StringFixed(2))
}

func TestParseRows_DebitWinsWhenBothNonzero(t *testing.T) {
	txns := ParseRows([][]string{
		row("2024/01/05", "ODD ROW", "4.50", "9.99"),
	})
	require.Len(t, txns, 1)
	assert.True(t, txns[0].IsExpense)
	assert.Equal(t, "4.50", txns[0].Amount.StringFixed(2))
}

func TestParseRows_DeterministicIDs(t *testing.T) {
	rows := [][]string{
		{"Date", "Account", "Type", "Branch", "Reference", "Code", "Description", "Balance", "Debit", "Credit"},
		row("2024/01/05", "COFFEE SHOP", "4.50", "0"),
	}
	first := ParseRows(rows)
	second := ParseRows(rows)
	require.Len(t, first, 1)
	assert.Equal(t, "20240105-001", first[0].ID)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestParseRows_Empty(t *testing.T) {
	assert.Empty(t, ParseRows(nil))
	assert.Empty(t, ParseRows([][]string{}))
}

func TestStandardParser_QuotedCommas(t *testing.T) {
	csvData := "2024/01/05,CHK,POS,0012,R1,00,\"SHOP, CORNER\",0.00,4.50,0\n"
	p := &StandardParser{}
	txns, err := p.Parse(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "SHOP, CORNER", txns[0].Description)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`="COFFEE SHOP"`, "COFFEE SHOP"},
		{`=""COFFEE SHOP""`, "COFFEE SHOP"},
		{`"COFFEE SHOP"`, "COFFEE SHOP"},
		{"  COFFEE SHOP  ", "COFFEE SHOP"},
		{"COFFEE SHOP", "COFFEE SHOP"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanDescription(tt.input), "input: %s", tt.input)
	}
}

func TestStandardParser_Format(t *testing.T) {
	p := &StandardParser{}
	assert.Equal(t, "standard", p.Format())
}
