package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/finboard-dev/finboard/internal/model"
)

// Header is the CSV header for normalized transaction exports.
const Header = "id,date,description,debit,credit,category"

const (
	numFields   = 6
	dateFormat  = "2006-01-02"
	colID       = 0
	colDate     = 1
	colDesc     = 2
	colDebit    = 3
	colCredit   = 4
	colCategory = 5
)

// WriteTransactions writes normalized transactions (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDesc] = txn.Description

	if !txn.Debit.IsZero() {
		row[colDebit] = txn.Debit.StringFixed(2)
	}
	if !txn.Credit.IsZero() {
		row[colCredit] = txn.Credit.StringFixed(2)
	}

	row[colCategory] = txn.Category
	return row
}
