// Package export implements the CSV report download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/nxrts/nexus-finance/internal/models"
)

// header is the column layout of the exported report.
var header = []string{"Date", "Type", "Category/Source", "Description", "Amount", "Status"}

// Filename returns the download name for an export taken now.
func Filename(now time.Time) string {
	return fmt.Sprintf("finance_report_%s.csv", now.Format("2006-01-02"))
}

// WriteCSV writes one row per record, incomes first, then expenses.
// Amounts are raw minor-unit integers, not display strings.
func WriteCSV(w io.Writer, incomes []models.Income, expenses []models.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing export CSV: %w", err)
	}

	for _, income := range incomes {
		row := []string{
			income.Date.String(),
			"Income",
			income.Source,
			"",
			income.Amount.String(),
			string(income.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing export CSV: %w", err)
		}
	}

	for _, expense := range expenses {
		row := []string{
			expense.Date.String(),
			"Expense",
			expense.Category,
			expense.Description,
			expense.Amount.String(),
			string(expense.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing export CSV: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
