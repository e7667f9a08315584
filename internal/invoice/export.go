package invoice

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes the full summary, every line item included. Supplier
// paid expenses carry an explicit "excluded" marker instead of being dropped.
func WriteCSV(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)

	header := []string{"resource", "type", "date", "detail", "hours", "rate", "amount", "status", "chargeable", "included_in_total"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, line := range s.Lines {
		for _, ts := range line.Timesheets {
			record := []string{
				line.ResourceName,
				"timesheet",
				ts.Date.Format("2006-01-02"),
				"",
				formatAmount(ts.Hours),
				formatAmount(line.SellRate),
				formatAmount(ts.Value),
				string(ts.Status),
				"",
				"yes",
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		for _, e := range line.Expenses {
			included := "yes"
			if e.ExcludedFromTotal {
				included = "excluded"
			}
			chargeable := "no"
			if e.Chargeable {
				chargeable = "yes"
			}
			record := []string{
				line.ResourceName,
				"expense",
				e.Date.Format("2006-01-02"),
				e.Category,
				"",
				"",
				formatAmount(e.Amount),
				string(e.ProcurementMethod),
				chargeable,
				included,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	totals := [][]string{
		{"", "timesheet_total", "", "", "", "", formatAmount(s.TimesheetTotal), "", "", ""},
		{"", "total_expenses", "", "", "", "", formatAmount(s.TotalExpenses), "", "", ""},
		{"", "expenses_billable", "", "", "", "", formatAmount(s.ExpensesBillable), "", "", ""},
		{"", "expenses_non_billable", "", "", "", "", formatAmount(s.ExpensesNonBillable), "", "", ""},
		{"", "expenses_paid_by_partner", "", "", "", "", formatAmount(s.ExpensesPaidByPartner), "", "", ""},
		{"", "expenses_paid_by_supplier", "", "", "", "", formatAmount(s.ExpensesPaidBySupplier), "", "", "excluded"},
		{"", "invoice_total", "", "", "", "", formatAmount(s.InvoiceTotal), "", "", ""},
	}
	for _, record := range totals {
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
