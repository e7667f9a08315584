package invoice

import (
	"errors"
	"time"

	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/timesheet"
)

var (
	// ErrInvalidPeriod is returned for an inverted or incomplete date range.
	ErrInvalidPeriod = errors.New("invalid invoice period")
	// ErrUnknownPartner is returned when the partner id is absent from the
	// resource directory entirely. A known partner with no activity in the
	// period yields a zero-valued summary instead.
	ErrUnknownPartner = errors.New("partner not present in resource directory")
)

// Period is a closed calendar date range. Both bounds are inclusive and carry
// no time-of-day component.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: dateOnly(start), End: dateOnly(end)}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodForMonth builds the period covering a whole calendar month, given in
// "YYYY-MM" form.
func PeriodForMonth(month string) (Period, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: end}, nil
}

func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return ErrInvalidPeriod
	}
	if p.Start.After(p.End) {
		return ErrInvalidPeriod
	}
	return nil
}

// Contains reports whether the calendar date of d falls within the period.
func (p Period) Contains(d time.Time) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(p.Start)) && !day.After(dateOnly(p.End))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Summary is the invoice for one partner and period. It is a pure function of
// its inputs: regenerating against unchanged data yields identical output,
// including line ordering.
type Summary struct {
	PartnerID   int64  `json:"partner_id"`
	PartnerName string `json:"partner_name"`
	Period      Period `json:"period"`

	TimesheetTotal float64 `json:"timesheet_total"`

	TotalExpenses          float64 `json:"total_expenses"`
	ExpensesBillable       float64 `json:"expenses_billable"`
	ExpensesNonBillable    float64 `json:"expenses_non_billable"`
	ExpensesPaidByPartner  float64 `json:"expenses_paid_by_partner"`
	ExpensesPaidBySupplier float64 `json:"expenses_paid_by_supplier"`

	// InvoiceTotal is what the partner is billed: timesheet value plus
	// partner-paid expenses. Supplier-paid expenses never contribute.
	InvoiceTotal float64 `json:"invoice_total"`

	Lines    []ResourceLine `json:"lines"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

// LineItemCount is the number of individual entries across all resource lines.
func (s *Summary) LineItemCount() int {
	n := 0
	for _, line := range s.Lines {
		n += len(line.Timesheets) + len(line.Expenses)
	}
	return n
}

// ResourceLine groups a resource's entries with per-resource subtotals.
type ResourceLine struct {
	ResourceID     int64   `json:"resource_id"`
	ResourceName   string  `json:"resource_name"`
	SellRate       float64 `json:"sell_rate"`
	TotalHours     float64 `json:"total_hours"`
	TimesheetValue float64 `json:"timesheet_value"`

	Timesheets []TimesheetLine `json:"timesheets"`
	Expenses   []ExpenseLine   `json:"expenses"`
}

type TimesheetLine struct {
	EntryID int64            `json:"entry_id"`
	Date    time.Time        `json:"date"`
	Hours   float64          `json:"hours"`
	Status  timesheet.Status `json:"status"`
	Value   float64          `json:"value"`
}

type ExpenseLine struct {
	EntryID           int64                     `json:"entry_id"`
	Date              time.Time                 `json:"date"`
	Amount            float64                   `json:"amount"`
	Category          string                    `json:"category"`
	Chargeable        bool                      `json:"chargeable"`
	ProcurementMethod expense.ProcurementMethod `json:"procurement_method"`
	// ExcludedFromTotal marks supplier-paid expenses, listed for completeness
	// but never added to InvoiceTotal.
	ExcludedFromTotal bool `json:"excluded_from_total"`
}

// Warning reports a data-integrity issue found while aggregating, such as an
// entry referencing a resource missing from the directory. Warnings never
// block invoice generation.
type Warning struct {
	EntryType  string `json:"entry_type"`
	EntryID    int64  `json:"entry_id"`
	ResourceID int64  `json:"resource_id"`
	Message    string `json:"message"`
}
