package invoice

import (
	"fmt"
	"sort"

	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
)

// GenerateInvoice computes the invoice summary for one partner and period from
// the full candidate sets. It performs all date and ownership filtering itself
// and never mutates its inputs; calling it twice with the same data yields
// identical output.
func GenerateInvoice(
	p *partner.Partner,
	period Period,
	timesheets []*timesheet.Timesheet,
	expenses []*expense.Expense,
	resources []*resource.Resource,
) (*Summary, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	resourcesByID := make(map[int64]*resource.Resource, len(resources))
	partnerHasResources := false
	for _, res := range resources {
		resourcesByID[res.ID] = res
		if res.BelongsToPartner(p.ID) {
			partnerHasResources = true
		}
	}
	if !partnerHasResources {
		return nil, fmt.Errorf("%w: partner %d", ErrUnknownPartner, p.ID)
	}

	summary := &Summary{
		PartnerID:   p.ID,
		PartnerName: p.Name,
		Period:      period,
		Lines:       make([]ResourceLine, 0),
	}

	lines := make(map[int64]*ResourceLine)
	lineFor := func(res *resource.Resource) *ResourceLine {
		if line, ok := lines[res.ID]; ok {
			return line
		}
		line := &ResourceLine{
			ResourceID:   res.ID,
			ResourceName: res.Name,
			SellRate:     res.SellRate,
			Timesheets:   make([]TimesheetLine, 0),
			Expenses:     make([]ExpenseLine, 0),
		}
		lines[res.ID] = line
		return line
	}

	for _, ts := range timesheets {
		if !period.Contains(ts.WorkDate) {
			continue
		}
		res, ok := resourcesByID[ts.ResourceID]
		if !ok {
			summary.Warnings = append(summary.Warnings, Warning{
				EntryType:  "timesheet",
				EntryID:    ts.ID,
				ResourceID: ts.ResourceID,
				Message:    "timesheet references a resource missing from the directory",
			})
			continue
		}
		if !res.BelongsToPartner(p.ID) {
			continue
		}
		if !ts.Status.Billable() {
			continue
		}

		value := ts.Hours * res.HourlyRate()
		line := lineFor(res)
		line.Timesheets = append(line.Timesheets, TimesheetLine{
			EntryID: ts.ID,
			Date:    dateOnly(ts.WorkDate),
			Hours:   ts.Hours,
			Status:  ts.Status,
			Value:   value,
		})
		line.TotalHours += ts.Hours
		line.TimesheetValue += value
		summary.TimesheetTotal += value
	}

	for _, e := range expenses {
		if !period.Contains(e.ExpenseDate) {
			continue
		}
		res, ok := resourcesByID[e.ResourceID]
		if !ok {
			summary.Warnings = append(summary.Warnings, Warning{
				EntryType:  "expense",
				EntryID:    e.ID,
				ResourceID: e.ResourceID,
				Message:    "expense references a resource missing from the directory",
			})
			continue
		}
		if !res.BelongsToPartner(p.ID) {
			continue
		}

		billedToPartner := e.ProcurementMethod.BilledToPartner()
		line := lineFor(res)
		line.Expenses = append(line.Expenses, ExpenseLine{
			EntryID:           e.ID,
			Date:              dateOnly(e.ExpenseDate),
			Amount:            e.Amount,
			Category:          e.Category,
			Chargeable:        e.Chargeable,
			ProcurementMethod: e.ProcurementMethod,
			ExcludedFromTotal: !billedToPartner,
		})

		summary.TotalExpenses += e.Amount
		if e.Chargeable {
			summary.ExpensesBillable += e.Amount
		} else {
			summary.ExpensesNonBillable += e.Amount
		}
		if billedToPartner {
			summary.ExpensesPaidByPartner += e.Amount
		} else {
			summary.ExpensesPaidBySupplier += e.Amount
		}
	}

	summary.InvoiceTotal = summary.TimesheetTotal + summary.ExpensesPaidByPartner

	for _, line := range lines {
		sort.Slice(line.Timesheets, func(i, j int) bool {
			if !line.Timesheets[i].Date.Equal(line.Timesheets[j].Date) {
				return line.Timesheets[i].Date.Before(line.Timesheets[j].Date)
			}
			return line.Timesheets[i].EntryID < line.Timesheets[j].EntryID
		})
		sort.Slice(line.Expenses, func(i, j int) bool {
			if !line.Expenses[i].Date.Equal(line.Expenses[j].Date) {
				return line.Expenses[i].Date.Before(line.Expenses[j].Date)
			}
			return line.Expenses[i].EntryID < line.Expenses[j].EntryID
		})
		summary.Lines = append(summary.Lines, *line)
	}
	sort.Slice(summary.Lines, func(i, j int) bool {
		if summary.Lines[i].ResourceName != summary.Lines[j].ResourceName {
			return summary.Lines[i].ResourceName < summary.Lines[j].ResourceName
		}
		return summary.Lines[i].ResourceID < summary.Lines[j].ResourceID
	})

	sort.Slice(summary.Warnings, func(i, j int) bool {
		if summary.Warnings[i].EntryType != summary.Warnings[j].EntryType {
			return summary.Warnings[i].EntryType < summary.Warnings[j].EntryType
		}
		return summary.Warnings[i].EntryID < summary.Warnings[j].EntryID
	})

	return summary, nil
}
