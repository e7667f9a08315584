package invoice_test

import (
	"bytes"
	"encoding/csv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/invoice"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
)

var _ = Describe("WriteCSV", func() {
	It("should list every line item and mark supplier-paid expenses excluded", func() {
		acme := &partner.Partner{ID: 1, Name: "Acme Consulting"}
		period, err := invoice.PeriodForMonth("2025-03")
		Expect(err).ToNot(HaveOccurred())

		resources := []*resource.Resource{
			{ID: 10, Name: "Alice", PartnerID: ptr(1), SellRate: 500},
		}
		timesheets := []*timesheet.Timesheet{
			{ID: 1, ResourceID: 10, WorkDate: date(2025, 3, 3), Hours: 8, Status: timesheet.StatusValidated},
		}
		expenses := []*expense.Expense{
			{ID: 20, ResourceID: 10, ExpenseDate: date(2025, 3, 10), Amount: 120, Category: "travel", Chargeable: true, ProcurementMethod: expense.ProcuredByPartner},
			{ID: 21, ResourceID: 10, ExpenseDate: date(2025, 3, 11), Amount: 300, Category: "hardware", ProcurementMethod: expense.ProcuredBySupplier},
		}

		summary, err := invoice.GenerateInvoice(acme, period, timesheets, expenses, resources)
		Expect(err).ToNot(HaveOccurred())

		var buf bytes.Buffer
		Expect(invoice.WriteCSV(&buf, summary)).To(Succeed())

		records, err := csv.NewReader(&buf).ReadAll()
		Expect(err).ToNot(HaveOccurred())

		// Header, three entry rows, seven totals rows.
		Expect(records).To(HaveLen(11))
		Expect(records[0][0]).To(Equal("resource"))

		Expect(records[1][1]).To(Equal("timesheet"))
		Expect(records[1][6]).To(Equal("500.00"))
		Expect(records[1][9]).To(Equal("yes"))

		Expect(records[2][1]).To(Equal("expense"))
		Expect(records[2][9]).To(Equal("yes"))
		Expect(records[3][9]).To(Equal("excluded"))

		last := records[len(records)-1]
		Expect(last[1]).To(Equal("invoice_total"))
		Expect(last[6]).To(Equal("620.00"))
	})
})
