package invoice_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/invoice"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
)

// Mock repository for testing
type mockInvoiceRepository struct {
	partners      map[int64]*partner.Partner
	resources     []*resource.Resource
	timesheets    []*timesheet.Timesheet
	expenses      []*expense.Expense
	resourcesErr  error
	timesheetsErr error
	expensesErr   error
}

func newMockInvoiceRepository() *mockInvoiceRepository {
	return &mockInvoiceRepository{
		partners: make(map[int64]*partner.Partner),
	}
}

func (m *mockInvoiceRepository) GetPartner(id int64) (*partner.Partner, error) {
	p, exists := m.partners[id]
	if !exists {
		return nil, partner.ErrPartnerNotFound
	}
	return p, nil
}

func (m *mockInvoiceRepository) GetResources() ([]*resource.Resource, error) {
	if m.resourcesErr != nil {
		return nil, m.resourcesErr
	}
	return m.resources, nil
}

func (m *mockInvoiceRepository) GetTimesheetsInPeriod(start, end time.Time) ([]*timesheet.Timesheet, error) {
	if m.timesheetsErr != nil {
		return nil, m.timesheetsErr
	}
	filtered := make([]*timesheet.Timesheet, 0)
	for _, ts := range m.timesheets {
		if !ts.WorkDate.Before(start) && !ts.WorkDate.After(end) {
			filtered = append(filtered, ts)
		}
	}
	return filtered, nil
}

func (m *mockInvoiceRepository) GetExpensesInPeriod(start, end time.Time) ([]*expense.Expense, error) {
	if m.expensesErr != nil {
		return nil, m.expensesErr
	}
	filtered := make([]*expense.Expense, 0)
	for _, e := range m.expenses {
		if !e.ExpenseDate.Before(start) && !e.ExpenseDate.After(end) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

var _ = Describe("InvoiceService", func() {
	var (
		service  *invoice.Service
		mockRepo *mockInvoiceRepository
		logger   *slog.Logger
		period   invoice.Period
	)

	BeforeEach(func() {
		mockRepo = newMockInvoiceRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = invoice.NewService(mockRepo, nil, logger)

		var err error
		period, err = invoice.PeriodForMonth("2025-03")
		Expect(err).ToNot(HaveOccurred())

		mockRepo.partners[1] = &partner.Partner{ID: 1, Name: "Acme Consulting"}
		mockRepo.resources = []*resource.Resource{
			{ID: 10, Name: "Alice", PartnerID: ptr(1), SellRate: 500},
		}
	})

	Describe("GenerateInvoice", func() {
		Context("when the partner exists and has activity", func() {
			It("should return the computed summary", func() {
				mockRepo.timesheets = []*timesheet.Timesheet{
					{ID: 1, ResourceID: 10, WorkDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Hours: 8, Status: timesheet.StatusValidated},
				}
				mockRepo.expenses = []*expense.Expense{
					{ID: 20, ResourceID: 10, ExpenseDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Amount: 100, Chargeable: true, ProcurementMethod: expense.ProcuredByPartner},
				}

				summary, err := service.GenerateInvoice(context.Background(), 1, period, "pm@example.com")

				Expect(err).ToNot(HaveOccurred())
				Expect(summary.PartnerName).To(Equal("Acme Consulting"))
				Expect(summary.TimesheetTotal).To(Equal(500.0))
				Expect(summary.InvoiceTotal).To(Equal(600.0))
			})
		})

		Context("when the partner does not exist", func() {
			It("should return a not found error", func() {
				_, err := service.GenerateInvoice(context.Background(), 42, period, "pm@example.com")

				Expect(err).To(MatchError(partner.ErrPartnerNotFound))

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(http.StatusNotFound))
				Expect(appErr.Code).To(Equal(internal.ErrCodePartnerNotFound))
			})
		})

		Context("when the period is invalid", func() {
			It("should fail before touching the repository", func() {
				bad := invoice.Period{Start: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}

				_, err := service.GenerateInvoice(context.Background(), 1, bad, "pm@example.com")

				Expect(err).To(MatchError(invoice.ErrInvalidPeriod))

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidPeriod))
			})
		})

		Context("when a data fetch fails", func() {
			It("should propagate the error as an internal one", func() {
				mockRepo.timesheetsErr = errors.New("database unavailable")

				_, err := service.GenerateInvoice(context.Background(), 1, period, "pm@example.com")

				Expect(err).To(MatchError(mockRepo.timesheetsErr))

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
