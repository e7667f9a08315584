package invoice_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/auth"
	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/invoice"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
)

type errorBody struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var _ = Describe("Invoice Handler", func() {
	var (
		mockRepo *mockInvoiceRepository
		handler  *invoice.Handler
		router   *chi.Mux
		pmUser   *auth.User
	)

	BeforeEach(func() {
		mockRepo = newMockInvoiceRepository()
		mockRepo.partners[1] = &partner.Partner{ID: 1, Name: "Acme Consulting"}
		mockRepo.resources = []*resource.Resource{
			{ID: 10, Name: "Alice", PartnerID: ptr(1), SellRate: 500},
		}
		mockRepo.timesheets = []*timesheet.Timesheet{
			{ID: 1, ResourceID: 10, WorkDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Hours: 8, Status: timesheet.StatusValidated},
		}
		mockRepo.expenses = []*expense.Expense{
			{ID: 20, ResourceID: 10, ExpenseDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Amount: 100, Chargeable: true, ProcurementMethod: expense.ProcuredByPartner},
		}

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := invoice.NewService(mockRepo, nil, slogger)
		handler = invoice.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/partners/{id}/invoice", handler.GenerateInvoice)
		router.Get("/partners/{id}/invoice/export", handler.ExportInvoiceCSV)

		pmUser = &auth.User{ID: 5, Email: "pm@example.com", Permissions: []string{auth.PermGenerateInvoices}}
	})

	doRequest := func(target string, user *auth.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if user != nil {
			req = req.WithContext(auth.ContextWithUser(req.Context(), user))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should return the summary for a valid request", func() {
		w := doRequest("/partners/1/invoice?month=2025-03", pmUser)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var summary invoice.Summary
		Expect(json.NewDecoder(w.Body).Decode(&summary)).To(Succeed())
		Expect(summary.PartnerName).To(Equal("Acme Consulting"))
		Expect(summary.TimesheetTotal).To(Equal(500.0))
		Expect(summary.InvoiceTotal).To(Equal(600.0))
	})

	It("should refuse a request without an authenticated user", func() {
		w := doRequest("/partners/1/invoice?month=2025-03", nil)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should reject a non-numeric partner id", func() {
		w := doRequest("/partners/abc/invoice?month=2025-03", pmUser)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body errorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Error.Code).To(Equal(string(internal.ErrCodeValidationFailed)))
	})

	It("should deny a partner-scoped user access to another partner", func() {
		scoped := &auth.User{ID: 9, Email: "acme@example.com", PartnerID: ptr(2), Permissions: []string{auth.PermGenerateInvoices}}

		w := doRequest("/partners/1/invoice?month=2025-03", scoped)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("should reject a request without a period", func() {
		w := doRequest("/partners/1/invoice", pmUser)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body errorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Error.Code).To(Equal(string(internal.ErrCodeInvalidPeriod)))
	})

	It("should reject a malformed month", func() {
		w := doRequest("/partners/1/invoice?month=March-2025", pmUser)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return not found for an unknown partner", func() {
		w := doRequest("/partners/42/invoice?month=2025-03", pmUser)

		Expect(w.Code).To(Equal(http.StatusNotFound))

		var body errorBody
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Error.Code).To(Equal(string(internal.ErrCodePartnerNotFound)))
	})

	It("should export the summary as a CSV attachment", func() {
		w := doRequest("/partners/1/invoice/export?month=2025-03", pmUser)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("text/csv"))
		Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring("invoice-1-2025-03.csv"))
		Expect(w.Body.String()).ToNot(BeEmpty())
	})
})
