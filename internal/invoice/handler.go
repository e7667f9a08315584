package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/auth"
	"github.com/amsf/project-tracker/internal/transport"
	"github.com/amsf/project-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GenerateInvoice(ctx context.Context, partnerID int64, period Period, generatedBy string) (*Summary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// GenerateInvoice computes the invoice summary for a partner. The period is
// either ?month=YYYY-MM or ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.generate(w, r)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, summary)
}

// ExportInvoiceCSV streams the same summary as CSV, every line item included.
func (h *Handler) ExportInvoiceCSV(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.generate(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("invoice-%d-%s.csv", summary.PartnerID, summary.Period.Start.Format("2006-01"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := WriteCSV(w, summary); err != nil {
		h.Logger.Error("ExportInvoiceCSV: write failed", "error", err)
	}
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*Summary, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.HandleServiceError(w, internal.NewUnauthorizedError("unauthorized", internal.ErrCodeUnauthorizedAccess))
		return nil, false
	}

	partnerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleServiceError(w, internal.NewValidationError("invalid partner ID", internal.ErrCodeValidationFailed))
		return nil, false
	}

	if !user.CanViewPartner(partnerID) {
		h.Logger.Warn("invoice access denied: partner scope", "partner_id", partnerID, "user_id", user.ID)
		h.HandleServiceError(w, internal.NewForbiddenError("access to this partner is not allowed", internal.ErrCodeUnauthorizedAccess))
		return nil, false
	}

	q := r.URL.Query()
	period, err := PeriodFromQuery(q.Get("month"), q.Get("from"), q.Get("to"))
	if err != nil {
		h.HandleServiceError(w, internal.NewValidationError("invalid period: provide month=YYYY-MM or from/to dates", internal.ErrCodeInvalidPeriod).WithCause(err))
		return nil, false
	}

	summary, err := h.Service.GenerateInvoice(r.Context(), partnerID, period, user.Email)
	if err != nil {
		h.Logger.Warn("GenerateInvoice: service error", "error", err, "partner_id", partnerID)
		h.HandleServiceError(w, err)
		return nil, false
	}

	return summary, true
}
