package deliverable

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amsf/project-tracker/internal/auth"
	"github.com/amsf/project-tracker/internal/transport"
	"github.com/amsf/project-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateDeliverable(dto CreateDeliverableDTO) (*Deliverable, error)
	GetDeliverableByID(id int64) (*Deliverable, error)
	GetPartnerDeliverables(partnerID int64) ([]*Deliverable, error)
	SignAsSupplier(id int64, userID int64) (*Deliverable, error)
	SignAsPartner(id int64, userID int64) (*Deliverable, error)
	IssueCertificate(ctx context.Context, id int64) (*Deliverable, error)
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

func (h *Handler) CreateDeliverable(w http.ResponseWriter, r *http.Request) {
	var dto CreateDeliverableDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.CreateDeliverable(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) GetDeliverable(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deliverableID(w, r)
	if !ok {
		return
	}

	d, err := h.Service.GetDeliverableByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if !h.canView(w, r, d.PartnerID) {
		return
	}

	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) GetPartnerDeliverables(w http.ResponseWriter, r *http.Request) {
	partnerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid partner ID")
		return
	}

	if !h.canView(w, r, partnerID) {
		return
	}

	deliverables, err := h.Service.GetPartnerDeliverables(partnerID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, deliverables)
}

// SignAsSupplier handles POST /deliverables/{id}/sign/supplier.
func (h *Handler) SignAsSupplier(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, h.Service.SignAsSupplier)
}

// SignAsPartner handles POST /deliverables/{id}/sign/partner.
func (h *Handler) SignAsPartner(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, h.Service.SignAsPartner)
}

func (h *Handler) sign(w http.ResponseWriter, r *http.Request, apply func(int64, int64) (*Deliverable, error)) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := h.deliverableID(w, r)
	if !ok {
		return
	}

	d, err := apply(id, user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, d)
}

// IssueCertificate handles POST /deliverables/{id}/certificate.
func (h *Handler) IssueCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deliverableID(w, r)
	if !ok {
		return
	}

	d, err := h.Service.IssueCertificate(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) deliverableID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid deliverable ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) canView(w http.ResponseWriter, r *http.Request, partnerID int64) bool {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !user.CanViewPartner(partnerID) {
		h.WriteError(w, http.StatusForbidden, "access to this partner is not allowed")
		return false
	}
	return true
}
