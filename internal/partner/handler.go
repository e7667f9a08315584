package partner

import (
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
	CreatePartner(dto CreatePartnerDTO) (*Partner, error)
	GetPartnerByID(id int64) (*Partner, error)
	GetAllPartners() ([]*Partner, error)
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

func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var dto CreatePartnerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreatePartner: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreatePartner(dto)
	if err != nil {
		h.Logger.Error("CreatePartner: service error", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetPartner(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	partnerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid partner ID")
		return
	}

	if !user.CanViewPartner(partnerID) {
		h.Logger.Warn("GetPartner: partner scope violation", "partner_id", partnerID, "user_id", user.ID)
		h.WriteError(w, http.StatusForbidden, "access to this partner is not allowed")
		return
	}

	p, err := h.Service.GetPartnerByID(partnerID)
	if err != nil {
		h.WriteError(w, http.StatusNotFound, "partner not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) GetAllPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Service.GetAllPartners()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list partners")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"partners": partners,
	})
}
