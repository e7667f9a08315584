package resource

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amsf/project-tracker/internal/transport"
	"github.com/amsf/project-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateResource(dto CreateResourceDTO) (*Resource, error)
	GetResourceByID(id int64) (*Resource, error)
	GetResourcesByPartner(partnerID int64) ([]*Resource, error)
	GetAllResources() ([]*Resource, error)
	UpdateSellRate(id int64, dto UpdateSellRateDTO) (*Resource, error)
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

func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var dto CreateResourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateResource: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.Service.CreateResource(dto)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid resource ID")
		return
	}

	res, err := h.Service.GetResourceByID(resourceID)
	if err != nil {
		h.WriteError(w, http.StatusNotFound, "resource not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) GetAllResources(w http.ResponseWriter, r *http.Request) {
	if partnerIDStr := r.URL.Query().Get("partner_id"); partnerIDStr != "" {
		partnerID, err := strconv.ParseInt(partnerIDStr, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid partner_id")
			return
		}
		resources, err := h.Service.GetResourcesByPartner(partnerID)
		if err != nil {
			h.WriteError(w, http.StatusInternalServerError, "failed to list resources")
			return
		}
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"resources": resources})
		return
	}

	resources, err := h.Service.GetAllResources()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list resources")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"resources": resources})
}

func (h *Handler) UpdateSellRate(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid resource ID")
		return
	}

	var dto UpdateSellRateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.Service.UpdateSellRate(resourceID, dto)
	if err != nil {
		if err == ErrResourceNotFound {
			h.WriteError(w, http.StatusNotFound, "resource not found")
			return
		}
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.WriteJSON(w, http.StatusOK, res)
}
