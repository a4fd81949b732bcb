package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
)

// DriverHandler serves HTTP endpoints for driver resources.
type DriverHandler struct {
	usecase driverUsecase
	logger  logx.Logger
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(logger logx.Logger, uc driverUsecase) *DriverHandler {
	return &DriverHandler{usecase: uc, logger: logger}
}

// GetByID handles GET /drivers/{id}.
func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Register handles POST /drivers.
func (h *DriverHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req driverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Register(r.Context(), domain.Driver{
		Name:        req.Name,
		Phone:       req.Phone,
		VehicleType: domain.VehicleType(req.VehicleType),
	})
	switch {
	case err == nil:
		w.Header().Set("Location", "/drivers/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "phone already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /drivers/{id} with partial updates from the body.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req driverUpdateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.usecase.Update(r.Context(), updateRequestToPartial(id, req))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "phone already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Search handles GET /drivers. It returns eligible drivers, paged,
// optionally filtered by name and vehicle type.
func (h *DriverHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := domain.DriverQuery{Search: q.Get("search")}
	if s := q.Get("page_index"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid page_index")
			return
		}
		query.PageIndex = v
	}
	if s := q.Get("page_size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid page_size")
			return
		}
		query.PageSize = v
	}
	if s := q.Get("vehicle_type"); s != "" {
		vt := domain.VehicleType(s)
		query.VehicleType = &vt
	}

	page, err := h.usecase.Search(r.Context(), query)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, driverPageToResponse(page))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func updateRequestToPartial(id int64, req driverUpdateRequest) domain.PartialDriverUpdate {
	u := domain.PartialDriverUpdate{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.VehicleType != nil {
		vt := domain.VehicleType(*req.VehicleType)
		u.VehicleType = &vt
	}
	if req.ApprovalStatus != nil {
		st := domain.DriverApprovalStatus(*req.ApprovalStatus)
		u.ApprovalStatus = &st
	}
	u.Active = req.Active
	return u
}
