package handlers

import (
	"errors"
	"net/http"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/http/middleware/auth"
	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/service/delivery"
)

// DeliveryHandler serves HTTP endpoints for delivery resources.
type DeliveryHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc, logger: logger}
}

// requestActor returns the authenticated actor, or an anonymous admin
// when authentication is disabled.
func requestActor(r *http.Request) domain.Actor {
	if a, ok := auth.ActorFromContext(r.Context()); ok {
		return a
	}
	return domain.Actor{Type: "admin", ID: "anonymous"}
}

// GetByID handles GET /deliveries/{id}.
func (h *DeliveryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// NextStatus handles POST /deliveries/{id}/next-status.
func (h *DeliveryHandler) NextStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.AdvanceStatus(r.Context(), id, requestActor(r))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "status cannot be advanced")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Assign handles POST /deliveries/assign.
func (h *DeliveryHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Assign(r.Context(), assignRequestToCommand(req, requestActor(r)))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery or driver not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "delivery cannot be assigned")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Reassign handles POST /deliveries/reassign.
func (h *DeliveryHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	var req assignDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Reassign(r.Context(), assignRequestToCommand(req, requestActor(r)))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, reassignResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery or driver not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "delivery cannot be reassigned")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func assignRequestToCommand(req assignDeliveryRequest, actor domain.Actor) delivery.AssignCommand {
	cmd := delivery.AssignCommand{
		DeliveryID: req.DeliveryID,
		DriverID:   req.DriverID,
		Reason:     req.Reason,
		Actor:      actor,
	}
	if req.ThirdParty != nil {
		cmd.ThirdParty = &domain.ThirdPartyCourier{
			ContactName:   req.ThirdParty.ContactName,
			ContactNumber: req.ThirdParty.ContactNumber,
		}
	}
	return cmd
}
