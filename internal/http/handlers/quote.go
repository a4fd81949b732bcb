package handlers

import (
	"errors"
	"net/http"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
)

// QuoteHandler serves fee quote requests.
type QuoteHandler struct {
	usecase quoteUsecase
	logger  logx.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(logger logx.Logger, uc quoteUsecase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, logger: logger}
}

// Quote handles POST /quotes.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	fee, err := h.usecase.Quote(r.Context(), pricing.QuoteRequest{
		VehicleType:    domain.VehicleType(req.VehicleType),
		DistanceMeters: req.DistanceMeters,
		VoucherCode:    req.VoucherCode,
		CODAmount:      req.CODAmount,
	})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, feeToResponse(fee))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "no rate card for vehicle type")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
