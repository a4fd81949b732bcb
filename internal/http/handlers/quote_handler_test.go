package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
)

type stubQuoteUsecase struct {
	quoteFn func(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error)
}

func (s *stubQuoteUsecase) Quote(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error) {
	if s.quoteFn == nil {
		panic("Quote not expected in this test")
	}
	return s.quoteFn(ctx, req)
}

func TestQuoteHandler_Quote_OK(t *testing.T) {
	t.Parallel()

	uc := &stubQuoteUsecase{
		quoteFn: func(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error) {
			require.Equal(t, pricing.QuoteRequest{
				VehicleType:    domain.VehicleMotorcycle,
				DistanceMeters: 7500,
				VoucherCode:    "SAVE20",
			}, req)
			return domain.Fee{
				Total:       13500,
				DeliveryFee: 14000,
				OtherFee:    1500,
				Detail: []domain.FeeLine{
					{Particular: "Base fare", Amount: 5000, Type: domain.FeeTypeDeliveryFee},
					{Particular: "Distance", Amount: 9000, Type: domain.FeeTypeDistanceFee},
					{Particular: "Peak hour", Amount: 1500, Type: domain.FeeTypeSurcharge},
					{Particular: "Voucher SAVE20", Amount: -2000, Type: domain.FeeTypeDiscount},
				},
			}, nil
		},
	}
	h := NewQuoteHandler(logx.Nop(), uc)

	body := `{"vehicle_type":"motorcycle","distance_meters":7500,"voucher_code":"SAVE20"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Quote(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"total": 13500,
		"delivery_fee": 14000,
		"other_fee": 1500,
		"amount_to_be_collected": 0,
		"amount_to_be_remitted": 0,
		"breakdown": [
			{"particular": "Base fare", "amount": 5000, "type": "delivery_fee"},
			{"particular": "Distance", "amount": 9000, "type": "distance_fee"},
			{"particular": "Peak hour", "amount": 1500, "type": "surcharge"},
			{"particular": "Voucher SAVE20", "amount": -2000, "type": "discount"}
		]
	}`, rr.Body.String())
}

func TestQuoteHandler_Quote_Invalid(t *testing.T) {
	t.Parallel()

	uc := &stubQuoteUsecase{
		quoteFn: func(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error) {
			return domain.Fee{}, apperr.ErrInvalid
		},
	}
	h := NewQuoteHandler(logx.Nop(), uc)

	body := `{"vehicle_type":"bicycle","distance_meters":-1}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Quote(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid input"}`, rr.Body.String())
}

func TestQuoteHandler_Quote_NoRateCard(t *testing.T) {
	t.Parallel()

	uc := &stubQuoteUsecase{
		quoteFn: func(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error) {
			return domain.Fee{}, apperr.ErrNotFound
		},
	}
	h := NewQuoteHandler(logx.Nop(), uc)

	body := `{"vehicle_type":"truck","distance_meters":1000}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Quote(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "no rate card for vehicle type"}`, rr.Body.String())
}

func TestQuoteHandler_Quote_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := NewQuoteHandler(logx.Nop(), &stubQuoteUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"vehicle_type":`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Quote(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid json"}`, rr.Body.String())
}
