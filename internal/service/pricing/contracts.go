package pricing

import (
	"context"

	"github.com/lamkn06/delivery-ops/internal/domain"
)

type rateSource interface {
	RateCardByVehicle(ctx context.Context, vt domain.VehicleType) (*domain.RateCard, error)
	VoucherByCode(ctx context.Context, code string) (*domain.Voucher, error)
}
