package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
)

// Service composes delivery fees from rate cards. A fee is composed once
// per delivery and stored; readers never re-derive the totals.
type Service struct {
	rates            rateSource
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a pricing Service.
func NewService(rates rateSource, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		rates:            rates,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// QuoteRequest describes the delivery a fee is composed for. Amounts and
// fees are in minor currency units, distance in meters.
type QuoteRequest struct {
	VehicleType    domain.VehicleType
	DistanceMeters int64
	VoucherCode    string
	CODAmount      int64
}

func (q QuoteRequest) validate() error {
	if !q.VehicleType.Valid() || q.DistanceMeters < 0 || q.CODAmount < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Quote composes the full fee for a delivery: the rate card's base and
// per-kilometer charge floored at the minimum fare, its surcharges, an
// optional voucher discount, and the synthetic collected/remitted lines
// when cash is collected on delivery.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (domain.Fee, error) {
	if err := req.validate(); err != nil {
		return domain.Fee{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	rc, err := s.rates.RateCardByVehicle(ctx, req.VehicleType)
	if err != nil {
		return domain.Fee{}, err
	}
	if rc == nil {
		return domain.Fee{}, apperr.ErrNotFound
	}

	distanceFee := rc.PerKM * req.DistanceMeters / 1000
	detail := []domain.FeeLine{
		{Particular: "Base fare", Amount: rc.BaseFee, Type: domain.FeeTypeDeliveryFee},
		{Particular: "Distance", Amount: distanceFee, Type: domain.FeeTypeDistanceFee},
	}

	deliveryFee := rc.BaseFee + distanceFee
	if deliveryFee < rc.MinFee {
		detail = append(detail, domain.FeeLine{
			Particular: "Minimum fare adjustment",
			Amount:     rc.MinFee - deliveryFee,
			Type:       domain.FeeTypeDeliveryFee,
		})
		deliveryFee = rc.MinFee
	}

	var otherFee int64
	for _, l := range rc.Surcharges {
		otherFee += l.Amount
		detail = append(detail, l)
	}

	var discount int64
	if code := strings.TrimSpace(req.VoucherCode); code != "" {
		discount, err = s.voucherDiscount(ctx, code, deliveryFee+otherFee)
		if err != nil {
			return domain.Fee{}, err
		}
		detail = append(detail, domain.FeeLine{
			Particular: fmt.Sprintf("Voucher %s", strings.ToUpper(code)),
			Amount:     -discount,
			Type:       domain.FeeTypeDiscount,
		})
	}

	fee := domain.Fee{
		Total:       deliveryFee + otherFee - discount,
		DeliveryFee: deliveryFee,
		OtherFee:    otherFee,
	}
	if req.CODAmount > 0 {
		fee.AmountToBeCollected = fee.Total + req.CODAmount
		fee.AmountToBeRemitted = req.CODAmount
		detail = append(detail,
			domain.FeeLine{Particular: "Amount to be collected", Amount: fee.AmountToBeCollected, Type: domain.FeeTypeAmountToCollect},
			domain.FeeLine{Particular: "Amount to be remitted", Amount: fee.AmountToBeRemitted, Type: domain.FeeTypeAmountToBeRemited},
		)
	}
	fee.Detail = detail

	s.logger.Debug("fee composed",
		logx.String("vehicle_type", string(req.VehicleType)),
		logx.Int64("total", fee.Total),
	)
	return fee, nil
}

// voucherDiscount resolves and applies a voucher code. An unknown,
// expired or not-yet-eligible voucher rejects the quote rather than being
// silently ignored.
func (s *Service) voucherDiscount(ctx context.Context, code string, subtotal int64) (int64, error) {
	v, err := s.rates.VoucherByCode(ctx, code)
	if err != nil {
		return 0, err
	}
	if v == nil || !v.Usable(subtotal, s.now()) {
		return 0, apperr.ErrInvalid
	}
	if v.Discount > subtotal {
		return subtotal, nil
	}
	return v.Discount, nil
}
