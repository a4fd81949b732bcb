package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lamkn06/delivery-ops/internal/domain"
)

// PricingRepo loads rate cards and vouchers.
type PricingRepo struct{ db *pgxpool.Pool }

// NewPricingRepo creates a new PricingRepo.
func NewPricingRepo(db *pgxpool.Pool) *PricingRepo { return &PricingRepo{db: db} }

// RateCardByVehicle returns the rate card configured for a vehicle type,
// including its surcharge lines.
func (r *PricingRepo) RateCardByVehicle(ctx context.Context, vt domain.VehicleType) (*domain.RateCard, error) {
	var rc domain.RateCard
	err := r.db.QueryRow(ctx,
		`SELECT id, name, vehicle_type, base_fee, per_km, min_fee
         FROM rate_cards WHERE vehicle_type = $1`, string(vt),
	).Scan(&rc.ID, &rc.Name, &rc.VehicleType, &rc.BaseFee, &rc.PerKM, &rc.MinFee)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate card for %s: %w", vt, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT particular, amount FROM rate_card_surcharges
         WHERE rate_card_id = $1 ORDER BY id`, rc.ID)
	if err != nil {
		return nil, fmt.Errorf("list surcharges for rate card %d: %w", rc.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		l := domain.FeeLine{Type: domain.FeeTypeSurcharge}
		if err := rows.Scan(&l.Particular, &l.Amount); err != nil {
			return nil, err
		}
		rc.Surcharges = append(rc.Surcharges, l)
	}
	return &rc, rows.Err()
}

// VoucherByCode returns the voucher with the given code, nil if absent.
func (r *PricingRepo) VoucherByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	code = strings.TrimSpace(code)
	var (
		v         domain.Voucher
		expiresAt *time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, code, discount, min_amount, active, expires_at
         FROM vouchers WHERE code = $1`, code,
	).Scan(&v.ID, &v.Code, &v.Discount, &v.MinAmount, &v.Active, &expiresAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher %q: %w", code, err)
	}
	if expiresAt != nil {
		v.ExpiresAt = *expiresAt
	}
	return &v, nil
}
