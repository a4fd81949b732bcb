package domain

import "time"

// RateCard is a named set of fee parameters applied when composing a
// delivery fee. Amounts are in minor currency units.
type RateCard struct {
	ID          int64
	Name        string
	VehicleType VehicleType
	BaseFee     int64
	PerKM       int64
	MinFee      int64
	Surcharges  []FeeLine
}

// Voucher is a discount code with eligibility constraints. The server is
// the only place a voucher is ever applied.
type Voucher struct {
	ID        int64
	Code      string
	Discount  int64
	MinAmount int64
	Active    bool
	ExpiresAt time.Time
}

// Usable reports whether the voucher can be applied to an order of the
// given amount at the given time.
func (v Voucher) Usable(amount int64, now time.Time) bool {
	if !v.Active {
		return false
	}
	if !v.ExpiresAt.IsZero() && now.After(v.ExpiresAt) {
		return false
	}
	return amount >= v.MinAmount
}
