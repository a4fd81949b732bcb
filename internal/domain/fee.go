package domain

import "sort"

// FeeLineType classifies a fee detail line.
type FeeLineType string

// List of fee line types. The collected/remitted markers are synthetic
// bookkeeping lines and never shown in a fee breakdown.
const (
	FeeTypeDeliveryFee       FeeLineType = "delivery_fee"
	FeeTypeDistanceFee       FeeLineType = "distance_fee"
	FeeTypeSurcharge         FeeLineType = "surcharge"
	FeeTypeDiscount          FeeLineType = "discount"
	FeeTypeOtherFee          FeeLineType = "other_fee"
	FeeTypeAmountToCollect   FeeLineType = "amount_to_be_collected"
	FeeTypeAmountToBeRemited FeeLineType = "amount_to_be_remitted"
)

var reservedFeeTypes = map[FeeLineType]struct{}{
	FeeTypeAmountToCollect:   {},
	FeeTypeAmountToBeRemited: {},
}

// FeeLine is one entry of a fee breakdown.
type FeeLine struct {
	Particular string
	Amount     int64
	Type       FeeLineType
}

// Fee is the full fee record of a delivery. Total and the other aggregate
// fields are computed once when the fee is composed and stored; they are
// never re-derived from Detail to avoid drift between readers.
type Fee struct {
	Total               int64
	DeliveryFee         int64
	OtherFee            int64
	AmountToBeCollected int64
	AmountToBeRemitted  int64
	Detail              []FeeLine
}

// DisplayLines returns the breakdown lines fit for presentation: reserved
// synthetic lines and zero-amount lines are dropped, the rest are ordered
// alphabetically by particular. The sort is stable so equal labels keep
// their composition order.
func (f Fee) DisplayLines() []FeeLine {
	out := make([]FeeLine, 0, len(f.Detail))
	for _, l := range f.Detail {
		if _, reserved := reservedFeeTypes[l.Type]; reserved {
			continue
		}
		if l.Amount == 0 {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Particular < out[j].Particular
	})
	return out
}
