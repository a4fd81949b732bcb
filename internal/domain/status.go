package domain

// OrderDomain selects which status vocabulary applies to a delivery.
type OrderDomain string

// List of supported order domains
const (
	DomainParcel OrderDomain = "parcel"
	DomainFood   OrderDomain = "food"
)

// DeliveryStatus is a single value from an ordered status vocabulary.
type DeliveryStatus string

// List of parcel delivery statuses, in progression order
const (
	StatusPending   DeliveryStatus = "pending"
	StatusAssigned  DeliveryStatus = "assigned"
	StatusForPickup DeliveryStatus = "for_pickup"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusOnGoing   DeliveryStatus = "on_going"
	StatusDelivered DeliveryStatus = "delivered"
)

// List of food-order statuses not shared with the parcel vocabulary
const (
	StatusConfirmed      DeliveryStatus = "confirmed"
	StatusPreparing      DeliveryStatus = "preparing"
	StatusReadyForPickup DeliveryStatus = "ready_for_pickup"
	StatusForDelivery    DeliveryStatus = "for_delivery"
	StatusCompleted      DeliveryStatus = "completed"
)

// StatusCanceled sits outside every sequence: a canceled delivery has no
// next step by construction.
const StatusCanceled DeliveryStatus = "canceled"

var parcelStatuses = []DeliveryStatus{
	StatusPending,
	StatusAssigned,
	StatusForPickup,
	StatusPickedUp,
	StatusOnGoing,
	StatusDelivered,
}

var foodStatuses = []DeliveryStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReadyForPickup,
	StatusForDelivery,
	StatusOnGoing,
	StatusDelivered,
	StatusCompleted,
}

// deliveryLegStatuses are skipped when a food order is collected by the
// customer instead of handed to a rider.
var deliveryLegStatuses = map[DeliveryStatus]struct{}{
	StatusForDelivery: {},
	StatusOnGoing:     {},
	StatusDelivered:   {},
}

// Step is a position inside a StatusSequence.
type Step struct {
	Status DeliveryStatus
	Index  int
}

// StatusSequence is an ordered status vocabulary. The last element is the
// terminal status.
type StatusSequence []DeliveryStatus

// SequenceFor returns the status sequence for the given order domain.
// For food orders pickupOnly drops the delivery-leg statuses.
func SequenceFor(d OrderDomain, pickupOnly bool) StatusSequence {
	switch d {
	case DomainFood:
		if !pickupOnly {
			return foodStatuses
		}
		out := make(StatusSequence, 0, len(foodStatuses))
		for _, s := range foodStatuses {
			if _, skip := deliveryLegStatuses[s]; skip {
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		return parcelStatuses
	}
}

// Next returns the status following current and its position in the
// sequence. A current status that is terminal or not present in the
// sequence yields ok=false: there is no further step to offer, which is
// the defined end state rather than an error.
func (seq StatusSequence) Next(current DeliveryStatus) (Step, bool) {
	idx := seq.index(current)
	if idx == -1 || idx == len(seq)-1 {
		return Step{}, false
	}
	return Step{Status: seq[idx+1], Index: idx + 1}, true
}

// Terminal reports whether s is the last status of the sequence.
func (seq StatusSequence) Terminal(s DeliveryStatus) bool {
	return len(seq) > 0 && seq[len(seq)-1] == s
}

// Contains reports whether s belongs to the sequence.
func (seq StatusSequence) Contains(s DeliveryStatus) bool {
	return seq.index(s) != -1
}

func (seq StatusSequence) index(s DeliveryStatus) int {
	for i, v := range seq {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid checks if the OrderDomain is valid.
func (d OrderDomain) Valid() bool {
	return d == DomainParcel || d == DomainFood
}
