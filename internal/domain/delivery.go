package domain

import "time"

// StopState is the derived completion state of a stop.
type StopState string

// List of derived stop states
const (
	StopCompleted StopState = "completed"
	StopCurrent   StopState = "current"
	StopPending   StopState = "pending"
)

// Progress points at the stop the delivery is currently working.
type Progress struct {
	Type       string
	Action     string
	SequenceNo int
}

// Stop is one drop-off point of a multi-stop delivery, ordered by SequenceNo.
type Stop struct {
	ID            int64
	DeliveryID    int64
	SequenceNo    int
	ContactName   string
	ContactNumber string
	Address       string
	ProofPhotoURL string
	ProofSignedBy string
}

// State derives the stop's completion state from delivery-level progress.
// Completion is never stored on the stop itself.
func (s Stop) State(p Progress) StopState {
	switch {
	case s.SequenceNo < p.SequenceNo:
		return StopCompleted
	case s.SequenceNo == p.SequenceNo:
		return StopCurrent
	default:
		return StopPending
	}
}

// StatusHistory is a single append-only status transition record.
type StatusHistory struct {
	ID        int64
	Status    DeliveryStatus
	ActorType string
	ActorID   string
	ActorName string
	Note      string
	At        time.Time
}

// ThirdPartyCourier is a manually entered courier outside the driver pool.
type ThirdPartyCourier struct {
	ContactName   string
	ContactNumber string
}

// Delivery is a courier job tracked through an ordered status sequence.
type Delivery struct {
	ID           int64
	OrderID      string
	TrackingCode string
	Domain       OrderDomain
	PickupOnly   bool
	Status       DeliveryStatus
	DriverID     *int64
	ThirdParty   *ThirdPartyCourier
	Progress     Progress
	Stops        []Stop
	Fee          Fee
	Histories    []StatusHistory
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sequence returns the status sequence this delivery progresses through.
func (d *Delivery) Sequence() StatusSequence {
	return SequenceFor(d.Domain, d.PickupOnly)
}

// NextStatus returns the step following the delivery's current status.
func (d *Delivery) NextStatus() (Step, bool) {
	return d.Sequence().Next(d.Status)
}

// AssignResult - result of assigning a delivery to a driver.
type AssignResult struct {
	DeliveryID   int64
	DriverID     *int64
	ThirdParty   *ThirdPartyCourier
	Status       DeliveryStatus
	AssignedAt   time.Time
	TrackingCode string
}

// ReassignResult - result of reassigning a delivery. Reassignment clones
// the record, so NewDeliveryID differs from the original.
type ReassignResult struct {
	NewDeliveryID int64
	TrackingCode  string
	DriverID      *int64
	ThirdParty    *ThirdPartyCourier
	Status        DeliveryStatus
}

// Actor identifies who requested a state change, for history attribution.
type Actor struct {
	Type string
	ID   string
}
