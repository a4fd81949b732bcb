package orders

import (
	"time"
)

// Event is a single order event from the ordering platform.
type Event struct {
	OrderID        string      `json:"order_id"`
	Status         string      `json:"status"`
	Domain         string      `json:"domain"`
	PickupOnly     bool        `json:"pickup_only"`
	VehicleType    string      `json:"vehicle_type"`
	DistanceMeters int64       `json:"distance_meters"`
	VoucherCode    string      `json:"voucher_code,omitempty"`
	CODAmount      int64       `json:"cod_amount"`
	Stops          []EventStop `json:"stops"`
	CreatedAt      time.Time   `json:"created_at"`
}

// EventStop is one drop-off point carried on an order event.
type EventStop struct {
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}
