package kafka

import (
	"strings"
	"time"

	"github.com/lamkn06/delivery-ops/internal/service/orders"
)

// EventDTO is the wire shape of an order event.
type EventDTO struct {
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	Domain         string    `json:"domain"`
	PickupOnly     bool      `json:"pickup_only"`
	VehicleType    string    `json:"vehicle_type"`
	DistanceMeters int64     `json:"distance_meters"`
	VoucherCode    string    `json:"voucher_code"`
	CODAmount      int64     `json:"cod_amount"`
	Stops          []StopDTO `json:"stops"`
	CreatedAt      time.Time `json:"created_at"`
}

// StopDTO is the wire shape of one drop-off point.
type StopDTO struct {
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// ToDomain converts EventDTO to orders.Event.
func ToDomain(dto EventDTO) orders.Event {
	stops := make([]orders.EventStop, len(dto.Stops))
	for i, s := range dto.Stops {
		stops[i] = orders.EventStop{
			ContactName:   strings.TrimSpace(s.ContactName),
			ContactNumber: strings.TrimSpace(s.ContactNumber),
			Address:       strings.TrimSpace(s.Address),
		}
	}
	return orders.Event{
		OrderID:        strings.TrimSpace(dto.OrderID),
		Status:         strings.TrimSpace(dto.Status),
		Domain:         strings.TrimSpace(dto.Domain),
		PickupOnly:     dto.PickupOnly,
		VehicleType:    strings.TrimSpace(dto.VehicleType),
		DistanceMeters: dto.DistanceMeters,
		VoucherCode:    strings.TrimSpace(dto.VoucherCode),
		CODAmount:      dto.CODAmount,
		Stops:          stops,
		CreatedAt:      dto.CreatedAt,
	}
}
