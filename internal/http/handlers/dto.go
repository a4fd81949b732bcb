package handlers

import "time"

type stopResponse struct {
	ID            int64  `json:"id"`
	SequenceNo    int    `json:"sequence_no"`
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	State         string `json:"state"`
	ProofPhotoURL string `json:"proof_photo_url,omitempty"`
	ProofSignedBy string `json:"proof_signed_by,omitempty"`
}

type feeLineResponse struct {
	Particular string `json:"particular"`
	Amount     int64  `json:"amount"`
	Type       string `json:"type"`
}

type feeResponse struct {
	Total               int64             `json:"total"`
	DeliveryFee         int64             `json:"delivery_fee"`
	OtherFee            int64             `json:"other_fee"`
	AmountToBeCollected int64             `json:"amount_to_be_collected"`
	AmountToBeRemitted  int64             `json:"amount_to_be_remitted"`
	Breakdown           []feeLineResponse `json:"breakdown"`
}

type historyResponse struct {
	Status    string    `json:"status"`
	ActorType string    `json:"actor_type"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name,omitempty"`
	Note      string    `json:"note,omitempty"`
	At        time.Time `json:"at"`
}

type thirdPartyResponse struct {
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
}

type deliveryResponse struct {
	ID           int64               `json:"id"`
	OrderID      string              `json:"order_id,omitempty"`
	TrackingCode string              `json:"tracking_code"`
	Domain       string              `json:"domain"`
	PickupOnly   bool                `json:"pickup_only"`
	Status       string              `json:"status"`
	NextStatus   string              `json:"next_status,omitempty"`
	DriverID     *int64              `json:"driver_id,omitempty"`
	ThirdParty   *thirdPartyResponse `json:"third_party_courier,omitempty"`
	Stops        []stopResponse      `json:"stops"`
	Fee          feeResponse         `json:"fee"`
	Histories    []historyResponse   `json:"histories"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type thirdPartyRequest struct {
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
}

type assignDeliveryRequest struct {
	DeliveryID int64              `json:"delivery_id"`
	DriverID   *int64             `json:"driver_id,omitempty"`
	ThirdParty *thirdPartyRequest `json:"third_party_courier,omitempty"`
	Reason     string             `json:"reason,omitempty"`
}

type assignDeliveryResponse struct {
	DeliveryID   int64               `json:"delivery_id"`
	TrackingCode string              `json:"tracking_code"`
	DriverID     *int64              `json:"driver_id,omitempty"`
	ThirdParty   *thirdPartyResponse `json:"third_party_courier,omitempty"`
	Status       string              `json:"status"`
	AssignedAt   time.Time           `json:"assigned_at"`
}

type reassignDeliveryResponse struct {
	NewDeliveryID int64               `json:"new_delivery_id"`
	TrackingCode  string              `json:"tracking_code"`
	DriverID      *int64              `json:"driver_id,omitempty"`
	ThirdParty    *thirdPartyResponse `json:"third_party_courier,omitempty"`
	Status        string              `json:"status"`
}

type driverRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
}

type driverUpdateRequest struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	VehicleType    *string `json:"vehicle_type,omitempty"`
	ApprovalStatus *string `json:"approval_status,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}

type driverResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	VehicleType    string `json:"vehicle_type"`
	ApprovalStatus string `json:"approval_status"`
	Active         bool   `json:"active"`
	Busy           bool   `json:"busy"`
}

type driverPageResponse struct {
	Drivers []driverResponse `json:"drivers"`
	HasMore bool             `json:"has_more"`
}

type quoteRequest struct {
	VehicleType    string `json:"vehicle_type"`
	DistanceMeters int64  `json:"distance_meters"`
	VoucherCode    string `json:"voucher_code,omitempty"`
	CODAmount      int64  `json:"cod_amount,omitempty"`
}
