package domain

import "regexp"

type (
	// DriverApprovalStatus represents where a driver is in onboarding.
	DriverApprovalStatus string
	// VehicleType represents the vehicle a driver operates.
	VehicleType string
)

// List of possible driver approval statuses
const (
	ApprovalPending  DriverApprovalStatus = "pending"
	ApprovalApproved DriverApprovalStatus = "approved"
	ApprovalRejected DriverApprovalStatus = "rejected"
)

// List of possible vehicle types
const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleTruck      VehicleType = "truck"
)

var allowedApprovalStatuses = [...]DriverApprovalStatus{
	ApprovalPending, ApprovalApproved, ApprovalRejected,
}

var allowedVehicleTypes = [...]VehicleType{
	VehicleMotorcycle, VehicleCar, VehicleTruck,
}

// Valid checks if the DriverApprovalStatus is valid
func (s DriverApprovalStatus) Valid() bool {
	for _, v := range allowedApprovalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// rePhone is a regex to validate phone numbers. E.164 allows up to 15
// digits; 10 to 13 covers every market the platform operates in.
var rePhone = regexp.MustCompile(`^\+[0-9]{10,13}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// Driver represents a delivery driver.
type Driver struct {
	ID             int64
	Name           string
	Phone          string
	VehicleType    VehicleType
	ApprovalStatus DriverApprovalStatus
	Active         bool
	Busy           bool
}

// Eligible reports whether the driver can be offered deliveries.
func (d Driver) Eligible() bool {
	return d.ApprovalStatus == ApprovalApproved && d.Active
}

// PartialDriverUpdate carries optional fields to update a driver.
// A nil field means "do not change" that attribute.
type PartialDriverUpdate struct {
	ID             int64
	Name           *string
	Phone          *string
	VehicleType    *VehicleType
	ApprovalStatus *DriverApprovalStatus
	Active         *bool
}

// DriverQuery describes a page of the eligible-driver search.
type DriverQuery struct {
	Search      string
	VehicleType *VehicleType
	PageIndex   int
	PageSize    int
}

// DriverPage is one page of a driver search plus the has-more flag.
// HasMore is cleared as soon as a page comes back shorter than requested.
type DriverPage struct {
	Drivers []Driver
	HasMore bool
}
