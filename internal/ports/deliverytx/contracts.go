package deliverytx

import (
	"context"

	"github.com/lamkn06/delivery-ops/internal/domain"
)

// Repository is the set of delivery operations available inside one
// transaction.
type Repository interface {
	// GetForUpdate and GetByOrderID lock and return the core delivery
	// row only; stops, fee lines and histories are loaded separately.
	GetForUpdate(ctx context.Context, id int64) (*domain.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error)
	ListStops(ctx context.Context, deliveryID int64) ([]domain.Stop, error)
	ListFeeLines(ctx context.Context, deliveryID int64) ([]domain.FeeLine, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.DeliveryStatus) (bool, error)
	AppendHistory(ctx context.Context, id int64, h domain.StatusHistory) error
	SetProgress(ctx context.Context, id int64, p domain.Progress) error
	SetDriver(ctx context.Context, id int64, driverID *int64, tp *domain.ThirdPartyCourier, status domain.DeliveryStatus) error
	InsertDelivery(ctx context.Context, d *domain.Delivery) error
	GetDriverForUpdate(ctx context.Context, driverID int64) (*domain.Driver, error)
	FindAvailableDriver(ctx context.Context, vehicle domain.VehicleType) (*domain.Driver, error)
	SetDriverBusy(ctx context.Context, driverID int64, busy bool) error
	MaxStopSequence(ctx context.Context, id int64) (int, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
