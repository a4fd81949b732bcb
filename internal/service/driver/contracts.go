package driver

import (
	"context"

	"github.com/lamkn06/delivery-ops/internal/domain"
)

//go:generate mockgen -source=contracts.go -destination=driver_mocks_test.go -package=driver

type driverRepository interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	Search(ctx context.Context, q domain.DriverQuery) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialDriverUpdate) (bool, error)
}
