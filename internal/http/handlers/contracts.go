package handlers

import (
	"context"

	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/service/delivery"
	"github.com/lamkn06/delivery-ops/internal/service/driver"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
)

type deliveryUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
	AdvanceStatus(ctx context.Context, id int64, actor domain.Actor) (*domain.Delivery, error)
	Assign(ctx context.Context, cmd delivery.AssignCommand) (domain.AssignResult, error)
	Reassign(ctx context.Context, cmd delivery.AssignCommand) (domain.ReassignResult, error)
}

// NewDeliveryUsecase wires a delivery Service into a deliveryUsecase.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}

type driverUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	Register(ctx context.Context, d domain.Driver) (int64, error)
	Update(ctx context.Context, u domain.PartialDriverUpdate) error
	Search(ctx context.Context, q domain.DriverQuery) (domain.DriverPage, error)
}

// NewDriverUsecase wires a driver Service into a driverUsecase.
func NewDriverUsecase(svc *driver.Service) driverUsecase {
	return svc
}

type quoteUsecase interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error)
}

// NewQuoteUsecase wires a pricing Service into a quoteUsecase.
func NewQuoteUsecase(svc *pricing.Service) quoteUsecase {
	return svc
}
