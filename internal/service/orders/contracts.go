package orders

import (
	"context"

	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/ports/deliverytx"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
)

// TxRunner abstracts running a function within a delivery transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error
}

// FeeComposer abstracts the pricing operation needed when an order event
// turns into a new delivery.
type FeeComposer interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (domain.Fee, error)
}

// SnapshotInvalidator drops a cached delivery snapshot after the record
// is mutated outside the HTTP path.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, id int64)
}
