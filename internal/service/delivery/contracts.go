//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery

package delivery

import (
	"context"
	"time"

	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/ports/deliverytx"
)

type deliveryRepository interface {
	WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
}

type snapshotCache interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, bool)
	Put(ctx context.Context, d *domain.Delivery)
	Invalidate(ctx context.Context, id int64)
}

// StatusEvent is published after every committed status transition.
type StatusEvent struct {
	DeliveryID   int64                 `json:"delivery_id"`
	TrackingCode string                `json:"tracking_code"`
	Domain       domain.OrderDomain    `json:"domain"`
	Status       domain.DeliveryStatus `json:"status"`
	At           time.Time             `json:"at"`
}

type statusPublisher interface {
	PublishStatusChanged(ctx context.Context, ev StatusEvent) error
}

type nameResolver interface {
	ResolveName(ctx context.Context, actorType, actorID string) (string, error)
}
