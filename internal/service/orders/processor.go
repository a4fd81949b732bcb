package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/ports/deliverytx"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
)

var systemActor = domain.Actor{Type: "system", ID: "orders"}

// Processor turns order events into delivery records: a created order
// opens a delivery and assigns it to a free driver when one is available
// (pending otherwise), a canceled order cancels the active record, a
// completed order releases the driver.
type Processor struct {
	repo            TxRunner
	fees            FeeComposer
	cache           SnapshotInvalidator
	events          *prometheus.CounterVec
	logger          logx.Logger
	factory         actionFactory
	now             func() time.Time
	newTrackingCode func() string
}

// NewProcessor creates an orders Processor. Cache and the events counter
// may be nil.
func NewProcessor(repo TxRunner, fees FeeComposer, cache SnapshotInvalidator, events *prometheus.CounterVec, logger logx.Logger) *Processor {
	p := &Processor{
		repo:            repo,
		fees:            fees,
		cache:           cache,
		events:          events,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
		newTrackingCode: func() string { return uuid.NewString() },
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled, p.onCompleted)
	return p
}

// Handle processes a single order event. Events with an unmapped status
// are skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order event skipped",
			logx.String("order_id", e.OrderID), logx.String("status", e.Status))
		return nil
	}
	if p.events != nil {
		p.events.WithLabelValues(strings.ToLower(strings.TrimSpace(e.Status))).Inc()
	}
	return fn(ctx, e)
}

func (e Event) validateCreated() error {
	if strings.TrimSpace(e.OrderID) == "" {
		return apperr.ErrInvalid
	}
	if !domain.OrderDomain(e.Domain).Valid() {
		return apperr.ErrInvalid
	}
	if !domain.VehicleType(e.VehicleType).Valid() {
		return apperr.ErrInvalid
	}
	if len(e.Stops) == 0 {
		return apperr.ErrInvalid
	}
	return nil
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	if err := e.validateCreated(); err != nil {
		return err
	}

	fee, err := p.fees.Quote(ctx, pricing.QuoteRequest{
		VehicleType:    domain.VehicleType(e.VehicleType),
		DistanceMeters: e.DistanceMeters,
		VoucherCode:    e.VoucherCode,
		CODAmount:      e.CODAmount,
	})
	if err != nil {
		return err
	}

	stops := make([]domain.Stop, len(e.Stops))
	for i, s := range e.Stops {
		stops[i] = domain.Stop{
			SequenceNo:    i + 1,
			ContactName:   s.ContactName,
			ContactNumber: s.ContactNumber,
			Address:       s.Address,
		}
	}

	var created *domain.Delivery
	err = p.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		existing, err := tx.GetByOrderID(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if existing != nil {
			// redelivered event, the record already exists
			return nil
		}

		d := &domain.Delivery{
			OrderID:      e.OrderID,
			TrackingCode: p.newTrackingCode(),
			Domain:       domain.OrderDomain(e.Domain),
			PickupOnly:   e.PickupOnly,
			Status:       domain.StatusPending,
			Stops:        stops,
			Fee:          fee,
		}
		if err := tx.InsertDelivery(ctx, d); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, d.ID, domain.StatusHistory{
			Status:    domain.StatusPending,
			ActorType: systemActor.Type,
			ActorID:   systemActor.ID,
			At:        p.now(),
		}); err != nil {
			return err
		}
		if err := p.autoAssign(ctx, tx, d, domain.VehicleType(e.VehicleType)); err != nil {
			return err
		}
		created = d
		return nil
	})
	if err != nil {
		return err
	}

	if created != nil {
		p.logger.Info("delivery opened for order",
			logx.String("event", "delivery_opened"),
			logx.String("order_id", e.OrderID),
			logx.Int64("delivery_id", created.ID),
			logx.String("status", string(created.Status)),
		)
	}
	return nil
}

// autoAssign hands the new delivery to an idle driver when one is free
// for the vehicle type. No free driver leaves the delivery pending for
// an operator to assign.
func (p *Processor) autoAssign(ctx context.Context, tx deliverytx.Repository, d *domain.Delivery, vehicle domain.VehicleType) error {
	drv, err := tx.FindAvailableDriver(ctx, vehicle)
	if err != nil {
		return err
	}
	if drv == nil {
		return nil
	}

	if err := tx.SetDriverBusy(ctx, drv.ID, true); err != nil {
		return err
	}
	if err := tx.SetDriver(ctx, d.ID, &drv.ID, nil, domain.StatusAssigned); err != nil {
		return err
	}
	if err := tx.AppendHistory(ctx, d.ID, domain.StatusHistory{
		Status:    domain.StatusAssigned,
		ActorType: systemActor.Type,
		ActorID:   systemActor.ID,
		Note:      "auto-assigned on order intake",
		At:        p.now(),
	}); err != nil {
		return err
	}
	d.DriverID = &drv.ID
	d.Status = domain.StatusAssigned
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	if strings.TrimSpace(e.OrderID) == "" {
		return apperr.ErrInvalid
	}

	var canceledID int64
	err := p.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetByOrderID(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if d == nil {
			return nil
		}
		if d.Status == domain.StatusCanceled || d.Sequence().Terminal(d.Status) {
			return nil
		}

		if d.DriverID != nil {
			if err := tx.SetDriverBusy(ctx, *d.DriverID, false); err != nil {
				return err
			}
		}
		canceled, err := tx.UpdateStatus(ctx, d.ID, d.Status, domain.StatusCanceled)
		if err != nil {
			return err
		}
		if !canceled {
			return apperr.ErrConflict
		}
		if err := tx.AppendHistory(ctx, d.ID, domain.StatusHistory{
			Status:    domain.StatusCanceled,
			ActorType: systemActor.Type,
			ActorID:   systemActor.ID,
			Note:      "order canceled upstream",
			At:        p.now(),
		}); err != nil {
			return err
		}
		canceledID = d.ID
		return nil
	})
	if err != nil {
		return err
	}

	if canceledID != 0 {
		if p.cache != nil {
			p.cache.Invalidate(ctx, canceledID)
		}
		p.logger.Info("delivery canceled for order",
			logx.String("event", "delivery_canceled"),
			logx.String("order_id", e.OrderID),
			logx.Int64("delivery_id", canceledID),
		)
	}
	return nil
}

// onCompleted releases the driver when the ordering platform closes an
// order. Normally the terminal status transition already did this, the
// event is a safety net for deliveries closed out-of-band.
func (p *Processor) onCompleted(ctx context.Context, e Event) error {
	if strings.TrimSpace(e.OrderID) == "" {
		return apperr.ErrInvalid
	}
	return p.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetByOrderID(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if d == nil || d.DriverID == nil {
			return nil
		}
		return tx.SetDriverBusy(ctx, *d.DriverID, false)
	})
}
