package delivery

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
)

// Service owns delivery status progression and (re)assignment. Every
// mutation runs in one transaction with the delivery row locked, then the
// snapshot cache is refreshed and a status event is published.
type Service struct {
	repo             deliveryRepository
	cache            snapshotCache
	publisher        statusPublisher
	names            nameResolver
	transitions      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newTrackingCode  func() string
}

// NewService creates a delivery Service. Publisher, resolver, cache and
// the transitions counter may be nil; the matching side effects are then
// skipped.
func NewService(
	repo deliveryRepository,
	cache snapshotCache,
	publisher statusPublisher,
	names nameResolver,
	transitions *prometheus.CounterVec,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		cache:            cache,
		publisher:        publisher,
		names:            names,
		transitions:      transitions,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newTrackingCode:  func() string { return uuid.NewString() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get returns the full delivery projection, serving the snapshot cache
// when possible and enriching history entries with actor display names.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, ok := s.cache.Get(ctx, id)
	if !ok {
		var err error
		d, err = s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, apperr.ErrNotFound
		}
		s.cache.Put(ctx, d)
	}

	s.resolveActorNames(ctx, d)
	return d, nil
}

// resolveActorNames fills in ActorName on history entries. A failed
// lookup leaves the name empty; the read itself never fails on it.
func (s *Service) resolveActorNames(ctx context.Context, d *domain.Delivery) {
	if s.names == nil {
		return
	}
	resolved := make(map[string]string, len(d.Histories))
	for i := range d.Histories {
		h := &d.Histories[i]
		if h.ActorID == "" {
			continue
		}
		key := h.ActorType + ":" + h.ActorID
		name, ok := resolved[key]
		if !ok {
			var err error
			name, err = s.names.ResolveName(ctx, h.ActorType, h.ActorID)
			if err != nil {
				s.logger.Debug("actor name lookup failed",
					logx.String("actor", key), logx.Any("err", err))
				name = ""
			}
			resolved[key] = name
		}
		h.ActorName = name
	}
}

// AdvanceStatus moves the delivery to the next status of its sequence.
// A terminal or unknown current status has no next step and is reported
// as a conflict: the server owns the transition table, so a no-op advance
// means the caller acted on stale state.
func (s *Service) AdvanceStatus(ctx context.Context, id int64, actor domain.Actor) (*domain.Delivery, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		next domain.Step
		dom  domain.OrderDomain
	)
	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}

		step, ok := d.NextStatus()
		if !ok {
			return apperr.ErrConflict
		}
		next, dom = step, d.Domain

		updated, err := tx.UpdateStatus(ctx, id, d.Status, step.Status)
		if err != nil {
			return err
		}
		if !updated {
			return apperr.ErrConflict
		}

		if err := tx.AppendHistory(ctx, id, domain.StatusHistory{
			Status:    step.Status,
			ActorType: actor.Type,
			ActorID:   actor.ID,
			At:        s.now(),
		}); err != nil {
			return err
		}

		return s.advanceProgress(ctx, tx, d, step.Status)
	})
	if err != nil {
		return nil, err
	}

	if s.transitions != nil {
		s.transitions.WithLabelValues(string(dom), string(next.Status)).Inc()
	}
	s.logger.Info("delivery status advanced",
		logx.String("event", "status_advanced"),
		logx.Int64("delivery_id", id),
		logx.String("status", string(next.Status)),
		logx.Int("step", next.Index),
	)

	return s.refresh(ctx, id)
}

// advanceProgress keeps the stop pointer in step with the status: the
// first transit status opens stop 1, a terminal status moves the pointer
// past the last stop and releases the driver.
func (s *Service) advanceProgress(ctx context.Context, tx deliverytx.Repository, d *domain.Delivery, next domain.DeliveryStatus) error {
	seq := d.Sequence()
	switch {
	case next == domain.StatusOnGoing && d.Progress.SequenceNo == 0:
		return tx.SetProgress(ctx, d.ID, domain.Progress{
			Type:       "stop",
			Action:     "deliver",
			SequenceNo: 1,
		})
	case seq.Terminal(next):
		max, err := tx.MaxStopSequence(ctx, d.ID)
		if err != nil {
			return err
		}
		if err := tx.SetProgress(ctx, d.ID, domain.Progress{
			Type:       "stop",
			Action:     "done",
			SequenceNo: max + 1,
		}); err != nil {
			return err
		}
		if d.DriverID != nil {
			return tx.SetDriverBusy(ctx, *d.DriverID, false)
		}
	}
	return nil
}

// AssignCommand carries an assignment request. Exactly one of DriverID
// and ThirdParty must be set.
type AssignCommand struct {
	DeliveryID int64
	DriverID   *int64
	ThirdParty *domain.ThirdPartyCourier
	Reason     string
	Actor      domain.Actor
}

func (c AssignCommand) validate() error {
	if c.DeliveryID <= 0 {
		return apperr.ErrInvalid
	}
	hasDriver := c.DriverID != nil
	hasTP := c.ThirdParty != nil
	if hasDriver == hasTP {
		return apperr.ErrInvalid
	}
	if hasDriver && *c.DriverID <= 0 {
		return apperr.ErrInvalid
	}
	if hasTP {
		if strings.TrimSpace(c.ThirdParty.ContactName) == "" {
			return apperr.ErrInvalid
		}
		if !domain.ValidatePhone(c.ThirdParty.ContactNumber) {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// Assign attaches a driver or a third-party courier to a pending
// delivery. The record keeps its identity.
func (s *Service) Assign(ctx context.Context, cmd AssignCommand) (domain.AssignResult, error) {
	if err := cmd.validate(); err != nil {
		return domain.AssignResult{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.AssignResult
	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetForUpdate(ctx, cmd.DeliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}
		if d.Status != domain.StatusPending {
			return apperr.ErrConflict
		}

		if cmd.DriverID != nil {
			if err := claimDriver(ctx, tx, *cmd.DriverID); err != nil {
				return err
			}
		}

		if err := tx.SetDriver(ctx, d.ID, cmd.DriverID, cmd.ThirdParty, domain.StatusAssigned); err != nil {
			return err
		}
		now := s.now()
		if err := tx.AppendHistory(ctx, d.ID, domain.StatusHistory{
			Status:    domain.StatusAssigned,
			ActorType: cmd.Actor.Type,
			ActorID:   cmd.Actor.ID,
			Note:      cmd.Reason,
			At:        now,
		}); err != nil {
			return err
		}

		result = domain.AssignResult{
			DeliveryID:   d.ID,
			DriverID:     cmd.DriverID,
			ThirdParty:   cmd.ThirdParty,
			Status:       domain.StatusAssigned,
			AssignedAt:   now,
			TrackingCode: d.TrackingCode,
		}
		return nil
	})
	if err != nil {
		return domain.AssignResult{}, err
	}

	s.logger.Info("delivery assigned",
		logx.String("event", "delivery_assigned"),
		logx.Int64("delivery_id", result.DeliveryID),
		logx.Bool("third_party", result.ThirdParty != nil),
	)
	if _, err := s.refresh(ctx, result.DeliveryID); err != nil {
		s.logger.Warn("snapshot refresh failed after assign",
			logx.Int64("delivery_id", result.DeliveryID), logx.Any("err", err))
	}
	return result, nil
}

// Reassign cancels the current delivery record and clones it under a new
// identity for the new driver or courier. Callers must follow the
// returned NewDeliveryID.
func (s *Service) Reassign(ctx context.Context, cmd AssignCommand) (domain.ReassignResult, error) {
	if err := cmd.validate(); err != nil {
		return domain.ReassignResult{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.ReassignResult
	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetForUpdate(ctx, cmd.DeliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}
		if d.Sequence().Terminal(d.Status) || d.Status == domain.StatusCanceled {
			return apperr.ErrConflict
		}

		if d.DriverID != nil {
			if err := tx.SetDriverBusy(ctx, *d.DriverID, false); err != nil {
				return err
			}
		}
		if cmd.DriverID != nil {
			if err := claimDriver(ctx, tx, *cmd.DriverID); err != nil {
				return err
			}
		}

		now := s.now()
		canceled, err := tx.UpdateStatus(ctx, d.ID, d.Status, domain.StatusCanceled)
		if err != nil {
			return err
		}
		if !canceled {
			return apperr.ErrConflict
		}
		if err := tx.AppendHistory(ctx, d.ID, domain.StatusHistory{
			Status:    domain.StatusCanceled,
			ActorType: cmd.Actor.Type,
			ActorID:   cmd.Actor.ID,
			Note:      cmd.Reason,
			At:        now,
		}); err != nil {
			return err
		}

		// the locked read covers the core row only; the clone needs the
		// stops and fee detail too
		if d.Stops, err = tx.ListStops(ctx, d.ID); err != nil {
			return err
		}
		if d.Fee.Detail, err = tx.ListFeeLines(ctx, d.ID); err != nil {
			return err
		}

		clone := cloneForReassign(d, cmd, s.newTrackingCode())
		if err := tx.InsertDelivery(ctx, clone); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, clone.ID, domain.StatusHistory{
			Status:    domain.StatusAssigned,
			ActorType: cmd.Actor.Type,
			ActorID:   cmd.Actor.ID,
			Note:      cmd.Reason,
			At:        now,
		}); err != nil {
			return err
		}

		result = domain.ReassignResult{
			NewDeliveryID: clone.ID,
			TrackingCode:  clone.TrackingCode,
			DriverID:      cmd.DriverID,
			ThirdParty:    cmd.ThirdParty,
			Status:        clone.Status,
		}
		return nil
	})
	if err != nil {
		return domain.ReassignResult{}, err
	}

	s.logger.Info("delivery reassigned",
		logx.String("event", "delivery_reassigned"),
		logx.Int64("old_delivery_id", cmd.DeliveryID),
		logx.Int64("new_delivery_id", result.NewDeliveryID),
	)
	s.cache.Invalidate(ctx, cmd.DeliveryID)
	if _, err := s.refresh(ctx, result.NewDeliveryID); err != nil {
		s.logger.Warn("snapshot refresh failed after reassign",
			logx.Int64("delivery_id", result.NewDeliveryID), logx.Any("err", err))
	}
	return result, nil
}

// claimDriver verifies eligibility under lock and flips the busy flag.
func claimDriver(ctx context.Context, tx deliverytx.Repository, driverID int64) error {
	drv, err := tx.GetDriverForUpdate(ctx, driverID)
	if err != nil {
		return err
	}
	if drv == nil {
		return apperr.ErrNotFound
	}
	if !drv.Eligible() || drv.Busy {
		return apperr.ErrConflict
	}
	return tx.SetDriverBusy(ctx, driverID, true)
}

func cloneForReassign(d *domain.Delivery, cmd AssignCommand, trackingCode string) *domain.Delivery {
	clone := &domain.Delivery{
		OrderID:      d.OrderID,
		TrackingCode: trackingCode,
		Domain:       d.Domain,
		PickupOnly:   d.PickupOnly,
		Status:       domain.StatusAssigned,
		DriverID:     cmd.DriverID,
		ThirdParty:   cmd.ThirdParty,
		Fee:          d.Fee,
	}
	clone.Stops = make([]domain.Stop, len(d.Stops))
	for i, s := range d.Stops {
		s.ID, s.DeliveryID = 0, 0
		clone.Stops[i] = s
	}
	return clone
}

// refresh re-reads the authoritative record, replaces the snapshot and
// publishes the status event for the new state.
func (s *Service) refresh(ctx context.Context, id int64) (*domain.Delivery, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	s.cache.Put(ctx, d)

	if s.publisher != nil {
		ev := StatusEvent{
			DeliveryID:   d.ID,
			TrackingCode: d.TrackingCode,
			Domain:       d.Domain,
			Status:       d.Status,
			At:           s.now(),
		}
		if err := s.publisher.PublishStatusChanged(ctx, ev); err != nil {
			// the transition is already committed; a lost event is
			// recoverable from the history table
			s.logger.Warn("status event publish failed",
				logx.Int64("delivery_id", d.ID), logx.Any("err", err))
		}
	}

	s.resolveActorNames(ctx, d)
	return d, nil
}
