package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/ports/deliverytx"
	"github.com/lamkn06/delivery-ops/internal/service/orders"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
)

type stubTx struct {
	byOrder    map[string]*domain.Delivery
	drivers    map[int64]*domain.Driver
	histories  map[int64][]domain.StatusHistory
	inserted   []*domain.Delivery
	nextID     int64
	statusSets []domain.DeliveryStatus
}

func newStubTx() *stubTx {
	return &stubTx{
		byOrder:   map[string]*domain.Delivery{},
		drivers:   map[int64]*domain.Driver{},
		histories: map[int64][]domain.StatusHistory{},
		nextID:    200,
	}
}

func (s *stubTx) GetForUpdate(context.Context, int64) (*domain.Delivery, error) {
	panic("not used in orders processor tests")
}

func (s *stubTx) GetByOrderID(_ context.Context, orderID string) (*domain.Delivery, error) {
	return s.byOrder[orderID], nil
}

func (s *stubTx) ListStops(context.Context, int64) ([]domain.Stop, error) {
	panic("not used in orders processor tests")
}

func (s *stubTx) ListFeeLines(context.Context, int64) ([]domain.FeeLine, error) {
	panic("not used in orders processor tests")
}

func (s *stubTx) UpdateStatus(_ context.Context, id int64, from, to domain.DeliveryStatus) (bool, error) {
	for _, d := range s.byOrder {
		if d.ID == id && d.Status == from {
			d.Status = to
			s.statusSets = append(s.statusSets, to)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubTx) AppendHistory(_ context.Context, id int64, h domain.StatusHistory) error {
	s.histories[id] = append(s.histories[id], h)
	return nil
}

func (s *stubTx) SetProgress(context.Context, int64, domain.Progress) error {
	panic("not used in orders processor tests")
}

func (s *stubTx) SetDriver(_ context.Context, id int64, driverID *int64, tp *domain.ThirdPartyCourier, status domain.DeliveryStatus) error {
	for _, d := range s.byOrder {
		if d.ID == id {
			d.DriverID, d.ThirdParty, d.Status = driverID, tp, status
			return nil
		}
	}
	return nil
}

func (s *stubTx) InsertDelivery(_ context.Context, d *domain.Delivery) error {
	s.nextID++
	d.ID = s.nextID
	s.byOrder[d.OrderID] = d
	s.inserted = append(s.inserted, d)
	return nil
}

func (s *stubTx) GetDriverForUpdate(context.Context, int64) (*domain.Driver, error) {
	panic("not used in orders processor tests")
}

func (s *stubTx) FindAvailableDriver(_ context.Context, vehicle domain.VehicleType) (*domain.Driver, error) {
	var best *domain.Driver
	for _, d := range s.drivers {
		if d.Eligible() && !d.Busy && d.VehicleType == vehicle {
			if best == nil || d.ID < best.ID {
				best = d
			}
		}
	}
	return best, nil
}

func (s *stubTx) SetDriverBusy(_ context.Context, driverID int64, busy bool) error {
	if d, ok := s.drivers[driverID]; ok {
		d.Busy = busy
	}
	return nil
}

func (s *stubTx) MaxStopSequence(context.Context, int64) (int, error) {
	panic("not used in orders processor tests")
}

type stubRunner struct {
	tx *stubTx
}

func (s stubRunner) WithTx(_ context.Context, fn func(tx deliverytx.Repository) error) error {
	return fn(s.tx)
}

type stubFees struct {
	fee   domain.Fee
	err   error
	calls int
}

func (s *stubFees) Quote(context.Context, pricing.QuoteRequest) (domain.Fee, error) {
	s.calls++
	return s.fee, s.err
}

type stubInvalidator struct {
	ids []int64
}

func (s *stubInvalidator) Invalidate(_ context.Context, id int64) {
	s.ids = append(s.ids, id)
}

func createdEvent() orders.Event {
	return orders.Event{
		OrderID:        "order-1",
		Status:         "created",
		Domain:         "parcel",
		VehicleType:    "motorcycle",
		DistanceMeters: 4200,
		Stops: []orders.EventStop{
			{ContactName: "Ana", Address: "12 Pine St"},
			{ContactName: "Ben", Address: "9 Oak Ave"},
		},
	}
}

func TestHandle_Created_NoFreeDriverLeavesPending(t *testing.T) {
	t.Parallel()

	tx := newStubTx()
	fees := &stubFees{fee: domain.Fee{Total: 14000, DeliveryFee: 14000}}
	p := orders.NewProcessor(stubRunner{tx: tx}, fees, nil, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), createdEvent()))

	require.Len(t, tx.inserted, 1)
	d := tx.inserted[0]
	assert.Equal(t, "order-1", d.OrderID)
	assert.Equal(t, domain.StatusPending, d.Status)
	assert.Nil(t, d.DriverID)
	assert.Equal(t, domain.DomainParcel, d.Domain)
	assert.NotEmpty(t, d.TrackingCode)
	assert.Equal(t, int64(14000), d.Fee.Total)
	require.Len(t, d.Stops, 2)
	assert.Equal(t, 1, d.Stops[0].SequenceNo)
	assert.Equal(t, 2, d.Stops[1].SequenceNo)

	require.Len(t, tx.histories[d.ID], 1)
	assert.Equal(t, domain.StatusPending, tx.histories[d.ID][0].Status)
	assert.Equal(t, "system", tx.histories[d.ID][0].ActorType)
}

func TestHandle_Created_AssignsFreeDriver(t *testing.T) {
	t.Parallel()

	tx := newStubTx()
	tx.drivers[4] = &domain.Driver{
		ID: 4, VehicleType: domain.VehicleMotorcycle,
		ApprovalStatus: domain.ApprovalApproved, Active: true, Busy: true,
	}
	tx.drivers[9] = &domain.Driver{
		ID: 9, VehicleType: domain.VehicleMotorcycle,
		ApprovalStatus: domain.ApprovalApproved, Active: true,
	}
	tx.drivers[12] = &domain.Driver{
		ID: 12, VehicleType: domain.VehicleTruck,
		ApprovalStatus: domain.ApprovalApproved, Active: true,
	}
	fees := &stubFees{fee: domain.Fee{Total: 14000, DeliveryFee: 14000}}
	p := orders.NewProcessor(stubRunner{tx: tx}, fees, nil, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), createdEvent()))

	require.Len(t, tx.inserted, 1)
	d := tx.inserted[0]
	assert.Equal(t, domain.StatusAssigned, d.Status)
	require.NotNil(t, d.DriverID)
	assert.Equal(t, int64(9), *d.DriverID, "only the idle motorcycle driver qualifies")
	assert.True(t, tx.drivers[9].Busy)

	require.Len(t, tx.histories[d.ID], 2)
	assert.Equal(t, domain.StatusPending, tx.histories[d.ID][0].Status)
	assert.Equal(t, domain.StatusAssigned, tx.histories[d.ID][1].Status)
	assert.Equal(t, "auto-assigned on order intake", tx.histories[d.ID][1].Note)
}

func TestHandle_Created_Idempotent(t *testing.T) {
	t.Parallel()

	tx := newStubTx()
	tx.byOrder["order-1"] = &domain.Delivery{ID: 7, OrderID: "order-1", Status: domain.StatusAssigned}
	fees := &stubFees{}
	p := orders.NewProcessor(stubRunner{tx: tx}, fees, nil, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), createdEvent()))
	assert.Empty(t, tx.inserted)
}

func TestHandle_Created_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*orders.Event)
	}{
		{"no order id", func(e *orders.Event) { e.OrderID = " " }},
		{"unknown domain", func(e *orders.Event) { e.Domain = "groceries" }},
		{"unknown vehicle", func(e *orders.Event) { e.VehicleType = "skateboard" }},
		{"no stops", func(e *orders.Event) { e.Stops = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := newStubTx()
			p := orders.NewProcessor(stubRunner{tx: tx}, &stubFees{}, nil, nil, logx.Nop())

			e := createdEvent()
			tt.mutate(&e)
			assert.ErrorIs(t, p.Handle(context.Background(), e), apperr.ErrInvalid)
			assert.Empty(t, tx.inserted)
		})
	}
}

func TestHandle_Canceled_CancelsActiveRecord(t *testing.T) {
	t.Parallel()

	driverID := int64(9)
	tx := newStubTx()
	tx.byOrder["order-1"] = &domain.Delivery{
		ID: 7, OrderID: "order-1", Status: domain.StatusForPickup, DriverID: &driverID,
	}
	tx.drivers[9] = &domain.Driver{ID: 9, Busy: true}
	inv := &stubInvalidator{}
	p := orders.NewProcessor(stubRunner{tx: tx}, &stubFees{}, inv, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), orders.Event{OrderID: "order-1", Status: "canceled"}))

	assert.Equal(t, domain.StatusCanceled, tx.byOrder["order-1"].Status)
	assert.False(t, tx.drivers[9].Busy)
	require.Len(t, tx.histories[7], 1)
	assert.Equal(t, "order canceled upstream", tx.histories[7][0].Note)
	assert.Equal(t, []int64{7}, inv.ids)
}

func TestHandle_Canceled_NoRecordIsNoop(t *testing.T) {
	t.Parallel()

	p := orders.NewProcessor(stubRunner{tx: newStubTx()}, &stubFees{}, nil, nil, logx.Nop())
	require.NoError(t, p.Handle(context.Background(), orders.Event{OrderID: "order-1", Status: "deleted"}))
}

func TestHandle_Canceled_TerminalIsNoop(t *testing.T) {
	t.Parallel()

	tx := newStubTx()
	tx.byOrder["order-1"] = &domain.Delivery{ID: 7, OrderID: "order-1", Status: domain.StatusDelivered}
	p := orders.NewProcessor(stubRunner{tx: tx}, &stubFees{}, nil, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), orders.Event{OrderID: "order-1", Status: "canceled"}))
	assert.Equal(t, domain.StatusDelivered, tx.byOrder["order-1"].Status)
	assert.Empty(t, tx.statusSets)
}

func TestHandle_Completed_ReleasesDriver(t *testing.T) {
	t.Parallel()

	driverID := int64(9)
	tx := newStubTx()
	tx.byOrder["order-1"] = &domain.Delivery{
		ID: 7, OrderID: "order-1", Status: domain.StatusDelivered, DriverID: &driverID,
	}
	tx.drivers[9] = &domain.Driver{ID: 9, Busy: true}
	p := orders.NewProcessor(stubRunner{tx: tx}, &stubFees{}, nil, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), orders.Event{OrderID: "order-1", Status: "completed"}))
	assert.False(t, tx.drivers[9].Busy)
}

func TestHandle_UnknownStatusSkipped(t *testing.T) {
	t.Parallel()

	fees := &stubFees{}
	p := orders.NewProcessor(stubRunner{tx: newStubTx()}, fees, nil, nil, logx.Nop())

	require.NoError(t, p.Handle(context.Background(), orders.Event{OrderID: "order-1", Status: "cooking"}))
	assert.Zero(t, fees.calls)
}
