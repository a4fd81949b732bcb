package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/ports/deliverytx"
)

const deliveryColumns = `id, order_id, tracking_code, order_domain, pickup_only, status,
       driver_id, third_party_name, third_party_number,
       progress_type, progress_action, progress_sequence_no,
       fee_total, fee_delivery, fee_other, fee_collected, fee_remitted,
       created_at, updated_at`

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// querier is the query surface shared by the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanDelivery(row rowScanner) (*domain.Delivery, error) {
	var (
		d        domain.Delivery
		tpName   *string
		tpNumber *string
	)
	err := row.Scan(
		&d.ID, &d.OrderID, &d.TrackingCode, &d.Domain, &d.PickupOnly, &d.Status,
		&d.DriverID, &tpName, &tpNumber,
		&d.Progress.Type, &d.Progress.Action, &d.Progress.SequenceNo,
		&d.Fee.Total, &d.Fee.DeliveryFee, &d.Fee.OtherFee,
		&d.Fee.AmountToBeCollected, &d.Fee.AmountToBeRemitted,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tpName != nil {
		d.ThirdParty = &domain.ThirdPartyCourier{ContactName: *tpName}
		if tpNumber != nil {
			d.ThirdParty.ContactNumber = *tpNumber
		}
	}
	return &d, nil
}

// Get loads a full delivery projection: core row, ordered stops, fee
// detail lines and the status history.
func (r *DeliveryRepo) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id=$1`, id)

	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d: %w", id, err)
	}

	if d.Stops, err = listStops(ctx, r.db, id); err != nil {
		return nil, err
	}
	if d.Fee.Detail, err = listFeeLines(ctx, r.db, id); err != nil {
		return nil, err
	}
	if d.Histories, err = r.histories(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

func listStops(ctx context.Context, q querier, deliveryID int64) ([]domain.Stop, error) {
	rows, err := q.Query(ctx, `
        SELECT id, delivery_id, sequence_no, contact_name, contact_number,
               address, proof_photo_url, proof_signed_by
        FROM stops
        WHERE delivery_id = $1
        ORDER BY sequence_no
    `, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list stops for delivery %d: %w", deliveryID, err)
	}
	defer rows.Close()

	var out []domain.Stop
	for rows.Next() {
		var s domain.Stop
		if err := rows.Scan(&s.ID, &s.DeliveryID, &s.SequenceNo, &s.ContactName,
			&s.ContactNumber, &s.Address, &s.ProofPhotoURL, &s.ProofSignedBy); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func listFeeLines(ctx context.Context, q querier, deliveryID int64) ([]domain.FeeLine, error) {
	rows, err := q.Query(ctx, `
        SELECT particular, amount, line_type
        FROM fee_lines
        WHERE delivery_id = $1
        ORDER BY id
    `, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list fee lines for delivery %d: %w", deliveryID, err)
	}
	defer rows.Close()

	var out []domain.FeeLine
	for rows.Next() {
		var l domain.FeeLine
		if err := rows.Scan(&l.Particular, &l.Amount, &l.Type); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *DeliveryRepo) histories(ctx context.Context, deliveryID int64) ([]domain.StatusHistory, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, status, actor_type, actor_id, note, created_at
        FROM status_histories
        WHERE delivery_id = $1
        ORDER BY id
    `, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list histories for delivery %d: %w", deliveryID, err)
	}
	defer rows.Close()

	var out []domain.StatusHistory
	for rows.Next() {
		var h domain.StatusHistory
		if err := rows.Scan(&h.ID, &h.Status, &h.ActorType, &h.ActorID, &h.Note, &h.At); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetForUpdate locks and returns the delivery core row.
func (r *TxRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Delivery, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id=$1 FOR UPDATE`, id)

	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d for update: %w", id, err)
	}
	return d, nil
}

// ListStops returns the delivery's stops in sequence order.
func (r *TxRepo) ListStops(ctx context.Context, deliveryID int64) ([]domain.Stop, error) {
	return listStops(ctx, r.tx, deliveryID)
}

// ListFeeLines returns the delivery's fee detail lines.
func (r *TxRepo) ListFeeLines(ctx context.Context, deliveryID int64) ([]domain.FeeLine, error) {
	return listFeeLines(ctx, r.tx, deliveryID)
}

// UpdateStatus advances the delivery status guarded by the expected
// current value. Returns false when the guard did not match.
func (r *TxRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.DeliveryStatus) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $3, updated_at = now()
        WHERE id = $1 AND status = $2
    `, id, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("update delivery %d status: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// AppendHistory - append a status history entry.
func (r *TxRepo) AppendHistory(ctx context.Context, id int64, h domain.StatusHistory) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO status_histories (delivery_id, status, actor_type, actor_id, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, id, string(h.Status), h.ActorType, h.ActorID, h.Note, h.At)
	if err != nil {
		return fmt.Errorf("append history for delivery %d: %w", id, err)
	}
	return nil
}

// SetProgress - update the delivery progress pointer.
func (r *TxRepo) SetProgress(ctx context.Context, id int64, p domain.Progress) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET progress_type = $2, progress_action = $3, progress_sequence_no = $4,
            updated_at = now()
        WHERE id = $1
    `, id, p.Type, p.Action, p.SequenceNo)
	if err != nil {
		return fmt.Errorf("set progress for delivery %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delivery %d not found", id)
	}
	return nil
}

// SetDriver - point the delivery at a driver or a third-party courier and
// move it to the given status.
func (r *TxRepo) SetDriver(ctx context.Context, id int64, driverID *int64, tp *domain.ThirdPartyCourier, status domain.DeliveryStatus) error {
	var tpName, tpNumber *string
	if tp != nil {
		tpName, tpNumber = &tp.ContactName, &tp.ContactNumber
	}
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET driver_id = $2, third_party_name = $3, third_party_number = $4,
            status = $5, updated_at = now()
        WHERE id = $1
    `, id, driverID, tpName, tpNumber, string(status))
	if err != nil {
		return fmt.Errorf("set driver for delivery %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delivery %d not found", id)
	}
	return nil
}

// InsertDelivery - insert a new delivery with its stops and fee lines.
// Used when a reassignment clones the record.
func (r *TxRepo) InsertDelivery(ctx context.Context, d *domain.Delivery) error {
	var tpName, tpNumber *string
	if d.ThirdParty != nil {
		tpName, tpNumber = &d.ThirdParty.ContactName, &d.ThirdParty.ContactNumber
	}
	err := r.tx.QueryRow(ctx, `
        INSERT INTO deliveries (order_id, tracking_code, order_domain, pickup_only, status,
                                driver_id, third_party_name, third_party_number,
                                progress_type, progress_action, progress_sequence_no,
                                fee_total, fee_delivery, fee_other, fee_collected, fee_remitted)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at
    `, d.OrderID, d.TrackingCode, string(d.Domain), d.PickupOnly, string(d.Status),
		d.DriverID, tpName, tpNumber,
		d.Progress.Type, d.Progress.Action, d.Progress.SequenceNo,
		d.Fee.Total, d.Fee.DeliveryFee, d.Fee.OtherFee,
		d.Fee.AmountToBeCollected, d.Fee.AmountToBeRemitted,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert delivery: %w", err)
	}

	for i := range d.Stops {
		s := &d.Stops[i]
		s.DeliveryID = d.ID
		err := r.tx.QueryRow(ctx, `
            INSERT INTO stops (delivery_id, sequence_no, contact_name, contact_number,
                               address, proof_photo_url, proof_signed_by)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            RETURNING id
        `, d.ID, s.SequenceNo, s.ContactName, s.ContactNumber,
			s.Address, s.ProofPhotoURL, s.ProofSignedBy).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("insert stop %d for delivery %d: %w", s.SequenceNo, d.ID, err)
		}
	}

	for _, l := range d.Fee.Detail {
		_, err := r.tx.Exec(ctx, `
            INSERT INTO fee_lines (delivery_id, particular, amount, line_type)
            VALUES ($1,$2,$3,$4)
        `, d.ID, l.Particular, l.Amount, string(l.Type))
		if err != nil {
			return fmt.Errorf("insert fee line for delivery %d: %w", d.ID, err)
		}
	}

	return nil
}

// GetByOrderID locks and returns the latest delivery record of an order.
// Reassignment clones records, so one order can own several; callers see
// only the newest one.
func (r *TxRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries
         WHERE order_id = $1 ORDER BY id DESC LIMIT 1 FOR UPDATE`, orderID)

	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery for order %s: %w", orderID, err)
	}
	return d, nil
}

// GetDriverForUpdate locks and returns a driver row.
func (r *TxRepo) GetDriverForUpdate(ctx context.Context, driverID int64) (*domain.Driver, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT id, name, phone, vehicle_type, approval_status, active, busy
        FROM drivers
        WHERE id = $1
        FOR UPDATE
    `, driverID)

	var d domain.Driver
	if err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.VehicleType,
		&d.ApprovalStatus, &d.Active, &d.Busy); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d for update: %w", driverID, err)
	}
	return &d, nil
}

// FindAvailableDriver locks and returns one idle approved driver for the
// vehicle type, or nil when none is free. SKIP LOCKED keeps concurrent
// assignments from queueing on the same row.
func (r *TxRepo) FindAvailableDriver(ctx context.Context, vehicle domain.VehicleType) (*domain.Driver, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT id, name, phone, vehicle_type, approval_status, active, busy
        FROM drivers
        WHERE approval_status = 'approved' AND active AND NOT busy AND vehicle_type = $1
        ORDER BY id
        LIMIT 1
        FOR UPDATE SKIP LOCKED
    `, string(vehicle))

	var d domain.Driver
	if err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.VehicleType,
		&d.ApprovalStatus, &d.Active, &d.Busy); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find available %s driver: %w", vehicle, err)
	}
	return &d, nil
}

// SetDriverBusy - flip the driver busy flag.
func (r *TxRepo) SetDriverBusy(ctx context.Context, driverID int64, busy bool) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE drivers
        SET busy = $2, updated_at = now()
        WHERE id = $1
    `, driverID, busy)
	if err != nil {
		return fmt.Errorf("set driver %d busy=%t: %w", driverID, busy, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %d not found", driverID)
	}
	return nil
}

// MaxStopSequence returns the highest stop sequence number of a delivery,
// or zero when it has no stops.
func (r *TxRepo) MaxStopSequence(ctx context.Context, id int64) (int, error) {
	var max int
	err := r.tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(sequence_no), 0) FROM stops WHERE delivery_id = $1`, id,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max stop sequence for delivery %d: %w", id, err)
	}
	return max, nil
}
