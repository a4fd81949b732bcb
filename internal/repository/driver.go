package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Get - returns driver by its ID.
func (r *DriverRepo) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	var d domain.Driver
	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, vehicle_type, approval_status, active, busy
         FROM drivers WHERE id=$1`, id,
	).Scan(&d.ID, &d.Name, &d.Phone, &d.VehicleType, &d.ApprovalStatus, &d.Active, &d.Busy)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return &d, nil
}

// Search returns one page of eligible drivers ordered by name. Only
// approved and active drivers are returned; the optional text search
// matches the name case-insensitively and the vehicle filter narrows to
// one type. The caller asks for pageSize+0 rows; has-more is derived by
// the service from the page length.
func (r *DriverRepo) Search(ctx context.Context, q domain.DriverQuery) ([]domain.Driver, error) {
	query := `
        SELECT id, name, phone, vehicle_type, approval_status, active, busy
        FROM drivers
        WHERE approval_status = 'approved' AND active`
	args := make([]any, 0, 4)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if q.VehicleType != nil {
		args = append(args, string(*q.VehicleType))
		query += fmt.Sprintf(" AND vehicle_type = $%d", len(args))
	}

	args = append(args, q.PageSize)
	query += fmt.Sprintf(" ORDER BY name, id LIMIT $%d", len(args))
	args = append(args, q.PageIndex*q.PageSize)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search drivers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0, q.PageSize)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.VehicleType,
			&d.ApprovalStatus, &d.Active, &d.Busy); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create - creates a new driver.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO drivers(name, phone, vehicle_type, approval_status, active)
         VALUES($1,$2,$3,$4,$5) RETURNING id`,
		d.Name, d.Phone, string(d.VehicleType), string(d.ApprovalStatus), d.Active).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a driver and returns true if a row was affected.
func (r *DriverRepo) UpdatePartial(ctx context.Context, u domain.PartialDriverUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET
            name            = COALESCE($2, name),
            phone           = COALESCE($3, phone),
            vehicle_type    = COALESCE($4, vehicle_type),
            approval_status = COALESCE($5, approval_status),
            active          = COALESCE($6, active),
            updated_at      = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.VehicleType, u.ApprovalStatus, u.Active)

	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update driver %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
