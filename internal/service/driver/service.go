package driver

import (
	"context"
	"strings"
	"time"

	"github.com/lamkn06/delivery-ops/internal/apperr"
	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Service owns the driver roster: registration, profile updates and the
// paged search the assignment screens run against.
type Service struct {
	repo             driverRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a driver Service.
func NewService(repo driverRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: repo, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get returns one driver by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// Register creates a new driver. New drivers start unapproved and
// inactive until onboarding flips them.
func (s *Service) Register(ctx context.Context, d domain.Driver) (int64, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" || !domain.ValidatePhone(d.Phone) || !d.VehicleType.Valid() {
		return 0, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d.ApprovalStatus = domain.ApprovalPending
	d.Active = false
	id, err := s.repo.Create(ctx, &d)
	if err != nil {
		return 0, err
	}

	s.logger.Info("driver registered",
		logx.String("event", "driver_registered"),
		logx.Int64("driver_id", id),
		logx.String("vehicle_type", string(d.VehicleType)),
	)
	return id, nil
}

// Update applies a partial update. Nil fields keep their current value.
func (s *Service) Update(ctx context.Context, u domain.PartialDriverUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.VehicleType != nil && !u.VehicleType.Valid() {
		return apperr.ErrInvalid
	}
	if u.ApprovalStatus != nil && !u.ApprovalStatus.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updated, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.ErrNotFound
	}
	return nil
}

// Search returns one page of eligible drivers. HasMore is set only when
// the page came back full; a short page is always the last one.
func (s *Service) Search(ctx context.Context, q domain.DriverQuery) (domain.DriverPage, error) {
	if q.PageIndex < 0 {
		return domain.DriverPage{}, apperr.ErrInvalid
	}
	if q.VehicleType != nil && !q.VehicleType.Valid() {
		return domain.DriverPage{}, apperr.ErrInvalid
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	q.Search = strings.TrimSpace(q.Search)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	drivers, err := s.repo.Search(ctx, q)
	if err != nil {
		return domain.DriverPage{}, err
	}
	return domain.DriverPage{
		Drivers: drivers,
		HasMore: len(drivers) == q.PageSize,
	}, nil
}
