package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lamkn06/delivery-ops/internal/domain"
)

func TestDriverEligible(t *testing.T) {
	t.Parallel()

	d := domain.Driver{ApprovalStatus: domain.ApprovalApproved, Active: true}
	assert.True(t, d.Eligible())

	d.Active = false
	assert.False(t, d.Eligible())

	d = domain.Driver{ApprovalStatus: domain.ApprovalPending, Active: true}
	assert.False(t, d.Eligible())
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.ValidatePhone("+79991234567"))
	assert.True(t, domain.ValidatePhone("+6391712345"))
	assert.True(t, domain.ValidatePhone("+6391712345678"), "13 digits is a valid length")
	assert.False(t, domain.ValidatePhone("+63917123456789"), "14 digits is too long")
	assert.False(t, domain.ValidatePhone("79991234567"))
	assert.False(t, domain.ValidatePhone("+7999"))
	assert.False(t, domain.ValidatePhone(""))
}

func TestEnumsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.VehicleCar.Valid())
	assert.False(t, domain.VehicleType("bicycle").Valid())
	assert.True(t, domain.ApprovalApproved.Valid())
	assert.False(t, domain.DriverApprovalStatus("maybe").Valid())
	assert.True(t, domain.DomainFood.Valid())
	assert.False(t, domain.OrderDomain("grocery").Valid())
}

func TestVoucherUsable(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	v := domain.Voucher{Active: true, Discount: 50, MinAmount: 100, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, v.Usable(150, now))
	assert.False(t, v.Usable(99, now))
	assert.False(t, v.Usable(150, now.Add(2*time.Hour)))

	v.Active = false
	assert.False(t, v.Usable(150, now))
}
