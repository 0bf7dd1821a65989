package entity

import (
	"testing"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	clock := fixedClock()

	t.Run("normalizes email and starts pending", func(t *testing.T) {
		u, err := NewUser("Alice", "  Alice@Example.COM ", "hashed", RoleFarmer, clock)
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, StatusPendingVerification, u.Status)
		assert.True(t, u.WalletBalance.IsZero())
		assert.True(t, u.HasLocalPassword())
	})

	t.Run("rejects the admin role", func(t *testing.T) {
		_, err := NewUser("Mallory", "mallory@example.com", "hashed", RoleAdmin, clock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects malformed email and empty hash", func(t *testing.T) {
		_, err := NewUser("Alice", "not-an-email", "hashed", RoleFarmer, clock)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewUser("Alice", "alice@example.com", "", RoleFarmer, clock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewGoogleUser(t *testing.T) {
	clock := fixedClock()

	u, err := NewGoogleUser("Bob", "bob@example.com", "google-sub-1", RoleCompany, clock)
	require.NoError(t, err)

	assert.False(t, u.HasLocalPassword())
	assert.Equal(t, "google-sub-1", u.GoogleID)
}

func TestNewAdmin(t *testing.T) {
	clock := fixedClock()

	u, err := NewAdmin("Root", "root@example.com", "hashed", clock)
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, u.Role)
	assert.Equal(t, StatusVerified, u.Status)
}

func TestUserCanLogin(t *testing.T) {
	clock := fixedClock()
	u, err := NewUser("Alice", "alice@example.com", "hashed", RoleFarmer, clock)
	require.NoError(t, err)

	assert.NoError(t, u.CanLogin())

	u.Blocked = true
	assert.ErrorIs(t, u.CanLogin(), errs.ErrAccountBlocked)
}

func TestUserCreditWallet(t *testing.T) {
	clock := fixedClock()
	u, err := NewUser("Alice", "alice@example.com", "hashed", RoleFarmer, clock)
	require.NoError(t, err)

	u.CreditWallet(decimal.RequireFromString("125.50"), clock)
	u.CreditWallet(decimal.RequireFromString("74.50"), clock)

	assert.Equal(t, "200", u.WalletBalance.String())
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("short"))
	assert.True(t, ValidatePassword("longenough"))
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"farmer", "company", "admin"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, role.String())
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, errs.ErrInvalidRole)
}
