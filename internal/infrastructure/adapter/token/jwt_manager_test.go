package token

import (
	"testing"
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() *coremocks.FixedClock {
	return coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestNewJWTManager(t *testing.T) {
	t.Run("rejects an empty secret", func(t *testing.T) {
		_, err := NewJWTManager("", 0, testClock())
		assert.Error(t, err)
	})

	t.Run("falls back to the default session length", func(t *testing.T) {
		m, err := NewJWTManager("secret", 0, testClock())
		require.NoError(t, err)
		assert.Equal(t, DefaultTTL, m.ttl)
	})
}

func TestIssueAndParse(t *testing.T) {
	clock := testClock()
	m, err := NewJWTManager("secret", DefaultTTL, clock)
	require.NoError(t, err)

	userID := uuid.New()

	t.Run("roundtrips the user id and role", func(t *testing.T) {
		raw, err := m.Issue(userID, entity.RoleCompany)
		require.NoError(t, err)

		session, err := m.Parse(raw)
		require.NoError(t, err)

		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, entity.RoleCompany, session.Role)
	})

	t.Run("accepts a token just inside the session window", func(t *testing.T) {
		clock := testClock()
		m, err := NewJWTManager("secret", DefaultTTL, clock)
		require.NoError(t, err)

		raw, err := m.Issue(userID, entity.RoleFarmer)
		require.NoError(t, err)

		clock.Advance(7*24*time.Hour - time.Minute)
		_, err = m.Parse(raw)
		assert.NoError(t, err)
	})

	t.Run("expires after seven days", func(t *testing.T) {
		clock := testClock()
		m, err := NewJWTManager("secret", DefaultTTL, clock)
		require.NoError(t, err)

		raw, err := m.Issue(userID, entity.RoleFarmer)
		require.NoError(t, err)

		clock.Advance(7*24*time.Hour + time.Minute)
		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := NewJWTManager("other-secret", DefaultTTL, clock)
		require.NoError(t, err)

		raw, err := other.Issue(userID, entity.RoleFarmer)
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		raw, err := m.Issue(userID, entity.RoleFarmer)
		require.NoError(t, err)

		tampered := raw[:len(raw)-2] + "xx"
		_, err = m.Parse(tampered)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
