package entity

import (
	"testing"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFarmland(t *testing.T) {
	clock := fixedClock()

	t.Run("starts pending verification", func(t *testing.T) {
		f, err := NewFarmland(uuid.New(), "North Field", "Nashik, Maharashtra", decimal.RequireFromString("4.2"), clock)
		require.NoError(t, err)

		assert.Equal(t, StatusPendingVerification, f.Status)
		assert.False(t, f.IsVerified())
	})

	t.Run("rejects empty metadata and non-positive area", func(t *testing.T) {
		_, err := NewFarmland(uuid.New(), "", "Nashik", decimal.RequireFromString("4.2"), clock)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewFarmland(uuid.New(), "North Field", "Nashik", decimal.Zero, clock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestFarmlandReview(t *testing.T) {
	clock := fixedClock()

	newParcel := func(t *testing.T) *Farmland {
		f, err := NewFarmland(uuid.New(), "North Field", "Nashik", decimal.RequireFromString("4.2"), clock)
		require.NoError(t, err)
		return f
	}

	t.Run("verify clears any previous rejection reason", func(t *testing.T) {
		f := newParcel(t)
		require.NoError(t, f.Reject("documents unreadable", clock))

		f.Verify(clock)
		assert.True(t, f.IsVerified())
		assert.Empty(t, f.RejectionReason)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		f := newParcel(t)

		assert.ErrorIs(t, f.Reject("  ", clock), errs.ErrRejectionReasonRequired)
		assert.Equal(t, StatusPendingVerification, f.Status)

		require.NoError(t, f.Reject("boundary map missing", clock))
		assert.Equal(t, StatusRejected, f.Status)
		assert.Equal(t, "boundary map missing", f.RejectionReason)
	})
}

func TestFarmlandOwnedBy(t *testing.T) {
	clock := fixedClock()
	ownerID := uuid.New()
	f, err := NewFarmland(ownerID, "North Field", "Nashik", decimal.RequireFromString("4.2"), clock)
	require.NoError(t, err)

	assert.True(t, f.OwnedBy(ownerID))
	assert.False(t, f.OwnedBy(uuid.New()))
}
