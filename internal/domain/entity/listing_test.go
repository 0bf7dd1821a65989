package entity

import (
	"testing"
	"time"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() *coremocks.FixedClock {
	return coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestNewListing(t *testing.T) {
	clock := fixedClock()
	farmerID := uuid.New()
	farmlandID := uuid.New()

	t.Run("total value is fixed at credits times price", func(t *testing.T) {
		price := decimal.RequireFromString("3.50")
		l, err := NewListing(farmerID, farmlandID, 100, price, clock)
		require.NoError(t, err)

		assert.Equal(t, "350", l.TotalValue.String())
		assert.Equal(t, int64(100), l.RemainingCredits)
		assert.Equal(t, ListingActive, l.Status)
	})

	t.Run("rejects non-positive credits and price", func(t *testing.T) {
		_, err := NewListing(farmerID, farmlandID, 0, decimal.RequireFromString("3.50"), clock)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewListing(farmerID, farmlandID, 10, decimal.Zero, clock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestListingDeplete(t *testing.T) {
	clock := fixedClock()

	newListing := func(t *testing.T, credits int64) *Listing {
		l, err := NewListing(uuid.New(), uuid.New(), credits, decimal.RequireFromString("2.00"), clock)
		require.NoError(t, err)
		return l
	}

	t.Run("partial depletion keeps the listing active", func(t *testing.T) {
		l := newListing(t, 100)
		require.NoError(t, l.Deplete(40, clock))

		assert.Equal(t, int64(60), l.RemainingCredits)
		assert.Equal(t, ListingActive, l.Status)
	})

	t.Run("full depletion flips the listing to sold", func(t *testing.T) {
		l := newListing(t, 100)
		require.NoError(t, l.Deplete(100, clock))

		assert.Equal(t, int64(0), l.RemainingCredits)
		assert.Equal(t, ListingSold, l.Status)
	})

	t.Run("cannot exceed remaining credits", func(t *testing.T) {
		l := newListing(t, 50)
		err := l.Deplete(51, clock)

		assert.ErrorIs(t, err, errs.ErrListingUnavailable)
		assert.Equal(t, int64(50), l.RemainingCredits)
	})

	t.Run("sold listing sells nothing further", func(t *testing.T) {
		l := newListing(t, 10)
		require.NoError(t, l.Deplete(10, clock))

		assert.ErrorIs(t, l.Deplete(1, clock), errs.ErrListingUnavailable)
	})

	t.Run("total value is untouched by depletion", func(t *testing.T) {
		l := newListing(t, 100)
		before := l.TotalValue
		require.NoError(t, l.Deplete(70, clock))

		assert.True(t, before.Equal(l.TotalValue))
	})
}

func TestListingReprice(t *testing.T) {
	clock := fixedClock()

	t.Run("recomputes total value for the new numbers", func(t *testing.T) {
		l, err := NewListing(uuid.New(), uuid.New(), 100, decimal.RequireFromString("2.00"), clock)
		require.NoError(t, err)

		require.NoError(t, l.Reprice(80, decimal.RequireFromString("3.00"), clock))
		assert.Equal(t, "240", l.TotalValue.String())
		assert.Equal(t, int64(80), l.RemainingCredits)
	})

	t.Run("cannot drop below credits already sold", func(t *testing.T) {
		l, err := NewListing(uuid.New(), uuid.New(), 100, decimal.RequireFromString("2.00"), clock)
		require.NoError(t, err)
		require.NoError(t, l.Deplete(60, clock))

		assert.ErrorIs(t, l.Reprice(50, decimal.RequireFromString("2.00"), clock), errs.ErrValidation)
	})
}

func TestListingCanSell(t *testing.T) {
	clock := fixedClock()
	l, err := NewListing(uuid.New(), uuid.New(), 10, decimal.RequireFromString("5.00"), clock)
	require.NoError(t, err)

	assert.NoError(t, l.CanSell(10))
	assert.ErrorIs(t, l.CanSell(11), errs.ErrListingUnavailable)
	assert.ErrorIs(t, l.CanSell(0), errs.ErrValidation)
}

func TestListingPriceFor(t *testing.T) {
	clock := fixedClock()
	l, err := NewListing(uuid.New(), uuid.New(), 100, decimal.RequireFromString("4.25"), clock)
	require.NoError(t, err)

	assert.Equal(t, "42.5", l.PriceFor(10).String())
}
