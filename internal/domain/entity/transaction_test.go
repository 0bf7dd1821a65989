package entity

import (
	"testing"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	clock := fixedClock()

	t.Run("records the settlement and stamps an invoice reference", func(t *testing.T) {
		tx, err := NewTransaction(uuid.New(), uuid.New(), uuid.New(), 25, decimal.RequireFromString("87.50"),
			"order_1", "pay_1", "sig", clock)
		require.NoError(t, err)

		assert.Equal(t, int64(25), tx.Credits)
		assert.Regexp(t, `^INV-20250601-[0-9a-f]{8}$`, tx.InvoiceRef)
	})

	t.Run("rejects missing gateway identifiers", func(t *testing.T) {
		_, err := NewTransaction(uuid.New(), uuid.New(), uuid.New(), 25, decimal.RequireFromString("87.50"),
			"", "pay_1", "sig", clock)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewTransaction(uuid.New(), uuid.New(), uuid.New(), 25, decimal.RequireFromString("87.50"),
			"order_1", "", "sig", clock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewWalletCredit(t *testing.T) {
	clock := fixedClock()

	entry, err := NewWalletCredit(uuid.New(), uuid.New(), decimal.RequireFromString("87.50"), "Sale of 25 credits", clock)
	require.NoError(t, err)

	assert.Equal(t, WalletCredit, entry.Direction)
	assert.Equal(t, "87.5", entry.Signed().String())

	entry.Direction = WalletDebit
	assert.Equal(t, "-87.5", entry.Signed().String())
}
