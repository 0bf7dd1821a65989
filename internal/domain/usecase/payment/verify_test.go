package payment

import (
	"context"
	"testing"
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	gatewaymocks "github.com/agrikarbon/carbon-marketplace/mocks/port/gateway"
	persistencemocks "github.com/agrikarbon/carbon-marketplace/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKeySecret = "key-secret"

type paymentFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	listings *persistencemocks.MockListingRepository
	gateway  *gatewaymocks.MockPaymentGateway
	service  usecase.PaymentUseCase
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		uow:      persistencemocks.NewMockUnitOfWork(),
		listings: &persistencemocks.MockListingRepository{},
		gateway:  &gatewaymocks.MockPaymentGateway{},
	}
	clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	f.service = NewService(f.uow, f.listings, f.gateway, testKeySecret, clock, &coremocks.NopLogger{})
	return f
}

func activeListing(remaining int64) *entity.Listing {
	return &entity.Listing{
		ID:               uuid.New(),
		FarmerID:         uuid.New(),
		FarmlandID:       uuid.New(),
		TotalCredits:     100,
		RemainingCredits: remaining,
		PricePerCredit:   decimal.RequireFromString("3.5"),
		TotalValue:       decimal.RequireFromString("350"),
		Status:           entity.ListingActive,
	}
}

func settlementInput(listingID uuid.UUID, credits int64) usecase.VerifyPaymentInput {
	input := usecase.VerifyPaymentInput{
		CompanyID: uuid.New(),
		ListingID: listingID,
		Credits:   credits,
		OrderID:   "order_abc",
		PaymentID: "pay_xyz",
	}
	input.Signature = ComputeSignature(input.OrderID, input.PaymentID, testKeySecret)
	return input
}

func TestVerifyAndSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a forged signature before touching the database", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(100)
		input := settlementInput(l.ID, 20)
		input.Signature = ComputeSignature(input.OrderID, input.PaymentID, "wrong-secret")

		_, err := f.service.VerifyAndSettle(ctx, input)
		assert.ErrorIs(t, err, errs.ErrPaymentSignature)

		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		f.uow.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.uow.Wallets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("settles the purchase in one transaction", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(100)
		input := settlementInput(l.ID, 20)

		f.uow.On("Begin", mock.Anything).Return(nil, nil)
		f.uow.Transactions.On("GetByPaymentID", mock.Anything, "pay_xyz").Return(nil, errs.ErrTransactionNotFound)
		f.uow.Listings.On("GetByIDForUpdate", mock.Anything, l.ID).Return(l, nil)
		f.uow.Transactions.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.CompanyID == input.CompanyID &&
				tx.FarmerID == l.FarmerID &&
				tx.Credits == int64(20) &&
				tx.Amount.Equal(decimal.RequireFromString("70"))
		})).Return(nil)
		f.uow.Listings.On("Update", mock.Anything, mock.MatchedBy(func(updated *entity.Listing) bool {
			return updated.RemainingCredits == int64(80) && updated.Status == entity.ListingActive
		})).Return(nil)
		f.uow.Wallets.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.WalletEntry) bool {
			return e.FarmerID == l.FarmerID &&
				e.Direction == entity.WalletCredit &&
				e.Amount.Equal(decimal.RequireFromString("70"))
		})).Return(nil)
		f.uow.Users.On("CreditWallet", mock.Anything, l.FarmerID, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("70"))
		})).Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		tx, err := f.service.VerifyAndSettle(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "pay_xyz", tx.GatewayPaymentID)
		assert.NotEmpty(t, tx.InvoiceRef)
		f.uow.AssertExpectations(t)
		f.uow.Transactions.AssertExpectations(t)
		f.uow.Listings.AssertExpectations(t)
		f.uow.Wallets.AssertExpectations(t)
		f.uow.Users.AssertExpectations(t)
		f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("marks the listing sold when the last credits go", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(20)
		input := settlementInput(l.ID, 20)

		f.uow.On("Begin", mock.Anything).Return(nil, nil)
		f.uow.Transactions.On("GetByPaymentID", mock.Anything, mock.Anything).Return(nil, errs.ErrTransactionNotFound)
		f.uow.Listings.On("GetByIDForUpdate", mock.Anything, l.ID).Return(l, nil)
		f.uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.uow.Listings.On("Update", mock.Anything, mock.MatchedBy(func(updated *entity.Listing) bool {
			return updated.RemainingCredits == int64(0) && updated.Status == entity.ListingSold
		})).Return(nil)
		f.uow.Wallets.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.uow.Users.On("CreditWallet", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		_, err := f.service.VerifyAndSettle(ctx, input)
		require.NoError(t, err)
		f.uow.Listings.AssertExpectations(t)
	})

	t.Run("rolls back a replayed payment id", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(100)
		input := settlementInput(l.ID, 20)
		already := &entity.Transaction{ID: uuid.New(), GatewayPaymentID: input.PaymentID}

		f.uow.On("Begin", mock.Anything).Return(nil, nil)
		f.uow.Transactions.On("GetByPaymentID", mock.Anything, "pay_xyz").Return(already, nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.service.VerifyAndSettle(ctx, input)
		assert.ErrorIs(t, err, errs.ErrDuplicateSettlement)

		f.uow.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		f.uow.AssertExpectations(t)
	})

	t.Run("rolls back when the purchase exceeds remaining credits", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(10)
		input := settlementInput(l.ID, 20)

		f.uow.On("Begin", mock.Anything).Return(nil, nil)
		f.uow.Transactions.On("GetByPaymentID", mock.Anything, mock.Anything).Return(nil, errs.ErrTransactionNotFound)
		f.uow.Listings.On("GetByIDForUpdate", mock.Anything, l.ID).Return(l, nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.service.VerifyAndSettle(ctx, input)
		assert.ErrorIs(t, err, errs.ErrListingUnavailable)

		f.uow.Wallets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("rolls back when a settlement write fails", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(100)
		input := settlementInput(l.ID, 20)

		f.uow.On("Begin", mock.Anything).Return(nil, nil)
		f.uow.Transactions.On("GetByPaymentID", mock.Anything, mock.Anything).Return(nil, errs.ErrTransactionNotFound)
		f.uow.Listings.On("GetByIDForUpdate", mock.Anything, l.ID).Return(l, nil)
		f.uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.service.VerifyAndSettle(ctx, input)
		assert.ErrorIs(t, err, assert.AnError)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		f.uow.AssertExpectations(t)
	})
}
