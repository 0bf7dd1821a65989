package payment

import (
	"context"
	"testing"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a gateway order priced off the listing", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(100)
		f.listings.On("GetByID", mock.Anything, l.ID).Return(l, nil)
		f.gateway.On("CreateOrder", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("70"))
		}), Currency, mock.Anything).
			Return(&gateway.Order{ID: "order_abc", Amount: decimal.RequireFromString("70"), Currency: Currency}, nil)

		result, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CompanyID: uuid.New(),
			ListingID: l.ID,
			Credits:   20,
		})
		require.NoError(t, err)

		assert.Equal(t, "order_abc", result.OrderID)
		assert.Equal(t, "70", result.Amount.String())
		f.gateway.AssertExpectations(t)
	})

	t.Run("rejects more credits than the listing has left", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(10)
		f.listings.On("GetByID", mock.Anything, l.ID).Return(l, nil)

		_, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CompanyID: uuid.New(),
			ListingID: l.ID,
			Credits:   20,
		})
		assert.ErrorIs(t, err, errs.ErrListingUnavailable)
		f.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("hides gateway failures behind an internal error", func(t *testing.T) {
		f := newPaymentFixture()
		l := activeListing(100)
		f.listings.On("GetByID", mock.Anything, l.ID).Return(l, nil)
		f.gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		_, err := f.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CompanyID: uuid.New(),
			ListingID: l.ID,
			Credits:   20,
		})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
