package listing

import (
	"context"
	"testing"
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	persistencemocks "github.com/agrikarbon/carbon-marketplace/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingFixture struct {
	listings  *persistencemocks.MockListingRepository
	farmlands *persistencemocks.MockFarmlandRepository
	service   usecase.ListingUseCase
}

func newListingFixture() *listingFixture {
	f := &listingFixture{
		listings:  &persistencemocks.MockListingRepository{},
		farmlands: &persistencemocks.MockFarmlandRepository{},
	}
	clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	f.service = NewService(f.listings, f.farmlands, clock, &coremocks.NopLogger{})
	return f
}

func verifiedParcel(ownerID uuid.UUID) *entity.Farmland {
	return &entity.Farmland{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         "North Field",
		Location:     "Nashik",
		AreaHectares: decimal.RequireFromString("4.5"),
		Status:       entity.StatusVerified,
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a listing against a verified owned parcel", func(t *testing.T) {
		f := newListingFixture()
		farmerID := uuid.New()
		parcel := verifiedParcel(farmerID)
		f.farmlands.On("GetByID", mock.Anything, parcel.ID).Return(parcel, nil)
		f.listings.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
			return l.FarmerID == farmerID &&
				l.FarmlandID == parcel.ID &&
				l.Status == entity.ListingActive &&
				l.TotalValue.Equal(decimal.RequireFromString("350"))
		})).Return(nil)

		created, err := f.service.Create(ctx, usecase.CreateListingInput{
			FarmerID:       farmerID,
			FarmlandID:     parcel.ID,
			TotalCredits:   100,
			PricePerCredit: decimal.RequireFromString("3.5"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(100), created.RemainingCredits)
		f.listings.AssertExpectations(t)
	})

	t.Run("rejects a parcel owned by someone else", func(t *testing.T) {
		f := newListingFixture()
		parcel := verifiedParcel(uuid.New())
		f.farmlands.On("GetByID", mock.Anything, parcel.ID).Return(parcel, nil)

		_, err := f.service.Create(ctx, usecase.CreateListingInput{
			FarmerID:       uuid.New(),
			FarmlandID:     parcel.ID,
			TotalCredits:   100,
			PricePerCredit: decimal.RequireFromString("3.5"),
		})
		assert.ErrorIs(t, err, errs.ErrNotOwner)
		f.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unverified parcel", func(t *testing.T) {
		f := newListingFixture()
		farmerID := uuid.New()
		parcel := verifiedParcel(farmerID)
		parcel.Status = entity.StatusPendingVerification
		f.farmlands.On("GetByID", mock.Anything, parcel.ID).Return(parcel, nil)

		_, err := f.service.Create(ctx, usecase.CreateListingInput{
			FarmerID:       farmerID,
			FarmlandID:     parcel.ID,
			TotalCredits:   100,
			PricePerCredit: decimal.RequireFromString("3.5"),
		})
		assert.ErrorIs(t, err, errs.ErrFarmlandNotVerified)
		f.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propagates a missing parcel", func(t *testing.T) {
		f := newListingFixture()
		id := uuid.New()
		f.farmlands.On("GetByID", mock.Anything, id).Return(nil, errs.ErrFarmlandNotFound)

		_, err := f.service.Create(ctx, usecase.CreateListingInput{
			FarmerID:       uuid.New(),
			FarmlandID:     id,
			TotalCredits:   100,
			PricePerCredit: decimal.RequireFromString("3.5"),
		})
		assert.ErrorIs(t, err, errs.ErrFarmlandNotFound)
	})
}
