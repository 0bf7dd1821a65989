package dashboard

import (
	"context"
	"testing"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	persistencemocks "github.com/agrikarbon/carbon-marketplace/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	users        *persistencemocks.MockUserRepository
	farmlands    *persistencemocks.MockFarmlandRepository
	listings     *persistencemocks.MockListingRepository
	transactions *persistencemocks.MockTransactionRepository
	service      usecase.DashboardUseCase
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		users:        &persistencemocks.MockUserRepository{},
		farmlands:    &persistencemocks.MockFarmlandRepository{},
		listings:     &persistencemocks.MockListingRepository{},
		transactions: &persistencemocks.MockTransactionRepository{},
	}
	f.service = NewService(f.users, f.farmlands, f.listings, f.transactions, &coremocks.NopLogger{})
	return f
}

func TestFarmerDashboard(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()

	t.Run("aggregates credits, balance and parcel counts", func(t *testing.T) {
		f := newDashboardFixture()
		f.users.On("GetByID", mock.Anything, farmerID).Return(&entity.User{
			ID:            farmerID,
			Role:          entity.RoleFarmer,
			WalletBalance: decimal.RequireFromString("1250.50"),
		}, nil)
		f.listings.On("SumRemainingCredits", mock.Anything, farmerID).Return(int64(340), nil)
		f.farmlands.On("CountByOwnerAndStatus", mock.Anything, farmerID, entity.StatusVerified).Return(int64(3), nil)
		f.farmlands.On("CountByOwnerAndStatus", mock.Anything, farmerID, entity.StatusPendingVerification).Return(int64(1), nil)

		d, err := f.service.Farmer(ctx, farmerID)
		require.NoError(t, err)

		assert.Equal(t, int64(340), d.RemainingCredits)
		assert.Equal(t, "1250.5", d.WalletBalance.String())
		assert.Equal(t, int64(3), d.VerifiedFarmland)
		assert.Equal(t, int64(1), d.PendingFarmland)
	})

	t.Run("propagates a missing user", func(t *testing.T) {
		f := newDashboardFixture()
		f.users.On("GetByID", mock.Anything, farmerID).Return(nil, errs.ErrUserNotFound)

		_, err := f.service.Farmer(ctx, farmerID)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestCompanyDashboard(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("reports purchase totals", func(t *testing.T) {
		f := newDashboardFixture()
		f.transactions.On("TotalsByCompany", mock.Anything, companyID).Return(persistence.PurchaseTotals{
			Transactions: 7,
			Credits:      420,
			Amount:       decimal.RequireFromString("1470"),
		}, nil)

		d, err := f.service.Company(ctx, companyID)
		require.NoError(t, err)

		assert.Equal(t, int64(7), d.TotalPurchases)
		assert.Equal(t, int64(420), d.PurchasedCredits)
		assert.Equal(t, "1470", d.TotalSpent.String())
	})

	t.Run("reports zero totals for a company with no purchases", func(t *testing.T) {
		f := newDashboardFixture()
		f.transactions.On("TotalsByCompany", mock.Anything, companyID).Return(persistence.PurchaseTotals{
			Amount: decimal.Zero,
		}, nil)

		d, err := f.service.Company(ctx, companyID)
		require.NoError(t, err)

		assert.Zero(t, d.TotalPurchases)
		assert.True(t, d.TotalSpent.IsZero())
	})
}

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()

	f := newDashboardFixture()
	counts := []persistence.RoleStatusCount{
		{Role: entity.RoleFarmer, Status: entity.StatusVerified, Count: 12},
		{Role: entity.RoleCompany, Status: entity.StatusPendingVerification, Count: 4},
	}
	f.users.On("CountByRoleAndStatus", mock.Anything).Return(counts, nil)
	f.farmlands.On("CountByStatus", mock.Anything, entity.StatusPendingVerification).Return(int64(5), nil)
	f.users.On("CountPendingCompanyDocs", mock.Anything).Return(int64(2), nil)

	d, err := f.service.Admin(ctx)
	require.NoError(t, err)

	assert.Equal(t, counts, d.Users)
	assert.Equal(t, int64(5), d.PendingFarmlandReviews)
	assert.Equal(t, int64(2), d.PendingCompanyDocs)
}
