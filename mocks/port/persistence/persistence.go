// Package persistence provides testify mocks for the persistence ports.
package persistence

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks persistence.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	args := m.Called(ctx, googleID)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) CreditWallet(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *MockUserRepository) CountByRoleAndStatus(ctx context.Context) ([]persistence.RoleStatusCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]persistence.RoleStatusCount)
	return counts, args.Error(1)
}

func (m *MockUserRepository) CountPendingCompanyDocs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFarmlandRepository mocks persistence.FarmlandRepository
type MockFarmlandRepository struct {
	mock.Mock
}

func (m *MockFarmlandRepository) Create(ctx context.Context, farmland *entity.Farmland) error {
	return m.Called(ctx, farmland).Error(0)
}

func (m *MockFarmlandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmland, error) {
	args := m.Called(ctx, id)
	farmland, _ := args.Get(0).(*entity.Farmland)
	return farmland, args.Error(1)
}

func (m *MockFarmlandRepository) List(ctx context.Context, filter persistence.FarmlandFilter) ([]*entity.Farmland, error) {
	args := m.Called(ctx, filter)
	parcels, _ := args.Get(0).([]*entity.Farmland)
	return parcels, args.Error(1)
}

func (m *MockFarmlandRepository) Update(ctx context.Context, farmland *entity.Farmland) error {
	return m.Called(ctx, farmland).Error(0)
}

func (m *MockFarmlandRepository) CountByStatus(ctx context.Context, status entity.VerificationStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFarmlandRepository) CountByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.VerificationStatus) (int64, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockListingRepository mocks persistence.ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	listing, _ := args.Get(0).(*entity.Listing)
	return listing, args.Error(1)
}

func (m *MockListingRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	listing, _ := args.Get(0).(*entity.Listing)
	return listing, args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context, filter persistence.ListingFilter) ([]*entity.Listing, error) {
	args := m.Called(ctx, filter)
	listings, _ := args.Get(0).([]*entity.Listing)
	return listings, args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockListingRepository) SumRemainingCredits(ctx context.Context, farmerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, farmerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepository mocks persistence.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockTransactionRepository) GetByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error) {
	args := m.Called(ctx, paymentID)
	transaction, _ := args.Get(0).(*entity.Transaction)
	return transaction, args.Error(1)
}

func (m *MockTransactionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	args := m.Called(ctx, companyID)
	transactions, _ := args.Get(0).([]*entity.Transaction)
	return transactions, args.Error(1)
}

func (m *MockTransactionRepository) TotalsByCompany(ctx context.Context, companyID uuid.UUID) (persistence.PurchaseTotals, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(persistence.PurchaseTotals), args.Error(1)
}

// MockWalletRepository mocks persistence.WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, entry *entity.WalletEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWalletRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.WalletEntry, error) {
	args := m.Called(ctx, farmerID)
	entries, _ := args.Get(0).([]*entity.WalletEntry)
	return entries, args.Error(1)
}

// MockUnitOfWork mocks persistence.UnitOfWork. The Get* methods hand back the
// repositories assigned to the struct fields so settlement tests can assert
// against the same mocks the service writes through.
type MockUnitOfWork struct {
	mock.Mock

	Users        *MockUserRepository
	Listings     *MockListingRepository
	Transactions *MockTransactionRepository
	Wallets      *MockWalletRepository
}

// NewMockUnitOfWork creates a unit of work with fresh repository mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Users:        &MockUserRepository{},
		Listings:     &MockListingRepository{},
		Transactions: &MockTransactionRepository{},
		Wallets:      &MockWalletRepository{},
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	txCtx, _ := args.Get(0).(context.Context)
	if txCtx == nil {
		txCtx = ctx
	}
	return txCtx, args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return m.Users
}

func (m *MockUnitOfWork) GetListingRepository(ctx context.Context) persistence.ListingRepository {
	return m.Listings
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return m.Transactions
}

func (m *MockUnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return m.Wallets
}
