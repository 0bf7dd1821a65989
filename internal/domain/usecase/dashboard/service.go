package dashboard

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Service implements usecase.DashboardUseCase. Every dashboard read is a
// fresh set of aggregate queries; nothing is cached or materialized.
type Service struct {
	users        persistence.UserRepository
	farmlands    persistence.FarmlandRepository
	listings     persistence.ListingRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

// NewService creates the dashboard service with its collaborators injected.
func NewService(
	users persistence.UserRepository,
	farmlands persistence.FarmlandRepository,
	listings persistence.ListingRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) usecase.DashboardUseCase {
	return &Service{
		users:        users,
		farmlands:    farmlands,
		listings:     listings,
		transactions: transactions,
		logger:       logger,
	}
}

// Farmer aggregates remaining credits, wallet balance and farmland counts.
func (s *Service) Farmer(ctx context.Context, farmerID uuid.UUID) (*usecase.FarmerDashboard, error) {
	user, err := s.users.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	remaining, err := s.listings.SumRemainingCredits(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	verified, err := s.farmlands.CountByOwnerAndStatus(ctx, farmerID, entity.StatusVerified)
	if err != nil {
		return nil, err
	}
	pending, err := s.farmlands.CountByOwnerAndStatus(ctx, farmerID, entity.StatusPendingVerification)
	if err != nil {
		return nil, err
	}

	return &usecase.FarmerDashboard{
		RemainingCredits: remaining,
		WalletBalance:    user.WalletBalance,
		VerifiedFarmland: verified,
		PendingFarmland:  pending,
	}, nil
}

// Company aggregates purchase count, credits and spend over the company's
// transactions.
func (s *Service) Company(ctx context.Context, companyID uuid.UUID) (*usecase.CompanyDashboard, error) {
	totals, err := s.transactions.TotalsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &usecase.CompanyDashboard{
		TotalPurchases:   totals.Transactions,
		PurchasedCredits: totals.Credits,
		TotalSpent:       totals.Amount,
	}, nil
}

// Admin aggregates global review workload.
func (s *Service) Admin(ctx context.Context) (*usecase.AdminDashboard, error) {
	users, err := s.users.CountByRoleAndStatus(ctx)
	if err != nil {
		return nil, err
	}

	pendingFarmland, err := s.farmlands.CountByStatus(ctx, entity.StatusPendingVerification)
	if err != nil {
		return nil, err
	}

	pendingDocs, err := s.users.CountPendingCompanyDocs(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.AdminDashboard{
		Users:                  users,
		PendingFarmlandReviews: pendingFarmland,
		PendingCompanyDocs:     pendingDocs,
	}, nil
}
