package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FarmerDashboard aggregates a farmer's marketplace position.
type FarmerDashboard struct {
	RemainingCredits int64
	WalletBalance    decimal.Decimal
	VerifiedFarmland int64
	PendingFarmland  int64
}

// CompanyDashboard aggregates a company's purchase history.
type CompanyDashboard struct {
	TotalPurchases   int64
	PurchasedCredits int64
	TotalSpent       decimal.Decimal
}

// AdminDashboard aggregates global review workload.
type AdminDashboard struct {
	Users                  []persistence.RoleStatusCount
	PendingFarmlandReviews int64
	PendingCompanyDocs     int64
}

// DashboardUseCase recomputes per-role aggregates on every request.
type DashboardUseCase interface {
	Farmer(ctx context.Context, farmerID uuid.UUID) (*FarmerDashboard, error)
	Company(ctx context.Context, companyID uuid.UUID) (*CompanyDashboard, error)
	Admin(ctx context.Context) (*AdminDashboard, error)
}
