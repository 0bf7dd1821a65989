package dto

import (
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// FarmerDashboardResponse aggregates a farmer's marketplace position
type FarmerDashboardResponse struct {
	RemainingCredits int64  `json:"remainingCredits"`
	WalletBalance    string `json:"walletBalance"`
	VerifiedFarmland int64  `json:"verifiedFarmland"`
	PendingFarmland  int64  `json:"pendingFarmland"`
}

// CompanyDashboardResponse aggregates a company's purchase history
type CompanyDashboardResponse struct {
	TotalPurchases   int64  `json:"totalPurchases"`
	PurchasedCredits int64  `json:"purchasedCredits"`
	TotalSpent       string `json:"totalSpent"`
}

// UserCountResponse is one role/status bucket in the admin view
type UserCountResponse struct {
	Role   string `json:"role"`
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AdminDashboardResponse aggregates global review workload
type AdminDashboardResponse struct {
	Users                  []UserCountResponse `json:"users"`
	PendingFarmlandReviews int64               `json:"pendingFarmlandReviews"`
	PendingCompanyDocs     int64               `json:"pendingCompanyDocs"`
}

// NewFarmerDashboardResponse maps the farmer aggregate to its API view
func NewFarmerDashboardResponse(d *usecase.FarmerDashboard) FarmerDashboardResponse {
	return FarmerDashboardResponse{
		RemainingCredits: d.RemainingCredits,
		WalletBalance:    d.WalletBalance.StringFixed(2),
		VerifiedFarmland: d.VerifiedFarmland,
		PendingFarmland:  d.PendingFarmland,
	}
}

// NewCompanyDashboardResponse maps the company aggregate to its API view
func NewCompanyDashboardResponse(d *usecase.CompanyDashboard) CompanyDashboardResponse {
	return CompanyDashboardResponse{
		TotalPurchases:   d.TotalPurchases,
		PurchasedCredits: d.PurchasedCredits,
		TotalSpent:       d.TotalSpent.StringFixed(2),
	}
}

// NewAdminDashboardResponse maps the admin aggregate to its API view
func NewAdminDashboardResponse(d *usecase.AdminDashboard) AdminDashboardResponse {
	users := make([]UserCountResponse, 0, len(d.Users))
	for _, u := range d.Users {
		users = append(users, UserCountResponse{
			Role:   string(u.Role),
			Status: string(u.Status),
			Count:  u.Count,
		})
	}
	return AdminDashboardResponse{
		Users:                  users,
		PendingFarmlandReviews: d.PendingFarmlandReviews,
		PendingCompanyDocs:     d.PendingCompanyDocs,
	}
}
