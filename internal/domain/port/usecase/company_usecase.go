package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/google/uuid"
)

// CompanyUseCase covers the company-side KYC and purchase history views.
type CompanyUseCase interface {
	// UploadDocuments stores KYC documents and puts the account back under
	// review.
	UploadDocuments(ctx context.Context, companyID uuid.UUID, documents []gateway.FileUpload) (*entity.User, error)

	// Transactions returns the company's settled purchases
	Transactions(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error)
}
