package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitFarmlandInput carries a farmer's parcel submission with its uploads.
type SubmitFarmlandInput struct {
	OwnerID   uuid.UUID
	Name      string
	Location  string
	Area      decimal.Decimal
	Documents []gateway.FileUpload
	Images    []gateway.FileUpload
}

// ReviewFarmlandInput carries an admin verification decision.
type ReviewFarmlandInput struct {
	FarmlandID uuid.UUID
	Approve    bool
	Reason     string
}

// FarmlandUseCase covers parcel submission, owner queries and admin review.
type FarmlandUseCase interface {
	// Submit uploads the documents and persists a pending parcel
	Submit(ctx context.Context, input SubmitFarmlandInput) (*entity.Farmland, error)

	// GetOwned fetches one parcel, checking ownership
	GetOwned(ctx context.Context, ownerID, farmlandID uuid.UUID) (*entity.Farmland, error)

	// ListOwned returns the owner's parcels with an optional name search
	ListOwned(ctx context.Context, ownerID uuid.UUID, search string) ([]*entity.Farmland, error)

	// Review verifies or rejects a parcel (admin only at the route gate)
	Review(ctx context.Context, input ReviewFarmlandInput) (*entity.Farmland, error)

	// ListPending returns parcels awaiting review
	ListPending(ctx context.Context) ([]*entity.Farmland, error)
}
