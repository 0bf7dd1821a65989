package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateListingInput carries a farmer's new listing request.
type CreateListingInput struct {
	FarmerID       uuid.UUID
	FarmlandID     uuid.UUID
	TotalCredits   int64
	PricePerCredit decimal.Decimal
}

// UpdateListingInput carries an owner edit of credits and price.
type UpdateListingInput struct {
	FarmerID       uuid.UUID
	ListingID      uuid.UUID
	TotalCredits   int64
	PricePerCredit decimal.Decimal
}

// BrowseFilter narrows the public marketplace browse.
type BrowseFilter struct {
	FarmlandID uuid.UUID
	MaxPrice   decimal.Decimal
	Limit      int
	Offset     int
}

// ListingUseCase covers the farmer listing lifecycle and public browse.
type ListingUseCase interface {
	// Create lists credits against an owned, verified parcel
	Create(ctx context.Context, input CreateListingInput) (*entity.Listing, error)

	// Get fetches one listing
	Get(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error)

	// ListOwned returns the farmer's own listings
	ListOwned(ctx context.Context, farmerID uuid.UUID) ([]*entity.Listing, error)

	// Update edits credits and price; owner only
	Update(ctx context.Context, input UpdateListingInput) (*entity.Listing, error)

	// Delete removes a listing; owner only
	Delete(ctx context.Context, farmerID, listingID uuid.UUID) error

	// Browse returns active listings for the public marketplace
	Browse(ctx context.Context, filter BrowseFilter) ([]*entity.Listing, error)
}
