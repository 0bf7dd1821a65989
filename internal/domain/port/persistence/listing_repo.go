package persistence

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingFilter narrows marketplace browse queries. Zero values mean "no
// filter". Limit is clamped by the repository to keep result sets bounded.
type ListingFilter struct {
	FarmerID   uuid.UUID
	FarmlandID uuid.UUID
	Status     entity.ListingStatus
	MaxPrice   decimal.Decimal
	Limit      int
	Offset     int
}

// ListingRepository defines persistence operations for credit listings.
type ListingRepository interface {
	// Create persists a new listing
	Create(ctx context.Context, listing *entity.Listing) error

	// GetByID retrieves a listing by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// GetByIDForUpdate retrieves a listing under a row lock. Only valid
	// inside a unit-of-work transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// List returns listings matching the filter, newest first
	List(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// Update persists listing mutations
	Update(ctx context.Context, listing *entity.Listing) error

	// Delete removes a listing
	Delete(ctx context.Context, id uuid.UUID) error

	// SumRemainingCredits totals the remaining credits on a farmer's listings
	SumRemainingCredits(ctx context.Context, farmerID uuid.UUID) (int64, error)
}
