package persistence

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
)

// FarmlandFilter narrows farmland queries. Zero values mean "no filter".
type FarmlandFilter struct {
	OwnerID uuid.UUID
	Status  entity.VerificationStatus
	Search  string
}

// FarmlandRepository defines persistence operations for farmland parcels.
type FarmlandRepository interface {
	// Create persists a new parcel
	Create(ctx context.Context, farmland *entity.Farmland) error

	// GetByID retrieves a parcel by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmland, error)

	// List returns parcels matching the filter, newest first
	List(ctx context.Context, filter FarmlandFilter) ([]*entity.Farmland, error)

	// Update persists status and metadata changes
	Update(ctx context.Context, farmland *entity.Farmland) error

	// CountByStatus returns the number of parcels in the given status
	CountByStatus(ctx context.Context, status entity.VerificationStatus) (int64, error)

	// CountByOwnerAndStatus returns one owner's parcel count in the given status
	CountByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.VerificationStatus) (int64, error)
}
