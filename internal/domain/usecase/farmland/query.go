package farmland

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// GetOwned fetches one parcel and checks it belongs to the requester.
func (s *Service) GetOwned(ctx context.Context, ownerID, farmlandID uuid.UUID) (*entity.Farmland, error) {
	parcel, err := s.farmlands.GetByID(ctx, farmlandID)
	if err != nil {
		return nil, err
	}
	if !parcel.OwnedBy(ownerID) {
		return nil, errs.ErrNotOwner
	}
	return parcel, nil
}

// ListOwned returns the owner's parcels with an optional name search.
func (s *Service) ListOwned(ctx context.Context, ownerID uuid.UUID, search string) ([]*entity.Farmland, error) {
	return s.farmlands.List(ctx, persistence.FarmlandFilter{
		OwnerID: ownerID,
		Search:  search,
	})
}
