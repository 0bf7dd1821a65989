package listing

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Create lists credits against an owned parcel. The parcel must already be
// verified; total value is fixed here and never recomputed on read.
func (s *Service) Create(ctx context.Context, input usecase.CreateListingInput) (*entity.Listing, error) {
	parcel, err := s.farmlands.GetByID(ctx, input.FarmlandID)
	if err != nil {
		return nil, err
	}
	if !parcel.OwnedBy(input.FarmerID) {
		return nil, errs.ErrNotOwner
	}
	if !parcel.IsVerified() {
		return nil, errs.ErrFarmlandNotVerified
	}

	l, err := entity.NewListing(input.FarmerID, input.FarmlandID, input.TotalCredits, input.PricePerCredit, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.listings.Create(ctx, l); err != nil {
		s.logger.Error("Failed to persist listing", map[string]any{
			"farmer_id":   input.FarmerID,
			"farmland_id": input.FarmlandID,
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Listing created", map[string]any{
		"listing_id":  l.ID,
		"farmer_id":   l.FarmerID,
		"credits":     l.TotalCredits,
		"total_value": l.TotalValue.String(),
	})
	return l, nil
}
