package listing

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Get fetches one listing.
func (s *Service) Get(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	return s.listings.GetByID(ctx, listingID)
}

// ListOwned returns the farmer's own listings, newest first.
func (s *Service) ListOwned(ctx context.Context, farmerID uuid.UUID) ([]*entity.Listing, error) {
	return s.listings.List(ctx, persistence.ListingFilter{FarmerID: farmerID})
}

// Update edits credits and price on an owned listing.
func (s *Service) Update(ctx context.Context, input usecase.UpdateListingInput) (*entity.Listing, error) {
	l, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(input.FarmerID) {
		return nil, errs.ErrNotOwner
	}

	if err := l.Reprice(input.TotalCredits, input.PricePerCredit, s.timeProvider); err != nil {
		return nil, err
	}

	if err := s.listings.Update(ctx, l); err != nil {
		s.logger.Error("Failed to persist listing update", map[string]any{
			"listing_id": l.ID,
			"error":      err.Error(),
		})
		return nil, err
	}
	return l, nil
}

// Delete removes an owned listing.
func (s *Service) Delete(ctx context.Context, farmerID, listingID uuid.UUID) error {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if !l.OwnedBy(farmerID) {
		return errs.ErrNotOwner
	}

	if err := s.listings.Delete(ctx, listingID); err != nil {
		return err
	}

	s.logger.Info("Listing deleted", map[string]any{
		"listing_id": listingID,
		"farmer_id":  farmerID,
	})
	return nil
}
