package listing

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// DefaultPageSize bounds marketplace browse result sets.
const DefaultPageSize = 50

// Browse returns active listings for the public marketplace. Result sets are
// always bounded; an unset limit falls back to DefaultPageSize.
func (s *Service) Browse(ctx context.Context, filter usecase.BrowseFilter) ([]*entity.Listing, error) {
	limit := filter.Limit
	if limit <= 0 || limit > DefaultPageSize {
		limit = DefaultPageSize
	}

	return s.listings.List(ctx, persistence.ListingFilter{
		FarmlandID: filter.FarmlandID,
		Status:     entity.ListingActive,
		MaxPrice:   filter.MaxPrice,
		Limit:      limit,
		Offset:     filter.Offset,
	})
}
