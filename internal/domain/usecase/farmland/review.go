package farmland

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Review applies an admin verification decision. Rejection requires a reason.
// Only the admin route gate reaches this; no other actor may alter status.
func (s *Service) Review(ctx context.Context, input usecase.ReviewFarmlandInput) (*entity.Farmland, error) {
	parcel, err := s.farmlands.GetByID(ctx, input.FarmlandID)
	if err != nil {
		return nil, err
	}

	if input.Approve {
		parcel.Verify(s.timeProvider)
	} else {
		if err := parcel.Reject(input.Reason, s.timeProvider); err != nil {
			return nil, err
		}
	}

	if err := s.farmlands.Update(ctx, parcel); err != nil {
		s.logger.Error("Failed to persist farmland review", map[string]any{
			"farmland_id": parcel.ID,
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Farmland reviewed", map[string]any{
		"farmland_id": parcel.ID,
		"status":      string(parcel.Status),
	})
	return parcel, nil
}

// ListPending returns parcels awaiting admin review, newest first.
func (s *Service) ListPending(ctx context.Context) ([]*entity.Farmland, error) {
	return s.farmlands.List(ctx, persistence.FarmlandFilter{
		Status: entity.StatusPendingVerification,
	})
}
