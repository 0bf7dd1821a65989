package dto

import (
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
)

// CreateListingRequest lists credits against a verified parcel
type CreateListingRequest struct {
	FarmlandID     string `json:"farmlandId" binding:"required"`
	TotalCredits   int64  `json:"totalCredits" binding:"required"`
	PricePerCredit string `json:"pricePerCredit" binding:"required"`
}

// UpdateListingRequest edits credits and price on an owned listing
type UpdateListingRequest struct {
	TotalCredits   int64  `json:"totalCredits" binding:"required"`
	PricePerCredit string `json:"pricePerCredit" binding:"required"`
}

// ListingResponse is the API view of a listing
type ListingResponse struct {
	ID               string    `json:"id"`
	FarmerID         string    `json:"farmerId"`
	FarmlandID       string    `json:"farmlandId"`
	TotalCredits     int64     `json:"totalCredits"`
	RemainingCredits int64     `json:"remainingCredits"`
	PricePerCredit   string    `json:"pricePerCredit"`
	TotalValue       string    `json:"totalValue"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewListingResponse maps a listing entity to its API view
func NewListingResponse(l *entity.Listing) ListingResponse {
	return ListingResponse{
		ID:               l.ID.String(),
		FarmerID:         l.FarmerID.String(),
		FarmlandID:       l.FarmlandID.String(),
		TotalCredits:     l.TotalCredits,
		RemainingCredits: l.RemainingCredits,
		PricePerCredit:   l.PricePerCredit.StringFixed(2),
		TotalValue:       l.TotalValue.StringFixed(2),
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
	}
}

// NewListingResponses maps a slice of listings
func NewListingResponses(listings []*entity.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewListingResponse(l))
	}
	return out
}
