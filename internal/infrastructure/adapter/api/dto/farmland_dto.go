package dto

import (
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
)

// ReviewFarmlandRequest carries an admin verification decision
type ReviewFarmlandRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

// FarmlandResponse is the API view of a parcel
type FarmlandResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	AreaHectares    string    `json:"areaHectares"`
	DocumentURLs    []string  `json:"documentUrls"`
	ImageURLs       []string  `json:"imageUrls"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewFarmlandResponse maps a farmland entity to its API view
func NewFarmlandResponse(f *entity.Farmland) FarmlandResponse {
	return FarmlandResponse{
		ID:              f.ID.String(),
		OwnerID:         f.OwnerID.String(),
		Name:            f.Name,
		Location:        f.Location,
		AreaHectares:    f.AreaHectares.String(),
		DocumentURLs:    f.DocumentURLs,
		ImageURLs:       f.ImageURLs,
		Status:          string(f.Status),
		RejectionReason: f.RejectionReason,
		CreatedAt:       f.CreatedAt,
	}
}

// NewFarmlandResponses maps a slice of parcels
func NewFarmlandResponses(parcels []*entity.Farmland) []FarmlandResponse {
	out := make([]FarmlandResponse, 0, len(parcels))
	for _, f := range parcels {
		out = append(out, NewFarmlandResponse(f))
	}
	return out
}
