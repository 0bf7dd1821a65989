package entity

import (
	"strings"
	"time"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Farmland is a parcel submitted by a farmer for verification. Listings may
// only be created against parcels in StatusVerified. Parcels are never
// hard-deleted.
type Farmland struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Location        string
	AreaHectares    decimal.Decimal
	DocumentURLs    []string
	ImageURLs       []string
	Status          VerificationStatus
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewFarmland builds a pending parcel for the given owner.
func NewFarmland(ownerID uuid.UUID, name, location string, area decimal.Decimal, tp coreport.TimeProvider) (*Farmland, error) {
	v := errs.NewValidationError()
	if ownerID == uuid.Nil {
		v.Add("ownerId", "owner id must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		v.Add("name", "name must not be empty")
	}
	if strings.TrimSpace(location) == "" {
		v.Add("location", "location must not be empty")
	}
	if !area.GreaterThan(decimal.Zero) {
		v.Add("area", "area must be positive")
	}
	if v.HasErrors() {
		return nil, v
	}

	now := tp.Now()
	return &Farmland{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(name),
		Location:     strings.TrimSpace(location),
		AreaHectares: area,
		Status:       StatusPendingVerification,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Verify transitions the parcel to verified. Admin only; the role check lives
// at the route gate, this enforces the state machine.
func (f *Farmland) Verify(tp coreport.TimeProvider) {
	f.Status = StatusVerified
	f.RejectionReason = ""
	f.UpdatedAt = tp.Now()
}

// Reject transitions the parcel to rejected. A reason is mandatory.
func (f *Farmland) Reject(reason string, tp coreport.TimeProvider) error {
	if strings.TrimSpace(reason) == "" {
		return errs.ErrRejectionReasonRequired
	}
	f.Status = StatusRejected
	f.RejectionReason = strings.TrimSpace(reason)
	f.UpdatedAt = tp.Now()
	return nil
}

// IsVerified reports whether credits may be listed against this parcel.
func (f *Farmland) IsVerified() bool {
	return f.Status == StatusVerified
}

// OwnedBy reports whether the given user owns this parcel.
func (f *Farmland) OwnedBy(userID uuid.UUID) bool {
	return f.OwnerID == userID
}
