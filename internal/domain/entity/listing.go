package entity

import (
	"time"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingStatus tracks a listing through its sale lifecycle.
type ListingStatus string

const (
	ListingActive  ListingStatus = "active"
	ListingSold    ListingStatus = "sold"
	ListingExpired ListingStatus = "expired"
)

// Listing offers carbon credits from one verified farmland parcel.
// TotalValue is fixed at creation time (totalCredits × pricePerCredit) and is
// never recomputed on read. RemainingCredits is decremented per settled
// purchase; the listing flips to sold when it reaches zero.
type Listing struct {
	ID               uuid.UUID
	FarmerID         uuid.UUID
	FarmlandID       uuid.UUID
	TotalCredits     int64
	RemainingCredits int64
	PricePerCredit   decimal.Decimal
	TotalValue       decimal.Decimal
	Status           ListingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewListing builds an active listing. The farmland-verified precondition is
// checked by the usecase; this validates the numbers.
func NewListing(farmerID, farmlandID uuid.UUID, totalCredits int64, pricePerCredit decimal.Decimal, tp coreport.TimeProvider) (*Listing, error) {
	v := errs.NewValidationError()
	if farmerID == uuid.Nil {
		v.Add("farmerId", "farmer id must not be empty")
	}
	if farmlandID == uuid.Nil {
		v.Add("farmlandId", "farmland id must not be empty")
	}
	if totalCredits <= 0 {
		v.Add("totalCredits", "credit count must be positive")
	}
	if !pricePerCredit.GreaterThan(decimal.Zero) {
		v.Add("pricePerCredit", "price per credit must be positive")
	}
	if v.HasErrors() {
		return nil, v
	}

	now := tp.Now()
	return &Listing{
		ID:               uuid.New(),
		FarmerID:         farmerID,
		FarmlandID:       farmlandID,
		TotalCredits:     totalCredits,
		RemainingCredits: totalCredits,
		PricePerCredit:   pricePerCredit,
		TotalValue:       pricePerCredit.Mul(decimal.NewFromInt(totalCredits)),
		Status:           ListingActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// OwnedBy reports whether the given farmer owns this listing.
func (l *Listing) OwnedBy(farmerID uuid.UUID) bool {
	return l.FarmerID == farmerID
}

// PriceFor returns the purchase amount for the requested credit count.
func (l *Listing) PriceFor(credits int64) decimal.Decimal {
	return l.PricePerCredit.Mul(decimal.NewFromInt(credits))
}

// CanSell reports whether the listing is active with enough remaining credits.
func (l *Listing) CanSell(credits int64) error {
	if credits <= 0 {
		return errs.NewValidationError().Add("credits", "credit count must be positive")
	}
	if l.Status != ListingActive || l.RemainingCredits < credits {
		return errs.ErrListingUnavailable
	}
	return nil
}

// Deplete subtracts settled credits and flips the listing to sold at zero.
func (l *Listing) Deplete(credits int64, tp coreport.TimeProvider) error {
	if err := l.CanSell(credits); err != nil {
		return err
	}
	l.RemainingCredits -= credits
	if l.RemainingCredits == 0 {
		l.Status = ListingSold
	}
	l.UpdatedAt = tp.Now()
	return nil
}

// Reprice replaces credits and price on an owner edit. TotalValue follows the
// create-time rule for the edited numbers; past transactions are untouched.
func (l *Listing) Reprice(totalCredits int64, pricePerCredit decimal.Decimal, tp coreport.TimeProvider) error {
	v := errs.NewValidationError()
	if totalCredits <= 0 {
		v.Add("totalCredits", "credit count must be positive")
	}
	if !pricePerCredit.GreaterThan(decimal.Zero) {
		v.Add("pricePerCredit", "price per credit must be positive")
	}
	if v.HasErrors() {
		return v
	}

	sold := l.TotalCredits - l.RemainingCredits
	if totalCredits < sold {
		return errs.NewValidationError().Add("totalCredits", "credit count cannot drop below credits already sold")
	}

	l.TotalCredits = totalCredits
	l.RemainingCredits = totalCredits - sold
	l.PricePerCredit = pricePerCredit
	l.TotalValue = pricePerCredit.Mul(decimal.NewFromInt(totalCredits))
	if l.RemainingCredits == 0 {
		l.Status = ListingSold
	} else if l.Status == ListingSold {
		l.Status = ListingActive
	}
	l.UpdatedAt = tp.Now()
	return nil
}
