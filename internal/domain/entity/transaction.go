package entity

import (
	"fmt"
	"time"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records one settled purchase. It is created exactly once per
// verified payment and is immutable afterwards.
type Transaction struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	FarmerID         uuid.UUID
	ListingID        uuid.UUID
	Credits          int64
	Amount           decimal.Decimal
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	InvoiceRef       string
	CreatedAt        time.Time
}

// NewTransaction builds a settlement record. Callers must have verified the
// gateway signature before constructing one.
func NewTransaction(companyID, farmerID, listingID uuid.UUID, credits int64, amount decimal.Decimal,
	orderID, paymentID, signature string, tp coreport.TimeProvider) (*Transaction, error) {

	v := errs.NewValidationError()
	if companyID == uuid.Nil {
		v.Add("companyId", "company id must not be empty")
	}
	if farmerID == uuid.Nil {
		v.Add("farmerId", "farmer id must not be empty")
	}
	if listingID == uuid.Nil {
		v.Add("listingId", "listing id must not be empty")
	}
	if credits <= 0 {
		v.Add("credits", "credit count must be positive")
	}
	if !amount.GreaterThan(decimal.Zero) {
		v.Add("amount", "amount must be positive")
	}
	if orderID == "" {
		v.Add("orderId", "gateway order id must not be empty")
	}
	if paymentID == "" {
		v.Add("paymentId", "gateway payment id must not be empty")
	}
	if v.HasErrors() {
		return nil, v
	}

	id := uuid.New()
	now := tp.Now()
	return &Transaction{
		ID:               id,
		CompanyID:        companyID,
		FarmerID:         farmerID,
		ListingID:        listingID,
		Credits:          credits,
		Amount:           amount,
		GatewayOrderID:   orderID,
		GatewayPaymentID: paymentID,
		GatewaySignature: signature,
		InvoiceRef:       fmt.Sprintf("INV-%s-%s", now.Format("20060102"), shortID(id)),
		CreatedAt:        now,
	}, nil
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[:8]
}
