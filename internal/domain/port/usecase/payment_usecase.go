package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput carries a company's purchase intent.
type CreateOrderInput struct {
	CompanyID uuid.UUID
	ListingID uuid.UUID
	Credits   int64
}

// CreateOrderResult echoes the gateway order back to the client.
type CreateOrderResult struct {
	OrderID   string
	ListingID uuid.UUID
	Credits   int64
	Amount    decimal.Decimal
	Currency  string
}

// VerifyPaymentInput carries the gateway callback triple plus the purchase.
type VerifyPaymentInput struct {
	CompanyID uuid.UUID
	ListingID uuid.UUID
	Credits   int64
	OrderID   string
	PaymentID string
	Signature string
}

// PaymentUseCase covers order creation and verify-then-settle.
type PaymentUseCase interface {
	// CreateOrder prices the purchase and registers a gateway order
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)

	// VerifyAndSettle checks the gateway signature and, only on success,
	// persists the transaction, wallet credit and listing depletion.
	VerifyAndSettle(ctx context.Context, input VerifyPaymentInput) (*entity.Transaction, error)
}
