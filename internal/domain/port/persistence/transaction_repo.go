package persistence

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseTotals aggregates a company's settled purchases. Recomputed on every
// dashboard read; there is no materialized view.
type PurchaseTotals struct {
	Transactions int64
	Credits      int64
	Amount       decimal.Decimal
}

// TransactionRepository defines persistence operations for settled purchases.
type TransactionRepository interface {
	// Create persists a settlement record. The unique index on the gateway
	// payment id makes a second settlement of the same payment fail.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByPaymentID retrieves a settlement by gateway payment id
	GetByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error)

	// ListByCompany returns a company's purchases, newest first
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error)

	// TotalsByCompany aggregates count, credits and amount for one company
	TotalsByCompany(ctx context.Context, companyID uuid.UUID) (PurchaseTotals, error)
}
