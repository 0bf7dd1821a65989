package entity

import (
	"time"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDirection marks a ledger entry as adding to or subtracting from the
// farmer's balance.
type WalletDirection string

const (
	WalletCredit WalletDirection = "credit"
	WalletDebit  WalletDirection = "debit"
)

// WalletEntry is one immutable line in a farmer's ledger, created alongside
// the transaction that funded it. The sum of a farmer's entries equals the
// wallet balance field on the user record.
type WalletEntry struct {
	ID            uuid.UUID
	FarmerID      uuid.UUID
	TransactionID uuid.UUID
	Amount        decimal.Decimal
	Direction     WalletDirection
	Description   string
	CreatedAt     time.Time
}

// NewWalletCredit builds a credit entry for a settled sale.
func NewWalletCredit(farmerID, transactionID uuid.UUID, amount decimal.Decimal, description string, tp coreport.TimeProvider) (*WalletEntry, error) {
	v := errs.NewValidationError()
	if farmerID == uuid.Nil {
		v.Add("farmerId", "farmer id must not be empty")
	}
	if transactionID == uuid.Nil {
		v.Add("transactionId", "transaction id must not be empty")
	}
	if !amount.GreaterThan(decimal.Zero) {
		v.Add("amount", "amount must be positive")
	}
	if v.HasErrors() {
		return nil, v
	}

	return &WalletEntry{
		ID:            uuid.New(),
		FarmerID:      farmerID,
		TransactionID: transactionID,
		Amount:        amount,
		Direction:     WalletCredit,
		Description:   description,
		CreatedAt:     tp.Now(),
	}, nil
}

// Signed returns the entry amount with its direction applied.
func (e *WalletEntry) Signed() decimal.Decimal {
	if e.Direction == WalletDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}
