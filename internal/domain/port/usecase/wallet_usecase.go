package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStatement pairs the running balance with the full ledger.
type WalletStatement struct {
	Balance decimal.Decimal
	Entries []*entity.WalletEntry
}

// WalletUseCase exposes a farmer's balance and ledger.
type WalletUseCase interface {
	Statement(ctx context.Context, farmerID uuid.UUID) (*WalletStatement, error)
}
