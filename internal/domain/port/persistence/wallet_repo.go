package persistence

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
)

// WalletRepository defines persistence operations for wallet ledger entries.
type WalletRepository interface {
	// Create persists an immutable ledger entry
	Create(ctx context.Context, entry *entity.WalletEntry) error

	// ListByFarmer returns a farmer's ledger, newest first
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.WalletEntry, error)
}
