package repository

import (
	"context"
	"fmt"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{db: db, logger: logger}
}

func walletEntryModelToEntity(m *model.WalletEntry) *entity.WalletEntry {
	return &entity.WalletEntry{
		ID:            m.ID,
		FarmerID:      m.FarmerID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		Direction:     entity.WalletDirection(m.Direction),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// Create persists an immutable ledger entry
func (r *WalletRepository) Create(ctx context.Context, entry *entity.WalletEntry) error {
	m := &model.WalletEntry{
		ID:            entry.ID,
		FarmerID:      entry.FarmerID,
		TransactionID: entry.TransactionID,
		Amount:        entry.Amount,
		Direction:     string(entry.Direction),
		Description:   entry.Description,
		CreatedAt:     entry.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Database error when creating wallet entry", map[string]any{
			"farmer_id": entry.FarmerID,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return nil
}

// ListByFarmer returns a farmer's ledger, newest first
func (r *WalletRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.WalletEntry, error) {
	var models []model.WalletEntry
	result := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Database error when listing wallet entries", map[string]any{
			"farmer_id": farmerID,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	entries := make([]*entity.WalletEntry, 0, len(models))
	for i := range models {
		entries = append(entries, walletEntryModelToEntity(&models[i]))
	}
	return entries, nil
}
