package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletEntry represents the database model for wallet ledger entries
type WalletEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FarmerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Direction     string          `gorm:"not null;size:10"`
	Description   string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`

	Farmer      User        `gorm:"foreignKey:FarmerID;references:ID"`
	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for WalletEntry
func (WalletEntry) TableName() string {
	return "wallet_entries"
}
