package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for settled purchases
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FarmerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ListingID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Credits          int64           `gorm:"not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	GatewayOrderID   string          `gorm:"not null;size:255"`
	GatewayPaymentID string          `gorm:"uniqueIndex;not null;size:255"`
	GatewaySignature string          `gorm:"not null;size:255"`
	InvoiceRef       string          `gorm:"not null;size:100"`
	CreatedAt        time.Time       `gorm:"not null"`

	Company User    `gorm:"foreignKey:CompanyID;references:ID"`
	Farmer  User    `gorm:"foreignKey:FarmerID;references:ID"`
	Listing Listing `gorm:"foreignKey:ListingID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
