package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing represents the database model for carbon credit listings
type Listing struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FarmerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	FarmlandID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalCredits     int64           `gorm:"not null"`
	RemainingCredits int64           `gorm:"not null"`
	PricePerCredit   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalValue       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status           string          `gorm:"not null;size:20;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Farmer   User     `gorm:"foreignKey:FarmerID;references:ID"`
	Farmland Farmland `gorm:"foreignKey:FarmlandID;references:ID"`
}

// TableName specifies the table name for Listing
func (Listing) TableName() string {
	return "listings"
}
