package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Farmland represents the database model for farmland parcels
type Farmland struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"not null;size:255"`
	Location        string          `gorm:"not null;size:255"`
	AreaHectares    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DocumentURLs    datatypes.JSON
	ImageURLs       datatypes.JSON
	Status          string `gorm:"not null;size:50;index"`
	RejectionReason string `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName specifies the table name for Farmland
func (Farmland) TableName() string {
	return "farmlands"
}
