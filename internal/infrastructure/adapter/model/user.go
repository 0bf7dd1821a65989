package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// User represents the database model for user accounts
type User struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"not null;size:255"`
	Email         string          `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string          `gorm:"size:255"`
	GoogleID      string          `gorm:"index;size:255"`
	Role          string          `gorm:"not null;size:20;index"`
	Status        string          `gorm:"not null;size:50;index"`
	Blocked       bool            `gorm:"not null;default:false"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	DocumentURLs  datatypes.JSON
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
