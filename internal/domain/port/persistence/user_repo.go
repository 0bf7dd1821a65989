package persistence

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoleStatusCount is one bucket of the admin dashboard user breakdown.
type RoleStatusCount struct {
	Role   entity.Role
	Status entity.VerificationStatus
	Count  int64
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByGoogleID retrieves a user by external subject id
	GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Update persists profile, status, blocked-flag and balance changes
	Update(ctx context.Context, user *entity.User) error

	// CreditWallet atomically adds amount to the stored wallet balance
	CreditWallet(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// CountByRoleAndStatus returns user counts bucketed by role and status
	CountByRoleAndStatus(ctx context.Context) ([]RoleStatusCount, error)

	// CountPendingCompanyDocs counts company accounts awaiting document review
	CountPendingCompanyDocs(ctx context.Context) (int64, error)
}
