package usecase

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
)

// RegisterInput carries raw local-registration fields from the API boundary.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult pairs a signed session token with the authenticated user.
type AuthResult struct {
	Token string
	User  *entity.User
}

// AuthUseCase covers registration, login and account administration.
type AuthUseCase interface {
	// Register creates a local farmer or company account
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// GoogleAuth verifies an external ID token and finds or creates the account
	GoogleAuth(ctx context.Context, rawToken, role string) (*AuthResult, error)

	// Login validates credentials and issues a session token
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetProfile fetches the authenticated user's own record
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile changes the user's display name
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error)

	// ChangePassword verifies the current password and stores a new hash
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error

	// CreateAdmin creates another admin account (admin only at the route gate)
	CreateAdmin(ctx context.Context, name, email, password string) (*entity.User, error)

	// SetUserStatus applies admin moderation: verification status and blocked flag
	SetUserStatus(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus, blocked *bool) (*entity.User, error)
}
