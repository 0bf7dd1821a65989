package dto

import (
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
)

// RegisterRequest represents a local registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=farmer company"`
}

// GoogleAuthRequest carries a Google ID token plus the role to register under
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=farmer company"`
}

// LoginRequest represents a credential login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest changes the caller's display name
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// ChangePasswordRequest verifies the current password before replacing it
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// CreateAdminRequest creates another admin account
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SetUserStatusRequest applies admin moderation to an account
type SetUserStatusRequest struct {
	Status  string `json:"status" binding:"omitempty,oneof=pending_verification verified rejected"`
	Blocked *bool  `json:"blocked"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the server.
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Blocked       bool      `json:"blocked"`
	WalletBalance string    `json:"walletBalance"`
	DocumentURLs  []string  `json:"documentUrls,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AuthResponse pairs a session token with the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API view
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		Status:        string(u.Status),
		Blocked:       u.Blocked,
		WalletBalance: u.WalletBalance.StringFixed(2),
		DocumentURLs:  u.DocumentURLs,
		CreatedAt:     u.CreatedAt,
	}
}
