package auth

import (
	"context"
	"strings"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/google/uuid"
)

// GetProfile fetches the authenticated user's own record.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile changes the user's display name.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError().Add("name", "name must not be empty")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(name)
	user.UpdatedAt = s.timeProvider.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
// Google-only accounts have no local password and cannot set one here.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if !entity.ValidatePassword(next) {
		return errs.NewValidationError().Add("newPassword", "password must be at least 6 characters")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.HasLocalPassword() || !s.hasher.Compare(user.PasswordHash, current) {
		return errs.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return errs.ErrInternalServer
	}

	user.PasswordHash = hash
	user.UpdatedAt = s.timeProvider.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Password changed", map[string]any{
		"user_id": userID,
	})
	return nil
}
