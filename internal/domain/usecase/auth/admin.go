package auth

import (
	"context"
	"errors"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/google/uuid"
)

// CreateAdmin creates another admin account. The admin-role route gate keeps
// this out of reach of farmers and companies.
func (s *Service) CreateAdmin(ctx context.Context, name, email, password string) (*entity.User, error) {
	v := errs.NewValidationError()
	if name == "" {
		v.Add("name", "name must not be empty")
	}
	if !entity.ValidateEmail(email) {
		v.Add("email", "email address is not well-formed")
	}
	if !entity.ValidatePassword(password) {
		v.Add("password", "password must be at least 6 characters")
	}
	if v.HasErrors() {
		return nil, v
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	admin, err := entity.NewAdmin(name, email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("Admin created", map[string]any{
		"user_id": admin.ID,
	})
	return admin, nil
}

// SetUserStatus applies admin moderation. Passing an empty status leaves the
// verification status untouched; a nil blocked pointer leaves the flag alone.
// Existing session tokens stay valid until natural expiry; blocking takes
// effect at next login.
func (s *Service) SetUserStatus(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus, blocked *bool) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if status != "" {
		switch status {
		case entity.StatusPendingVerification, entity.StatusVerified, entity.StatusRejected:
			user.Status = status
		default:
			return nil, errs.NewValidationError().Add("status", "unknown verification status")
		}
	}
	if blocked != nil {
		user.Blocked = *blocked
	}
	user.UpdatedAt = s.timeProvider.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User moderated", map[string]any{
		"user_id": user.ID,
		"status":  string(user.Status),
		"blocked": user.Blocked,
	})
	return user, nil
}
