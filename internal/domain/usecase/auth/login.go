package auth

import (
	"context"
	"errors"
	"strings"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Login validates credentials and issues a session token. Every failure path
// returns the same ErrInvalidCredentials so responses cannot leak whether the
// email exists or how it failed.
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasLocalPassword() {
		// Google-only account; password login is not possible.
		return nil, errs.ErrInvalidCredentials
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	if err := user.CanLogin(); err != nil {
		s.logger.Warn("Login rejected for blocked account", map[string]any{
			"user_id": user.ID,
		})
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}
