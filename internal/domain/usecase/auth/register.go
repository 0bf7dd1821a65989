package auth

import (
	"context"
	"errors"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Register creates a local farmer or company account with a hashed password
// and pending verification status, then issues a session token.
func (s *Service) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}
	role, _ := entity.ParseRole(input.Role)

	// Reject duplicate emails before hashing; the unique index is the
	// backstop for concurrent registrations.
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(input.Name, input.Email, hash, role, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"email": user.Email,
			"error": err.Error(),
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

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}

func validateRegistration(input usecase.RegisterInput) error {
	v := errs.NewValidationError()
	if input.Name == "" {
		v.Add("name", "name must not be empty")
	}
	if !entity.ValidateEmail(input.Email) {
		v.Add("email", "email address is not well-formed")
	}
	if !entity.ValidatePassword(input.Password) {
		v.Add("password", "password must be at least 6 characters")
	}
	role, err := entity.ParseRole(input.Role)
	if err != nil || role == entity.RoleAdmin {
		v.Add("role", "role must be farmer or company")
	}
	if v.HasErrors() {
		return v
	}
	return nil
}
