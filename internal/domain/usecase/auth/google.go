package auth

import (
	"context"
	"errors"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// GoogleAuth verifies a Google ID token and signs the holder in, creating the
// account on first sight. The operation is idempotent on the external subject
// id; no local password is ever stored for these accounts.
func (s *Service) GoogleAuth(ctx context.Context, rawToken, role string) (*usecase.AuthResult, error) {
	identity, err := s.identity.Verify(ctx, rawToken)
	if err != nil {
		s.logger.Warn("Google token verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrUnauthorized
	}

	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	switch {
	case err == nil:
		// Existing account; fall through to token issuance.
	case errors.Is(err, errs.ErrUserNotFound):
		parsed, roleErr := entity.ParseRole(role)
		if roleErr != nil || parsed == entity.RoleAdmin {
			return nil, errs.NewValidationError().Add("role", "role must be farmer or company")
		}
		user, err = entity.NewGoogleUser(identity.Name, identity.Email, identity.Subject, parsed, s.timeProvider)
		if err != nil {
			return nil, err
		}
		if err = s.users.Create(ctx, user); err != nil {
			s.logger.Error("Failed to create google user", map[string]any{
				"subject": identity.Subject,
				"error":   err.Error(),
			})
			return nil, err
		}
		s.logger.Info("Google user registered", map[string]any{
			"user_id": user.ID,
			"role":    user.Role.String(),
		})
	default:
		return nil, err
	}

	if err := user.CanLogin(); err != nil {
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

	return &usecase.AuthResult{Token: token, User: user}, nil
}
