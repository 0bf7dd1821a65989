package auth

import (
	"context"
	"testing"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleFarmer,
		Status:       entity.StatusVerified,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		user := storedUser()
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		f.hasher.On("Compare", user.PasswordHash, "password123").Return(true)
		f.tokens.On("Issue", user.ID, entity.RoleFarmer).Return("signed-token", nil)

		result, err := f.service.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)

		assert.Equal(t, "signed-token", result.Token)
		assert.Same(t, user, result.User)
	})

	t.Run("normalizes the email before lookup", func(t *testing.T) {
		f := newAuthFixture()
		user := storedUser()
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		f.hasher.On("Compare", mock.Anything, mock.Anything).Return(true)
		f.tokens.On("Issue", mock.Anything, mock.Anything).Return("signed-token", nil)

		_, err := f.service.Login(ctx, "  Alice@Example.COM ", "password123")
		require.NoError(t, err)
		f.users.AssertExpectations(t)
	})

	t.Run("returns the same error for every credential failure", func(t *testing.T) {
		t.Run("unknown email", func(t *testing.T) {
			f := newAuthFixture()
			f.users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound)

			_, err := f.service.Login(ctx, "nobody@example.com", "password123")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		})

		t.Run("wrong password", func(t *testing.T) {
			f := newAuthFixture()
			user := storedUser()
			f.users.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)
			f.hasher.On("Compare", user.PasswordHash, "wrong").Return(false)

			_, err := f.service.Login(ctx, "alice@example.com", "wrong")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
			f.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		})

		t.Run("google-only account", func(t *testing.T) {
			f := newAuthFixture()
			user := storedUser()
			user.PasswordHash = ""
			user.GoogleID = "google-sub-1"
			f.users.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)

			_, err := f.service.Login(ctx, "alice@example.com", "password123")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
			f.hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
		})
	})

	t.Run("rejects a blocked account after the password check", func(t *testing.T) {
		f := newAuthFixture()
		user := storedUser()
		user.Blocked = true
		f.users.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)
		f.hasher.On("Compare", user.PasswordHash, "password123").Return(true)

		_, err := f.service.Login(ctx, "alice@example.com", "password123")
		assert.ErrorIs(t, err, errs.ErrAccountBlocked)
		f.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}
