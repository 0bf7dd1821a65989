package auth

import (
	"context"
	"testing"
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	gatewaymocks "github.com/agrikarbon/carbon-marketplace/mocks/port/gateway"
	persistencemocks "github.com/agrikarbon/carbon-marketplace/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	users    *persistencemocks.MockUserRepository
	hasher   *gatewaymocks.MockCredentialHasher
	tokens   *gatewaymocks.MockTokenIssuer
	identity *gatewaymocks.MockIdentityVerifier
	service  usecase.AuthUseCase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    &persistencemocks.MockUserRepository{},
		hasher:   &gatewaymocks.MockCredentialHasher{},
		tokens:   &gatewaymocks.MockTokenIssuer{},
		identity: &gatewaymocks.MockIdentityVerifier{},
	}
	clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	f.service = NewService(f.users, f.hasher, f.tokens, f.identity, clock, &coremocks.NopLogger{})
	return f
}

func validRegistration() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "farmer",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending account and issues a token", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", "password123").Return("$2a$12$hash", nil)
		f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" &&
				u.Role == entity.RoleFarmer &&
				u.Status == entity.StatusPendingVerification &&
				u.PasswordHash == "$2a$12$hash"
		})).Return(nil)
		f.tokens.On("Issue", mock.Anything, entity.RoleFarmer).Return("signed-token", nil)

		result, err := f.service.Register(ctx, validRegistration())
		require.NoError(t, err)

		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "Alice", result.User.Name)
		f.users.AssertExpectations(t)
		f.hasher.AssertExpectations(t)
		f.tokens.AssertExpectations(t)
	})

	t.Run("never stores the plaintext password", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", "password123").Return("$2a$12$hash", nil)
		f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash != "password123"
		})).Return(nil)
		f.tokens.On("Issue", mock.Anything, mock.Anything).Return("signed-token", nil)

		_, err := f.service.Register(ctx, validRegistration())
		require.NoError(t, err)
		f.hasher.AssertExpectations(t)
	})

	t.Run("rejects a taken email with a conflict", func(t *testing.T) {
		f := newAuthFixture()
		existing := &entity.User{Email: "alice@example.com"}
		f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

		_, err := f.service.Register(ctx, validRegistration())
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("rejects invalid input without touching the repository", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*usecase.RegisterInput)
		}{
			{"empty name", func(in *usecase.RegisterInput) { in.Name = "" }},
			{"malformed email", func(in *usecase.RegisterInput) { in.Email = "not-an-email" }},
			{"short password", func(in *usecase.RegisterInput) { in.Password = "abc" }},
			{"unknown role", func(in *usecase.RegisterInput) { in.Role = "superuser" }},
			{"admin role", func(in *usecase.RegisterInput) { in.Role = "admin" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newAuthFixture()
				input := validRegistration()
				tc.mutate(&input)

				_, err := f.service.Register(ctx, input)
				assert.ErrorIs(t, err, errs.ErrValidation)
				f.users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("maps hasher failure to an internal error", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", mock.Anything).Return("", assert.AnError)

		_, err := f.service.Register(ctx, validRegistration())
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
