package migration

import (
	"context"
	"errors"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// SeedAdmin ensures the bootstrap admin account exists. Seeding an email
// that is already registered is not an error.
func SeedAdmin(ctx context.Context, auth usecase.AuthUseCase, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := auth.CreateAdmin(ctx, name, email, password)
	if err != nil && !errors.Is(err, errs.ErrDuplicateEmail) {
		return err
	}

	return nil
}
