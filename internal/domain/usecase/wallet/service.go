package wallet

import (
	"context"

	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Service implements usecase.WalletUseCase.
type Service struct {
	users   persistence.UserRepository
	entries persistence.WalletRepository
	logger  coreport.Logger
}

// NewService creates the wallet service with its collaborators injected.
func NewService(
	users persistence.UserRepository,
	entries persistence.WalletRepository,
	logger coreport.Logger,
) usecase.WalletUseCase {
	return &Service{
		users:   users,
		entries: entries,
		logger:  logger,
	}
}

// Statement returns the farmer's running balance and full ledger.
func (s *Service) Statement(ctx context.Context, farmerID uuid.UUID) (*usecase.WalletStatement, error) {
	user, err := s.users.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	return &usecase.WalletStatement{
		Balance: user.WalletBalance,
		Entries: entries,
	}, nil
}
