package auth

import (
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Service implements usecase.AuthUseCase.
type Service struct {
	users        persistence.UserRepository
	hasher       gateway.CredentialHasher
	tokens       gateway.TokenIssuer
	identity     gateway.IdentityVerifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the auth service with its collaborators injected.
func NewService(
	users persistence.UserRepository,
	hasher gateway.CredentialHasher,
	tokens gateway.TokenIssuer,
	identity gateway.IdentityVerifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &Service{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		identity:     identity,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
