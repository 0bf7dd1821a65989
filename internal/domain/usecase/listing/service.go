package listing

import (
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Service implements usecase.ListingUseCase.
type Service struct {
	listings     persistence.ListingRepository
	farmlands    persistence.FarmlandRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the listing service with its collaborators injected.
func NewService(
	listings persistence.ListingRepository,
	farmlands persistence.FarmlandRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ListingUseCase {
	return &Service{
		listings:     listings,
		farmlands:    farmlands,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
