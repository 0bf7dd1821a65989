package payment

import (
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// Currency is the settlement currency for all gateway orders.
const Currency = "INR"

// Service implements usecase.PaymentUseCase. Order creation goes through the
// gateway port; settlement runs inside a unit-of-work transaction so the
// transaction record, wallet entry, listing depletion and balance update
// commit together.
type Service struct {
	uow          persistence.UnitOfWork
	listings     persistence.ListingRepository
	gateway      gateway.PaymentGateway
	keySecret    string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the payment service with its collaborators injected.
func NewService(
	uow persistence.UnitOfWork,
	listings persistence.ListingRepository,
	paymentGateway gateway.PaymentGateway,
	keySecret string,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PaymentUseCase {
	return &Service{
		uow:          uow,
		listings:     listings,
		gateway:      paymentGateway,
		keySecret:    keySecret,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
