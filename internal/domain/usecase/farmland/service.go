package farmland

import (
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// folder names inside the object store
const (
	documentsFolder = "farmland/documents"
	imagesFolder    = "farmland/images"
)

// Service implements usecase.FarmlandUseCase.
type Service struct {
	farmlands    persistence.FarmlandRepository
	storage      gateway.ObjectStorage
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the farmland service with its collaborators injected.
func NewService(
	farmlands persistence.FarmlandRepository,
	storage gateway.ObjectStorage,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.FarmlandUseCase {
	return &Service{
		farmlands:    farmlands,
		storage:      storage,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
