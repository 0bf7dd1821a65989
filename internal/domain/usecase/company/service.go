package company

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// documentsFolder is where company KYC documents land in the object store.
const documentsFolder = "company/documents"

// MaxDocuments caps KYC documents per upload.
const MaxDocuments = 5

// Service implements usecase.CompanyUseCase.
type Service struct {
	users        persistence.UserRepository
	transactions persistence.TransactionRepository
	storage      gateway.ObjectStorage
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the company service with its collaborators injected.
func NewService(
	users persistence.UserRepository,
	transactions persistence.TransactionRepository,
	storage gateway.ObjectStorage,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CompanyUseCase {
	return &Service{
		users:        users,
		transactions: transactions,
		storage:      storage,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UploadDocuments stores KYC documents and puts the account back under
// admin review.
func (s *Service) UploadDocuments(ctx context.Context, companyID uuid.UUID, documents []gateway.FileUpload) (*entity.User, error) {
	if len(documents) == 0 {
		return nil, errs.NewValidationError().Add("documents", "at least one document is required")
	}
	if len(documents) > MaxDocuments {
		return nil, errs.NewValidationError().Add("documents", "at most 5 documents per upload")
	}

	user, err := s.users.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	for _, file := range documents {
		url, uploadErr := s.storage.Upload(ctx, documentsFolder, file)
		if uploadErr != nil {
			s.logger.Error("Object store upload failed", map[string]any{
				"company_id": companyID,
				"file":       file.Name,
				"error":      uploadErr.Error(),
			})
			return nil, errs.ErrInternalServer
		}
		user.DocumentURLs = append(user.DocumentURLs, url)
	}

	user.Status = entity.StatusPendingVerification
	user.UpdatedAt = s.timeProvider.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Company documents uploaded", map[string]any{
		"company_id": companyID,
		"documents":  len(documents),
	})
	return user, nil
}

// Transactions returns the company's settled purchases, newest first.
func (s *Service) Transactions(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	return s.transactions.ListByCompany(ctx, companyID)
}
