package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/persistence"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		CompanyID:        m.CompanyID,
		FarmerID:         m.FarmerID,
		ListingID:        m.ListingID,
		Credits:          m.Credits,
		Amount:           m.Amount,
		GatewayOrderID:   m.GatewayOrderID,
		GatewayPaymentID: m.GatewayPaymentID,
		GatewaySignature: m.GatewaySignature,
		InvoiceRef:       m.InvoiceRef,
		CreatedAt:        m.CreatedAt,
	}
}

func transactionEntityToModel(t *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:               t.ID,
		CompanyID:        t.CompanyID,
		FarmerID:         t.FarmerID,
		ListingID:        t.ListingID,
		Credits:          t.Credits,
		Amount:           t.Amount,
		GatewayOrderID:   t.GatewayOrderID,
		GatewayPaymentID: t.GatewayPaymentID,
		GatewaySignature: t.GatewaySignature,
		InvoiceRef:       t.InvoiceRef,
		CreatedAt:        t.CreatedAt,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateSettlement
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a settlement record
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Create(transactionEntityToModel(transaction))
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}
	return nil
}

// GetByPaymentID retrieves a settlement by gateway payment id
func (r *TransactionRepository) GetByPaymentID(ctx context.Context, paymentID string) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).First(&m, "gateway_payment_id = ?", paymentID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction by payment id", result.Error)
	}
	return transactionModelToEntity(&m), nil
}

// ListByCompany returns a company's purchases, newest first
func (r *TransactionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionModelToEntity(&models[i]))
	}
	return transactions, nil
}

// TotalsByCompany aggregates count, credits and amount for one company
func (r *TransactionRepository) TotalsByCompany(ctx context.Context, companyID uuid.UUID) (persistence.PurchaseTotals, error) {
	var row struct {
		Transactions int64
		Credits      *int64
		Amount       *decimal.Decimal
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("count(*) as transactions, sum(credits) as credits, sum(amount) as amount").
		Where("company_id = ?", companyID).
		Scan(&row)
	if result.Error != nil {
		return persistence.PurchaseTotals{}, r.handleDatabaseError("aggregating transactions", result.Error)
	}

	totals := persistence.PurchaseTotals{
		Transactions: row.Transactions,
		Amount:       decimal.Zero,
	}
	if row.Credits != nil {
		totals.Credits = *row.Credits
	}
	if row.Amount != nil {
		totals.Amount = *row.Amount
	}
	return totals, nil
}
