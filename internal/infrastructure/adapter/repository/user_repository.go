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

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		GoogleID:      m.GoogleID,
		Role:          entity.Role(m.Role),
		Status:        entity.VerificationStatus(m.Status),
		Blocked:       m.Blocked,
		WalletBalance: m.WalletBalance,
		DocumentURLs:  jsonToURLs(m.DocumentURLs),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func userEntityToModel(u *entity.User) *model.User {
	return &model.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		GoogleID:      u.GoogleID,
		Role:          u.Role.String(),
		Status:        string(u.Status),
		Blocked:       u.Blocked,
		WalletBalance: u.WalletBalance,
		DocumentURLs:  urlsToJSON(u.DocumentURLs),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Create(userEntityToModel(user))
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	r.logger.Info("User persisted", map[string]any{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error)
	}
	return userModelToEntity(&m), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "email = ?", email)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error)
	}
	return userModelToEntity(&m), nil
}

// GetByGoogleID retrieves a user by external subject id
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "google_id = ?", googleID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by google id", result.Error)
	}
	return userModelToEntity(&m), nil
}

// Update persists profile, status, blocked-flag and balance changes
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":           user.Name,
			"password_hash":  user.PasswordHash,
			"status":         string(user.Status),
			"blocked":        user.Blocked,
			"wallet_balance": user.WalletBalance,
			"document_urls":  urlsToJSON(user.DocumentURLs),
			"updated_at":     user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// CreditWallet atomically adds amount to the stored wallet balance
func (r *UserRepository) CreditWallet(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))

	if result.Error != nil {
		return r.handleDatabaseError("crediting wallet", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// CountByRoleAndStatus returns user counts bucketed by role and status
func (r *UserRepository) CountByRoleAndStatus(ctx context.Context) ([]persistence.RoleStatusCount, error) {
	var rows []struct {
		Role   string
		Status string
		Count  int64
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Select("role, status, count(*) as count").
		Group("role, status").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("counting users", result.Error)
	}

	counts := make([]persistence.RoleStatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, persistence.RoleStatusCount{
			Role:   entity.Role(row.Role),
			Status: entity.VerificationStatus(row.Status),
			Count:  row.Count,
		})
	}
	return counts, nil
}

// CountPendingCompanyDocs counts company accounts awaiting document review
func (r *UserRepository) CountPendingCompanyDocs(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ? AND status = ? AND document_urls IS NOT NULL AND document_urls::text <> '[]'",
			entity.RoleCompany.String(), string(entity.StatusPendingVerification)).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting pending company docs", result.Error)
	}
	return count, nil
}
