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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingRepository implements persistence.ListingRepository using GORM
type ListingRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewListingRepository creates a new ListingRepository instance
func NewListingRepository(db *gorm.DB, logger coreport.Logger) *ListingRepository {
	return &ListingRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func listingModelToEntity(m *model.Listing) *entity.Listing {
	return &entity.Listing{
		ID:               m.ID,
		FarmerID:         m.FarmerID,
		FarmlandID:       m.FarmlandID,
		TotalCredits:     m.TotalCredits,
		RemainingCredits: m.RemainingCredits,
		PricePerCredit:   m.PricePerCredit,
		TotalValue:       m.TotalValue,
		Status:           entity.ListingStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func listingEntityToModel(l *entity.Listing) *model.Listing {
	return &model.Listing{
		ID:               l.ID,
		FarmerID:         l.FarmerID,
		FarmlandID:       l.FarmlandID,
		TotalCredits:     l.TotalCredits,
		RemainingCredits: l.RemainingCredits,
		PricePerCredit:   l.PricePerCredit,
		TotalValue:       l.TotalValue,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *ListingRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrListingNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	if r.errorClassifier.IsLockError(err) {
		return errs.ErrListingUnavailable
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new listing
func (r *ListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	result := r.db.WithContext(ctx).Create(listingEntityToModel(listing))
	if result.Error != nil {
		return r.handleDatabaseError("creating listing", result.Error)
	}
	return nil
}

// GetByID retrieves a listing by id
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var m model.Listing
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting listing", result.Error)
	}
	return listingModelToEntity(&m), nil
}

// GetByIDForUpdate retrieves a listing under a FOR UPDATE row lock so that
// concurrent settlements of the same listing serialize on the row.
func (r *ListingRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var m model.Listing
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking listing", result.Error)
	}
	return listingModelToEntity(&m), nil
}

// List returns listings matching the filter, newest first
func (r *ListingRepository) List(ctx context.Context, filter persistence.ListingFilter) ([]*entity.Listing, error) {
	query := r.db.WithContext(ctx).Model(&model.Listing{}).Order("created_at DESC")

	if filter.FarmerID != uuid.Nil {
		query = query.Where("farmer_id = ?", filter.FarmerID)
	}
	if filter.FarmlandID != uuid.Nil {
		query = query.Where("farmland_id = ?", filter.FarmlandID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.MaxPrice.IsPositive() {
		query = query.Where("price_per_credit <= ?", filter.MaxPrice)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []model.Listing
	if err := query.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing listings", err)
	}

	listings := make([]*entity.Listing, 0, len(models))
	for i := range models {
		listings = append(listings, listingModelToEntity(&models[i]))
	}
	return listings, nil
}

// Update persists listing mutations
func (r *ListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	result := r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"total_credits":     listing.TotalCredits,
			"remaining_credits": listing.RemainingCredits,
			"price_per_credit":  listing.PricePerCredit,
			"total_value":       listing.TotalValue,
			"status":            string(listing.Status),
			"updated_at":        listing.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating listing", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrListingNotFound
	}
	return nil
}

// Delete removes a listing
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Listing{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting listing", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrListingNotFound
	}
	return nil
}

// SumRemainingCredits totals the remaining credits on a farmer's listings
func (r *ListingRepository) SumRemainingCredits(ctx context.Context, farmerID uuid.UUID) (int64, error) {
	var sum *int64
	result := r.db.WithContext(ctx).Model(&model.Listing{}).
		Select("SUM(remaining_credits)").
		Where("farmer_id = ? AND status = ?", farmerID, string(entity.ListingActive)).
		Scan(&sum)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing remaining credits", result.Error)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
