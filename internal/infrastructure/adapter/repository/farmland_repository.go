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
)

// FarmlandRepository implements persistence.FarmlandRepository using GORM
type FarmlandRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewFarmlandRepository creates a new FarmlandRepository instance
func NewFarmlandRepository(db *gorm.DB, logger coreport.Logger) *FarmlandRepository {
	return &FarmlandRepository{db: db, logger: logger}
}

func farmlandModelToEntity(m *model.Farmland) *entity.Farmland {
	return &entity.Farmland{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Location:        m.Location,
		AreaHectares:    m.AreaHectares,
		DocumentURLs:    jsonToURLs(m.DocumentURLs),
		ImageURLs:       jsonToURLs(m.ImageURLs),
		Status:          entity.VerificationStatus(m.Status),
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func farmlandEntityToModel(f *entity.Farmland) *model.Farmland {
	return &model.Farmland{
		ID:              f.ID,
		OwnerID:         f.OwnerID,
		Name:            f.Name,
		Location:        f.Location,
		AreaHectares:    f.AreaHectares,
		DocumentURLs:    urlsToJSON(f.DocumentURLs),
		ImageURLs:       urlsToJSON(f.ImageURLs),
		Status:          string(f.Status),
		RejectionReason: f.RejectionReason,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (r *FarmlandRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrFarmlandNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new parcel
func (r *FarmlandRepository) Create(ctx context.Context, farmland *entity.Farmland) error {
	result := r.db.WithContext(ctx).Create(farmlandEntityToModel(farmland))
	if result.Error != nil {
		return r.handleDatabaseError("creating farmland", result.Error)
	}
	return nil
}

// GetByID retrieves a parcel by id
func (r *FarmlandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmland, error) {
	var m model.Farmland
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting farmland", result.Error)
	}
	return farmlandModelToEntity(&m), nil
}

// List returns parcels matching the filter, newest first
func (r *FarmlandRepository) List(ctx context.Context, filter persistence.FarmlandFilter) ([]*entity.Farmland, error) {
	query := r.db.WithContext(ctx).Model(&model.Farmland{}).Order("created_at DESC")

	if filter.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}

	var models []model.Farmland
	if err := query.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing farmland", err)
	}

	parcels := make([]*entity.Farmland, 0, len(models))
	for i := range models {
		parcels = append(parcels, farmlandModelToEntity(&models[i]))
	}
	return parcels, nil
}

// Update persists status and metadata changes
func (r *FarmlandRepository) Update(ctx context.Context, farmland *entity.Farmland) error {
	result := r.db.WithContext(ctx).Model(&model.Farmland{}).
		Where("id = ?", farmland.ID).
		Updates(map[string]any{
			"name":             farmland.Name,
			"location":         farmland.Location,
			"area_hectares":    farmland.AreaHectares,
			"document_urls":    urlsToJSON(farmland.DocumentURLs),
			"image_urls":       urlsToJSON(farmland.ImageURLs),
			"status":           string(farmland.Status),
			"rejection_reason": farmland.RejectionReason,
			"updated_at":       farmland.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating farmland", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrFarmlandNotFound
	}
	return nil
}

// CountByStatus returns the number of parcels in the given status
func (r *FarmlandRepository) CountByStatus(ctx context.Context, status entity.VerificationStatus) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Farmland{}).
		Where("status = ?", string(status)).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting farmland", result.Error)
	}
	return count, nil
}

// CountByOwnerAndStatus returns one owner's parcel count in the given status
func (r *FarmlandRepository) CountByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.VerificationStatus) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Farmland{}).
		Where("owner_id = ? AND status = ?", ownerID, string(status)).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting farmland by owner", result.Error)
	}
	return count, nil
}
