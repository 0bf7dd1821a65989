package farmland

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// MaxFilesPerKind caps documents and images per submission.
const MaxFilesPerKind = 5

// Submit uploads the parcel's documents and images to the object store and
// persists the parcel with pending verification status. Uploads block until
// the store acknowledges each file.
func (s *Service) Submit(ctx context.Context, input usecase.SubmitFarmlandInput) (*entity.Farmland, error) {
	if len(input.Documents) > MaxFilesPerKind {
		return nil, errs.NewValidationError().Add("documents", "at most 5 documents per submission")
	}
	if len(input.Images) > MaxFilesPerKind {
		return nil, errs.NewValidationError().Add("images", "at most 5 images per submission")
	}

	parcel, err := entity.NewFarmland(input.OwnerID, input.Name, input.Location, input.Area, s.timeProvider)
	if err != nil {
		return nil, err
	}

	parcel.DocumentURLs, err = s.uploadAll(ctx, documentsFolder, input.Documents)
	if err != nil {
		return nil, err
	}
	parcel.ImageURLs, err = s.uploadAll(ctx, imagesFolder, input.Images)
	if err != nil {
		return nil, err
	}

	if err := s.farmlands.Create(ctx, parcel); err != nil {
		s.logger.Error("Failed to persist farmland", map[string]any{
			"owner_id": input.OwnerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Farmland submitted", map[string]any{
		"farmland_id": parcel.ID,
		"owner_id":    parcel.OwnerID,
		"documents":   len(parcel.DocumentURLs),
		"images":      len(parcel.ImageURLs),
	})
	return parcel, nil
}

func (s *Service) uploadAll(ctx context.Context, folder string, files []gateway.FileUpload) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.storage.Upload(ctx, folder, file)
		if err != nil {
			s.logger.Error("Object store upload failed", map[string]any{
				"file":  file.Name,
				"error": err.Error(),
			})
			return nil, errs.ErrInternalServer
		}
		urls = append(urls, url)
	}
	return urls, nil
}
