package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
)

// imageTransformation bounds uploaded images so oversized photos do not blow
// up storage or page loads.
const imageTransformation = "c_limit,w_1600,h_1600"

// CloudinaryStorage uploads files to Cloudinary and returns their secure URLs
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
	logger coreport.Logger
}

// NewCloudinaryStorage creates a storage adapter from a cloudinary:// URL
func NewCloudinaryStorage(cloudinaryURL string, logger coreport.Logger) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	return &CloudinaryStorage{client: client, logger: logger}, nil
}

// Upload stores the file under the given folder and returns its durable URL
func (s *CloudinaryStorage) Upload(ctx context.Context, folder string, file gateway.FileUpload) (string, error) {
	params := uploader.UploadParams{Folder: folder}
	if file.Kind == gateway.FileKindImage {
		params.Transformation = imageTransformation
	}

	resp, err := s.client.Upload.Upload(ctx, file.Reader, params)
	if err != nil {
		s.logger.Error("Failed to upload file", map[string]any{
			"error":  err.Error(),
			"folder": folder,
			"name":   file.Name,
		})
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("object store returned no URL for %q", file.Name)
	}

	s.logger.Debug("Uploaded file", map[string]any{
		"folder": folder,
		"name":   file.Name,
		"url":    resp.SecureURL,
	})

	return resp.SecureURL, nil
}
