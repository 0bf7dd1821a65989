package farmland

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	gatewaymocks "github.com/agrikarbon/carbon-marketplace/mocks/port/gateway"
	persistencemocks "github.com/agrikarbon/carbon-marketplace/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type farmlandFixture struct {
	farmlands *persistencemocks.MockFarmlandRepository
	storage   *gatewaymocks.MockObjectStorage
	service   usecase.FarmlandUseCase
}

func newFarmlandFixture() *farmlandFixture {
	f := &farmlandFixture{
		farmlands: &persistencemocks.MockFarmlandRepository{},
		storage:   &gatewaymocks.MockObjectStorage{},
	}
	clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	f.service = NewService(f.farmlands, f.storage, clock, &coremocks.NopLogger{})
	return f
}

func upload(name string, kind gateway.FileKind) gateway.FileUpload {
	return gateway.FileUpload{
		Name:        name,
		ContentType: "application/pdf",
		Kind:        kind,
		Reader:      strings.NewReader("content"),
	}
}

func TestSubmitFarmland(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("uploads files and persists a pending parcel", func(t *testing.T) {
		f := newFarmlandFixture()
		f.storage.On("Upload", mock.Anything, "farmland/documents", mock.Anything).Return("https://cdn/doc1.pdf", nil)
		f.storage.On("Upload", mock.Anything, "farmland/images", mock.Anything).Return("https://cdn/img1.jpg", nil)
		f.farmlands.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Farmland) bool {
			return p.Status == entity.StatusPendingVerification &&
				len(p.DocumentURLs) == 1 && len(p.ImageURLs) == 1
		})).Return(nil)

		parcel, err := f.service.Submit(ctx, usecase.SubmitFarmlandInput{
			OwnerID:   ownerID,
			Name:      "North Field",
			Location:  "Nashik",
			Area:      decimal.RequireFromString("4.5"),
			Documents: []gateway.FileUpload{upload("deed.pdf", gateway.FileKindDocument)},
			Images:    []gateway.FileUpload{upload("field.jpg", gateway.FileKindImage)},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"https://cdn/doc1.pdf"}, parcel.DocumentURLs)
		f.farmlands.AssertExpectations(t)
	})

	t.Run("caps files at five per kind", func(t *testing.T) {
		f := newFarmlandFixture()
		docs := make([]gateway.FileUpload, 6)
		for i := range docs {
			docs[i] = upload("deed.pdf", gateway.FileKindDocument)
		}

		_, err := f.service.Submit(ctx, usecase.SubmitFarmlandInput{
			OwnerID:   ownerID,
			Name:      "North Field",
			Location:  "Nashik",
			Area:      decimal.RequireFromString("4.5"),
			Documents: docs,
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
		f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("persists nothing when an upload fails", func(t *testing.T) {
		f := newFarmlandFixture()
		f.storage.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

		_, err := f.service.Submit(ctx, usecase.SubmitFarmlandInput{
			OwnerID:   ownerID,
			Name:      "North Field",
			Location:  "Nashik",
			Area:      decimal.RequireFromString("4.5"),
			Documents: []gateway.FileUpload{upload("deed.pdf", gateway.FileKindDocument)},
		})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
		f.farmlands.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReviewFarmland(t *testing.T) {
	ctx := context.Background()

	pendingParcel := func() *entity.Farmland {
		return &entity.Farmland{
			ID:      uuid.New(),
			OwnerID: uuid.New(),
			Status:  entity.StatusPendingVerification,
		}
	}

	t.Run("approval marks the parcel verified", func(t *testing.T) {
		f := newFarmlandFixture()
		parcel := pendingParcel()
		f.farmlands.On("GetByID", mock.Anything, parcel.ID).Return(parcel, nil)
		f.farmlands.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Farmland) bool {
			return p.Status == entity.StatusVerified && p.RejectionReason == ""
		})).Return(nil)

		reviewed, err := f.service.Review(ctx, usecase.ReviewFarmlandInput{
			FarmlandID: parcel.ID,
			Approve:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusVerified, reviewed.Status)
	})

	t.Run("rejection records the reason", func(t *testing.T) {
		f := newFarmlandFixture()
		parcel := pendingParcel()
		f.farmlands.On("GetByID", mock.Anything, parcel.ID).Return(parcel, nil)
		f.farmlands.On("Update", mock.Anything, mock.Anything).Return(nil)

		reviewed, err := f.service.Review(ctx, usecase.ReviewFarmlandInput{
			FarmlandID: parcel.ID,
			Approve:    false,
			Reason:     "document does not match the parcel",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, reviewed.Status)
		assert.Equal(t, "document does not match the parcel", reviewed.RejectionReason)
	})

	t.Run("rejection without a reason fails", func(t *testing.T) {
		f := newFarmlandFixture()
		parcel := pendingParcel()
		f.farmlands.On("GetByID", mock.Anything, parcel.ID).Return(parcel, nil)

		_, err := f.service.Review(ctx, usecase.ReviewFarmlandInput{
			FarmlandID: parcel.ID,
			Approve:    false,
			Reason:     "   ",
		})
		assert.ErrorIs(t, err, errs.ErrRejectionReasonRequired)
		f.farmlands.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
