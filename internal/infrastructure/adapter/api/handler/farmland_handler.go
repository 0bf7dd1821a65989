package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxFilesPerKind bounds how many documents and images one submission carries
const MaxFilesPerKind = 5

// maxUploadBytes caps the whole multipart body
const maxUploadBytes = 32 << 20

// FarmlandHandler handles parcel submission, queries and admin review
type FarmlandHandler struct {
	farmlandService usecase.FarmlandUseCase
	logger          coreport.Logger
}

// NewFarmlandHandler creates a new farmland handler instance
func NewFarmlandHandler(farmlandService usecase.FarmlandUseCase, logger coreport.Logger) *FarmlandHandler {
	return &FarmlandHandler{
		farmlandService: farmlandService,
		logger:          logger,
	}
}

// Create handles POST /farmland/create with a multipart form
func (h *FarmlandHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		respondBindError(c, err)
		return
	}

	v := domainerr.NewValidationError()
	name := strings.TrimSpace(c.PostForm("name"))
	location := strings.TrimSpace(c.PostForm("location"))
	area, areaErr := decimal.NewFromString(strings.TrimSpace(c.PostForm("area")))
	if areaErr != nil {
		v.Add("area", "area must be a decimal number")
	}

	documents, closeDocs, err := intakeFiles(form.File["documents"], gateway.FileKindDocument, v)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer closeDocs()

	images, closeImages, err := intakeFiles(form.File["images"], gateway.FileKindImage, v)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer closeImages()

	if v.HasErrors() {
		respondError(c, h.logger, v)
		return
	}

	parcel, err := h.farmlandService.Submit(c.Request.Context(), usecase.SubmitFarmlandInput{
		OwnerID:   ownerID,
		Name:      name,
		Location:  location,
		Area:      area,
		Documents: documents,
		Images:    images,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewFarmlandResponse(parcel))
}

// ListOwned handles GET /farmland and GET /farmland/my
func (h *FarmlandHandler) ListOwned(c *gin.Context) {
	ownerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	parcels, err := h.farmlandService.ListOwned(c.Request.Context(), ownerID, c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFarmlandResponses(parcels))
}

// Get handles GET /farmland/:id with an ownership check
func (h *FarmlandHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	farmlandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("id", "farmland id must be a valid uuid"))
		return
	}

	parcel, err := h.farmlandService.GetOwned(c.Request.Context(), ownerID, farmlandID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFarmlandResponse(parcel))
}

// Review handles PUT /admin/farmland/:id/review
func (h *FarmlandHandler) Review(c *gin.Context) {
	farmlandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("id", "farmland id must be a valid uuid"))
		return
	}

	var req dto.ReviewFarmlandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	parcel, err := h.farmlandService.Review(c.Request.Context(), usecase.ReviewFarmlandInput{
		FarmlandID: farmlandID,
		Approve:    req.Approve,
		Reason:     req.Reason,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFarmlandResponse(parcel))
}

// ListPending handles GET /admin/farmland/pending
func (h *FarmlandHandler) ListPending(c *gin.Context) {
	parcels, err := h.farmlandService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFarmlandResponses(parcels))
}

// intakeFiles opens multipart file headers as upload descriptors after
// checking count and content type. The returned closer releases every opened
// file and must run once the uploads finish.
func intakeFiles(headers []*multipart.FileHeader, kind gateway.FileKind, v *domainerr.ValidationError) ([]gateway.FileUpload, func(), error) {
	field := string(kind) + "s"
	if len(headers) > MaxFilesPerKind {
		v.Add(field, "at most 5 files are accepted")
		return nil, func() {}, nil
	}

	uploads := make([]gateway.FileUpload, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range closers {
			f.Close()
		}
	}

	for _, header := range headers {
		contentType := header.Header.Get("Content-Type")
		if !allowedContentType(kind, contentType) {
			v.Add(field, "unsupported content type "+contentType)
			continue
		}

		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, file)
		uploads = append(uploads, gateway.FileUpload{
			Name:        header.Filename,
			ContentType: contentType,
			Kind:        kind,
			Reader:      file,
		})
	}

	return uploads, closeAll, nil
}

// allowedContentType reports whether the upload type is accepted for the
// kind: images must be image/*, documents also take PDFs.
func allowedContentType(kind gateway.FileKind, contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	return kind == gateway.FileKindDocument && contentType == "application/pdf"
}
