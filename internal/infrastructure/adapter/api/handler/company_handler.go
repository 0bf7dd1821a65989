package handler

import (
	"net/http"

	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company KYC uploads and purchase history
type CompanyHandler struct {
	companyService usecase.CompanyUseCase
	logger         coreport.Logger
}

// NewCompanyHandler creates a new company handler instance
func NewCompanyHandler(companyService usecase.CompanyUseCase, logger coreport.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// UploadDocuments handles POST /company/documents/upload
func (h *CompanyHandler) UploadDocuments(c *gin.Context) {
	companyID, ok := middleware.SessionUserID(c)
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
	documents, closeDocs, err := intakeFiles(form.File["documents"], gateway.FileKindDocument, v)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer closeDocs()

	if v.HasErrors() {
		respondError(c, h.logger, v)
		return
	}

	user, err := h.companyService.UploadDocuments(c.Request.Context(), companyID, documents)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Transactions handles GET /company/transactions
func (h *CompanyHandler) Transactions(c *gin.Context) {
	companyID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	transactions, err := h.companyService.Transactions(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(transactions))
}
