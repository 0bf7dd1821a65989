package handler

import (
	"net/http"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles admin account creation and user moderation
type AdminHandler struct {
	authService usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(authService usecase.AuthUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		logger:      logger,
	}
}

// CreateAdmin handles POST /admin/create
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.CreateAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// SetUserStatus handles PUT /admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("id", "user id must be a valid uuid"))
		return
	}

	var req dto.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.SetUserStatus(c.Request.Context(), userID, entity.VerificationStatus(req.Status), req.Blocked)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
