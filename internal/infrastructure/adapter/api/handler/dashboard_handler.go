package handler

import (
	"net/http"

	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the per-role aggregate views
type DashboardHandler struct {
	dashboardService usecase.DashboardUseCase
	logger           coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboardService usecase.DashboardUseCase, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Farmer handles GET /dashboard/farmer
func (h *DashboardHandler) Farmer(c *gin.Context) {
	farmerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	board, err := h.dashboardService.Farmer(c.Request.Context(), farmerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFarmerDashboardResponse(board))
}

// Company handles GET /dashboard/company
func (h *DashboardHandler) Company(c *gin.Context) {
	companyID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	board, err := h.dashboardService.Company(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCompanyDashboardResponse(board))
}

// Admin handles GET /dashboard/admin
func (h *DashboardHandler) Admin(c *gin.Context) {
	board, err := h.dashboardService.Admin(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminDashboardResponse(board))
}
