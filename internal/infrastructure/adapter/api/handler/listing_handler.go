package handler

import (
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingHandler handles the farmer listing lifecycle and public browse
type ListingHandler struct {
	listingService usecase.ListingUseCase
	logger         coreport.Logger
}

// NewListingHandler creates a new listing handler instance
func NewListingHandler(listingService usecase.ListingUseCase, logger coreport.Logger) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		logger:         logger,
	}
}

// Create handles POST /farmer-marketplace-listing
func (h *ListingHandler) Create(c *gin.Context) {
	farmerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	v := domainerr.NewValidationError()
	farmlandID, err := uuid.Parse(req.FarmlandID)
	if err != nil {
		v.Add("farmlandId", "farmland id must be a valid uuid")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(req.PricePerCredit))
	if err != nil {
		v.Add("pricePerCredit", "price must be a decimal number")
	}
	if v.HasErrors() {
		respondError(c, h.logger, v)
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), usecase.CreateListingInput{
		FarmerID:       farmerID,
		FarmlandID:     farmlandID,
		TotalCredits:   req.TotalCredits,
		PricePerCredit: price,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewListingResponse(listing))
}

// ListOwned handles GET /farmer-marketplace-listing/my
func (h *ListingHandler) ListOwned(c *gin.Context) {
	farmerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	listings, err := h.listingService.ListOwned(c.Request.Context(), farmerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListingResponses(listings))
}

// Get handles GET /farmer-marketplace-listing/:id
func (h *ListingHandler) Get(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("id", "listing id must be a valid uuid"))
		return
	}

	listing, err := h.listingService.Get(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListingResponse(listing))
}

// Update handles PUT /farmer-marketplace-listing/:id
func (h *ListingHandler) Update(c *gin.Context) {
	farmerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("id", "listing id must be a valid uuid"))
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.PricePerCredit))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("pricePerCredit", "price must be a decimal number"))
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), usecase.UpdateListingInput{
		FarmerID:       farmerID,
		ListingID:      listingID,
		TotalCredits:   req.TotalCredits,
		PricePerCredit: price,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListingResponse(listing))
}

// Delete handles DELETE /farmer-marketplace-listing/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	farmerID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("id", "listing id must be a valid uuid"))
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), farmerID, listingID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Browse handles GET /marketplace/listings, the public marketplace view
func (h *ListingHandler) Browse(c *gin.Context) {
	filter := usecase.BrowseFilter{}
	v := domainerr.NewValidationError()

	if raw := c.Query("farmlandId"); raw != "" {
		farmlandID, err := uuid.Parse(raw)
		if err != nil {
			v.Add("farmlandId", "farmland id must be a valid uuid")
		} else {
			filter.FarmlandID = farmlandID
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			v.Add("maxPrice", "max price must be a decimal number")
		} else {
			filter.MaxPrice = maxPrice
		}
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			v.Add("limit", "limit must be an integer")
		} else {
			filter.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			v.Add("offset", "offset must be an integer")
		} else {
			filter.Offset = offset
		}
	}
	if v.HasErrors() {
		respondError(c, h.logger, v)
		return
	}

	listings, err := h.listingService.Browse(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListingResponses(listings))
}
