package handler

import (
	"net/http"

	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles order creation and payment verification
type PaymentHandler struct {
	paymentService usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreateOrder handles POST /payment/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	companyID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("listingId", "listing id must be a valid uuid"))
		return
	}

	result, err := h.paymentService.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		CompanyID: companyID,
		ListingID: listingID,
		Credits:   req.Credits,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateOrderResponse(result))
}

// VerifyPayment handles POST /payment/verify-payment
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	companyID, ok := middleware.SessionUserID(c)
	if !ok {
		respondMissingSession(c)
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		respondError(c, h.logger, domainerr.NewValidationError().Add("listingId", "listing id must be a valid uuid"))
		return
	}

	transaction, err := h.paymentService.VerifyAndSettle(c.Request.Context(), usecase.VerifyPaymentInput{
		CompanyID: companyID,
		ListingID: listingID,
		Credits:   req.Credits,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}
