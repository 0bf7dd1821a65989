package dto

import (
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// CreateOrderRequest carries a company's purchase intent
type CreateOrderRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	Credits   int64  `json:"credits" binding:"required"`
}

// CreateOrderResponse echoes the gateway order back to the client
type CreateOrderResponse struct {
	OrderID   string `json:"orderId"`
	ListingID string `json:"listingId"`
	Credits   int64  `json:"credits"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// VerifyPaymentRequest carries the gateway callback triple plus the purchase
type VerifyPaymentRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	Credits   int64  `json:"credits" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// TransactionResponse is the API view of a settled purchase
type TransactionResponse struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"companyId"`
	FarmerID         string    `json:"farmerId"`
	ListingID        string    `json:"listingId"`
	Credits          int64     `json:"credits"`
	Amount           string    `json:"amount"`
	GatewayOrderID   string    `json:"gatewayOrderId"`
	GatewayPaymentID string    `json:"gatewayPaymentId"`
	InvoiceRef       string    `json:"invoiceRef"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewCreateOrderResponse maps a usecase order result to its API view
func NewCreateOrderResponse(r *usecase.CreateOrderResult) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:   r.OrderID,
		ListingID: r.ListingID.String(),
		Credits:   r.Credits,
		Amount:    r.Amount.StringFixed(2),
		Currency:  r.Currency,
	}
}

// NewTransactionResponse maps a transaction entity to its API view
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID.String(),
		CompanyID:        t.CompanyID.String(),
		FarmerID:         t.FarmerID.String(),
		ListingID:        t.ListingID.String(),
		Credits:          t.Credits,
		Amount:           t.Amount.StringFixed(2),
		GatewayOrderID:   t.GatewayOrderID,
		GatewayPaymentID: t.GatewayPaymentID,
		InvoiceRef:       t.InvoiceRef,
		CreatedAt:        t.CreatedAt,
	}
}

// NewTransactionResponses maps a slice of transactions
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
