package payment

import (
	"context"
	"fmt"

	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

// RazorpayGateway creates payment orders through the Razorpay Orders API
type RazorpayGateway struct {
	client *razorpay.Client
	logger coreport.Logger
}

// NewRazorpayGateway creates a gateway client with the given API credentials
func NewRazorpayGateway(keyID, keySecret string, logger coreport.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		logger: logger,
	}
}

// CreateOrder registers an order with the gateway. Razorpay takes amounts in
// the currency's smallest unit, so the decimal amount is shifted two places.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*gateway.Order, error) {
	subunits := amount.Shift(2).Round(0).IntPart()

	data := map[string]interface{}{
		"amount":   subunits,
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		g.logger.Error("Failed to create payment order", map[string]any{
			"error":    err.Error(),
			"currency": currency,
			"receipt":  receipt,
		})
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	orderID, ok := resp["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("payment gateway returned no order id")
	}

	g.logger.Info("Created payment order", map[string]any{
		"order_id": orderID,
		"currency": currency,
		"receipt":  receipt,
	})

	return &gateway.Order{
		ID:       orderID,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}
