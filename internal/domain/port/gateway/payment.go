package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// Order is the gateway's view of a created payment order.
type Order struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
	Receipt  string
}

// PaymentGateway creates orders with the external payment provider. Signature
// verification is domain logic and deliberately not part of this port.
type PaymentGateway interface {
	// CreateOrder registers an order for the given amount and returns the
	// gateway order id the client completes the payment against.
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*Order, error)
}
