package payment

import (
	"context"
	"fmt"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// CreateOrder prices the requested credits against the listing and registers
// an order with the payment gateway. Nothing is persisted locally; the
// purchase only becomes a Transaction after signature verification.
func (s *Service) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
	l, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if err := l.CanSell(input.Credits); err != nil {
		return nil, err
	}

	amount := l.PriceFor(input.Credits)
	receipt := fmt.Sprintf("lst-%s", input.ListingID.String()[:8])

	order, err := s.gateway.CreateOrder(ctx, amount, Currency, receipt)
	if err != nil {
		s.logger.Error("Gateway order creation failed", map[string]any{
			"listing_id": input.ListingID,
			"amount":     amount.String(),
			"error":      err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("Payment order created", map[string]any{
		"order_id":   order.ID,
		"listing_id": input.ListingID,
		"company_id": input.CompanyID,
		"credits":    input.Credits,
		"amount":     amount.String(),
	})

	return &usecase.CreateOrderResult{
		OrderID:   order.ID,
		ListingID: input.ListingID,
		Credits:   input.Credits,
		Amount:    amount,
		Currency:  order.Currency,
	}, nil
}
