package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// VerifyAndSettle checks the gateway signature and, only on success, settles
// the purchase. The signature check happens before anything touches the
// database: a mismatch persists nothing. Settlement itself is one
// transaction covering the Transaction record, the farmer's wallet entry,
// the listing depletion and the wallet balance update. The unique index on
// the gateway payment id makes a replayed callback settle at most once.
func (s *Service) VerifyAndSettle(ctx context.Context, input usecase.VerifyPaymentInput) (*entity.Transaction, error) {
	if !VerifySignature(input.OrderID, input.PaymentID, s.keySecret, input.Signature) {
		s.logger.Warn("Payment signature mismatch", map[string]any{
			"order_id":   input.OrderID,
			"payment_id": input.PaymentID,
			"company_id": input.CompanyID,
		})
		return nil, errs.ErrPaymentSignature
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	transaction, err := s.settle(txCtx, input)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Settlement rollback failed", map[string]any{
				"payment_id": input.PaymentID,
				"error":      rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Settlement commit failed", map[string]any{
			"payment_id": input.PaymentID,
			"error":      err.Error(),
		})
		return nil, errs.NewSettlementError(input.OrderID, input.PaymentID, input.ListingID.String(), err)
	}

	s.logger.Info("Payment settled", map[string]any{
		"transaction_id": transaction.ID,
		"payment_id":     input.PaymentID,
		"listing_id":     input.ListingID,
		"credits":        transaction.Credits,
		"amount":         transaction.Amount.String(),
	})
	return transaction, nil
}

// settle performs the four settlement writes with repositories bound to the
// transaction in txCtx.
func (s *Service) settle(txCtx context.Context, input usecase.VerifyPaymentInput) (*entity.Transaction, error) {
	listings := s.uow.GetListingRepository(txCtx)
	transactions := s.uow.GetTransactionRepository(txCtx)
	wallets := s.uow.GetWalletRepository(txCtx)
	users := s.uow.GetUserRepository(txCtx)

	// Replay guard: a payment id settles at most once.
	if _, err := transactions.GetByPaymentID(txCtx, input.PaymentID); err == nil {
		return nil, errs.ErrDuplicateSettlement
	} else if !errors.Is(err, errs.ErrTransactionNotFound) {
		return nil, err
	}

	l, err := listings.GetByIDForUpdate(txCtx, input.ListingID)
	if err != nil {
		return nil, err
	}

	amount := l.PriceFor(input.Credits)
	transaction, err := entity.NewTransaction(
		input.CompanyID, l.FarmerID, l.ID,
		input.Credits, amount,
		input.OrderID, input.PaymentID, input.Signature,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := l.Deplete(input.Credits, s.timeProvider); err != nil {
		return nil, err
	}

	if err := transactions.Create(txCtx, transaction); err != nil {
		return nil, fmt.Errorf("persisting transaction: %w", err)
	}
	if err := listings.Update(txCtx, l); err != nil {
		return nil, fmt.Errorf("depleting listing: %w", err)
	}

	entry, err := entity.NewWalletCredit(
		l.FarmerID, transaction.ID, amount,
		fmt.Sprintf("Sale of %d credits, invoice %s", input.Credits, transaction.InvoiceRef),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	if err := wallets.Create(txCtx, entry); err != nil {
		return nil, fmt.Errorf("persisting wallet entry: %w", err)
	}
	if err := users.CreditWallet(txCtx, l.FarmerID, amount); err != nil {
		return nil, fmt.Errorf("crediting wallet balance: %w", err)
	}

	return transaction, nil
}
