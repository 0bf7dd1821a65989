package dto

import (
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/usecase"
)

// WalletEntryResponse is one line of the farmer's ledger
type WalletEntryResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Amount        string    `json:"amount"`
	Direction     string    `json:"direction"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// WalletResponse pairs the running balance with the ledger
type WalletResponse struct {
	Balance string                `json:"balance"`
	Entries []WalletEntryResponse `json:"entries"`
}

// NewWalletResponse maps a wallet statement to its API view
func NewWalletResponse(s *usecase.WalletStatement) WalletResponse {
	entries := make([]WalletEntryResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, WalletEntryResponse{
			ID:            e.ID.String(),
			TransactionID: e.TransactionID.String(),
			Amount:        e.Amount.StringFixed(2),
			Direction:     string(e.Direction),
			Description:   e.Description,
			CreatedAt:     e.CreatedAt,
		})
	}
	return WalletResponse{
		Balance: s.Balance.StringFixed(2),
		Entries: entries,
	}
}
