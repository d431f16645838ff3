package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	CardID       *uuid.UUID       `json:"card_id,omitempty"`
	Amount       int64            `json:"amount"`
	Type         transaction.Type `json:"type"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	DueDate      time.Time        `json:"due_date"`
	Installment  int              `json:"installment"`
	Installments int              `json:"installments"`
	IsRecurring  bool             `json:"is_recurring"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		UserID:       tx.UserID,
		CardID:       tx.CardID,
		Amount:       tx.Amount,
		Type:         tx.Type,
		Description:  tx.Description,
		Category:     tx.Category,
		DueDate:      tx.DueDate,
		Installment:  tx.Installment,
		Installments: tx.Installments,
		IsRecurring:  tx.IsRecurring,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type summaryResponse struct {
	TotalIncome  int64            `json:"total_income"`
	TotalExpense int64            `json:"total_expense"`
	Balance      int64            `json:"balance"`
	ByCategory   map[string]int64 `json:"by_category"`
}

func toSummaryResponse(s transaction.Summary) summaryResponse {
	return summaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
		ByCategory:   s.ByCategory,
	}
}
