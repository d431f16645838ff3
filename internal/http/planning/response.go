package planning

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/planning"
)

type entryResponse struct {
	ID            uuid.UUID       `json:"id"`
	ParentID      *uuid.UUID      `json:"parent_id,omitempty"`
	UserID        uuid.UUID       `json:"user_id"`
	Description   string          `json:"description"`
	Amount        int64           `json:"amount"`
	Category      string          `json:"category"`
	DueDate       time.Time       `json:"due_date"`
	Installment   int             `json:"installment"`
	Installments  int             `json:"installments"`
	Status        planning.Status `json:"status"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
	IsRecurring   bool            `json:"is_recurring"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(e *planning.Entry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		ParentID:      e.ParentID,
		UserID:        e.UserID,
		Description:   e.Description,
		Amount:        e.Amount,
		Category:      e.Category,
		DueDate:       e.DueDate,
		Installment:   e.Installment,
		Installments:  e.Installments,
		Status:        e.Status,
		TransactionID: e.TransactionID,
		IsRecurring:   e.IsRecurring,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toResponseList(entries []*planning.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
