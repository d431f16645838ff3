package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type tells whether a transaction adds to or subtracts from the
// balance. Amounts are always stored positive; the type carries the
// sign.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is an actually-occurred income or expense record in the
// ledger, possibly one installment of a larger purchase.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CardID       *uuid.UUID
	Amount       int64 // cents, always positive
	Type         Type
	Description  string
	Category     string
	DueDate      time.Time
	Installment  int // 1-based position within the installment group
	Installments int
	IsRecurring  bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Summary is the roll-up of a transaction collection for dashboard
// views. It is recomputed from scratch on every call rather than
// maintained incrementally, so it cannot drift from the data.
type Summary struct {
	TotalIncome  int64
	TotalExpense int64
	Balance      int64
	ByCategory   map[string]int64
}

// Summarize folds a transaction collection into income/expense totals
// and per-category expense sums. The category set comes from the data
// itself.
func Summarize(txs []*Transaction) Summary {
	s := Summary{ByCategory: make(map[string]int64)}

	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			s.TotalIncome += tx.Amount
		case TypeExpense:
			s.TotalExpense += tx.Amount
			s.ByCategory[tx.Category] += tx.Amount
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpense

	return s
}
