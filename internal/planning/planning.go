package planning

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/dateutil"
)

// Status is the lifecycle state of a planning entry. Only pending and
// paid are ever persisted; overdue is a read-time projection, since
// "today" moves without user action.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Entry is a scheduled expense (bill), possibly one installment of a
// larger group. Installments of a group share description, category and
// count; all but the first reference the first entry through ParentID.
type Entry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ParentID      *uuid.UUID // nil on the group head
	Description   string
	Amount        int64 // per-installment amount in cents
	Category      string
	DueDate       time.Time
	Installment   int // 1-based position within the group
	Installments  int
	Status        Status
	TransactionID *uuid.UUID // ledger transaction created on payment
	IsRecurring   bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Reconcile returns the entry's effective status as of today. Paid is
// sticky regardless of dates; otherwise an entry whose due date has
// passed is overdue. Day granularity, never persisted.
func Reconcile(e *Entry, today time.Time) Status {
	if e.Status == StatusPaid {
		return StatusPaid
	}

	if dateutil.BeforeDay(e.DueDate, today) {
		return StatusOverdue
	}

	return StatusPending
}

// expandInstallments splits a total amount into n sequentially numbered
// monthly entries. Integer division leaves up to n-1 cents over; the
// remainder goes on the first installment so the group sums back to the
// entered total exactly. The first entry is the group head: its ID is
// generated up front so siblings can reference it before insertion.
func expandInstallments(userID uuid.UUID, p CreateParams, n int) []*Entry {
	per := p.Amount / int64(n)
	rem := p.Amount % int64(n)

	headID := uuid.New()

	entries := make([]*Entry, n)
	for i := 0; i < n; i++ {
		e := &Entry{
			ID:           uuid.New(),
			UserID:       userID,
			Description:  p.Description,
			Amount:       per,
			Category:     p.Category,
			DueDate:      dateutil.AddMonths(p.DueDate, i),
			Installment:  i + 1,
			Installments: n,
			Status:       StatusPending,
			IsRecurring:  p.IsRecurring,
		}

		if i == 0 {
			e.ID = headID
			e.Amount += rem
		} else {
			parent := headID
			e.ParentID = &parent
		}

		entries[i] = e
	}

	return entries
}
