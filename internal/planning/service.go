package planning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/session"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

// maxInstallments bounds how far a single bill may be split.
const maxInstallments = 120

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=planning
type Repository interface {
	CreateEntries(ctx context.Context, entries []*Entry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
	UpdateEntry(ctx context.Context, e *Entry) error
	SetPayment(ctx context.Context, id uuid.UUID, status Status, transactionID *uuid.UUID) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	FindByTransaction(ctx context.Context, transactionID uuid.UUID) (*Entry, error)
}

// Ledger is the slice of the transaction service the payment linker
// needs: creating the settlement row, deleting it on reversal, and
// checking it still exists.
type Ledger interface {
	Record(ctx context.Context, sess session.Session, params transaction.RecordParams) (*transaction.Transaction, error)
	Delete(ctx context.Context, sess session.Session, id uuid.UUID) error
}

type Service struct {
	repo   Repository
	ledger Ledger
	now    func() time.Time
}

func NewService(repo Repository, ledger Ledger) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		now:    time.Now,
	}
}

// SetClock overrides the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

type ListFilter struct {
	UserIDs  []uuid.UUID
	Status   *Status // effective status, applied after reconciliation
	Category *string
	GroupID  *uuid.UUID // head entry ID; matches the head and its siblings
}

// CreateParams describes a user-entered bill. Amount is the full
// requested total; when Installments > 1 it is divided across the
// generated group.
type CreateParams struct {
	Description  string
	Amount       int64
	Category     string
	DueDate      time.Time
	Installments int
	IsRecurring  bool
}

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalid)
	}

	if p.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalid)
	}

	if p.Installments < 0 || p.Installments > maxInstallments {
		return fmt.Errorf("%w: installments must be between 1 and %d", ErrInvalid, maxInstallments)
	}

	return nil
}

// Create expands the request into its installment group and stores all
// entries in one batch. Installments <= 1 produces a single entry.
func (s *Service) Create(ctx context.Context, sess session.Session, params CreateParams) ([]*Entry, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	n := params.Installments
	if n < 1 {
		n = 1
	}

	entries := expandInstallments(sess.UserID, params, n)

	if err := s.repo.CreateEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("creating planning entries: %w", err)
	}

	return entries, nil
}

// List returns the session's visible entries with their effective
// status already reconciled against today. A status filter is applied
// to the reconciled status, so filtering by overdue works even though
// overdue is never stored.
func (s *Service) List(ctx context.Context, sess session.Session, filter ListFilter) ([]*Entry, error) {
	statusFilter := filter.Status
	filter.Status = nil
	filter.UserIDs = sess.VisibleUserIDs

	entries, err := s.repo.ListEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := entries[:0]

	for _, e := range entries {
		if e.Status == StatusPaid && e.TransactionID == nil {
			// Best-effort read: surface the bad record, keep the list.
			slog.Error("planning entry paid without linked transaction", "id", e.ID, "error", ErrInconsistent)
		}

		e.Status = Reconcile(e, today)

		if statusFilter != nil && e.Status != *statusFilter {
			continue
		}

		result = append(result, e)
	}

	return result, nil
}

func (s *Service) Get(ctx context.Context, sess session.Session, id uuid.UUID) (*Entry, error) {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(e.UserID) {
		return nil, ErrNotFound
	}

	e.Status = Reconcile(e, s.now())

	return e, nil
}

// Update rewrites the editable fields of an entry. Ownership, status
// and the payment link always survive an update; those only change
// through MarkAsPaid and Reverse.
func (s *Service) Update(ctx context.Context, sess session.Session, e *Entry) (*Entry, error) {
	existing, err := s.Get(ctx, sess, e.ID)
	if err != nil {
		return nil, err
	}

	if e.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	e.UserID = existing.UserID
	e.ParentID = existing.ParentID
	e.Installment = existing.Installment
	e.Installments = existing.Installments
	e.TransactionID = existing.TransactionID

	if existing.Status == StatusPaid {
		e.Status = StatusPaid
	} else {
		e.Status = StatusPending
	}

	if err := s.repo.UpdateEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("updating planning entry: %w", err)
	}

	e.Status = Reconcile(e, s.now())

	return e, nil
}

// Delete removes a single installment. Siblings of its group stay, and
// a linked ledger transaction is deliberately left in the ledger.
func (s *Service) Delete(ctx context.Context, sess session.Session, id uuid.UUID) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return err
	}

	return s.repo.DeleteEntry(ctx, id)
}

// MarkAsPaid settles an entry: it records one expense transaction
// mirroring the entry, then flips the entry to paid with the link set.
// Calling it again on a paid entry is a no-op returning the entry as
// is, which makes at-least-once delivery of the request safe.
func (s *Service) MarkAsPaid(ctx context.Context, sess session.Session, id uuid.UUID) (*Entry, error) {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(e.UserID) {
		return nil, ErrNotFound
	}

	if e.Status == StatusPaid {
		if e.TransactionID == nil {
			return nil, fmt.Errorf("%w: paid entry %s has no transaction", ErrInconsistent, e.ID)
		}

		return e, nil
	}

	tx, err := s.ledger.Record(ctx, sess, transaction.RecordParams{
		Amount:       e.Amount,
		Type:         transaction.TypeExpense,
		Description:  e.Description,
		Category:     e.Category,
		DueDate:      e.DueDate,
		Installment:  e.Installment,
		Installments: e.Installments,
		IsRecurring:  e.IsRecurring,
	})
	if err != nil {
		return nil, fmt.Errorf("recording settlement transaction: %w", err)
	}

	if err := s.repo.SetPayment(ctx, e.ID, StatusPaid, &tx.ID); err != nil {
		// The settlement row exists but the entry was not flipped.
		// Leave the orphan in the ledger and let the caller retry.
		slog.Error("orphan settlement transaction: planning entry not updated",
			"entry_id", e.ID, "transaction_id", tx.ID, "error", err)

		return nil, fmt.Errorf("linking payment to entry %s (orphan transaction %s): %w", e.ID, tx.ID, err)
	}

	e.Status = StatusPaid
	e.TransactionID = &tx.ID

	return e, nil
}

// Reverse undoes MarkAsPaid: the linked transaction is deleted and the
// entry goes back to pending with the link cleared. Reversing an entry
// that is not paid is a no-op. A linked transaction already removed
// out-of-band still gets the dangling link cleared.
func (s *Service) Reverse(ctx context.Context, sess session.Session, id uuid.UUID) (*Entry, error) {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(e.UserID) {
		return nil, ErrNotFound
	}

	if e.Status != StatusPaid {
		e.Status = Reconcile(e, s.now())
		return e, nil
	}

	if e.TransactionID == nil {
		return nil, fmt.Errorf("%w: paid entry %s has no transaction", ErrInconsistent, e.ID)
	}

	if err := s.ledger.Delete(ctx, sess, *e.TransactionID); err != nil {
		if !errors.Is(err, transaction.ErrNotFound) {
			return nil, fmt.Errorf("deleting settlement transaction: %w", err)
		}

		slog.Warn("settlement transaction already gone, clearing dangling link",
			"entry_id", e.ID, "transaction_id", *e.TransactionID)
	}

	if err := s.repo.SetPayment(ctx, e.ID, StatusPending, nil); err != nil {
		return nil, fmt.Errorf("reverting planning entry: %w", err)
	}

	e.Status = StatusPending
	e.TransactionID = nil
	e.Status = Reconcile(e, s.now())

	return e, nil
}

// ClearByTransaction reverts whichever entry references the given
// transaction, if any. Called by the transaction service when a ledger
// row is deleted directly rather than through Reverse.
func (s *Service) ClearByTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	e, err := s.repo.FindByTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	if err := s.repo.SetPayment(ctx, e.ID, StatusPending, nil); err != nil {
		return false, fmt.Errorf("clearing payment link: %w", err)
	}

	return true, nil
}
