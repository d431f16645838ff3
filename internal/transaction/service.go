package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/dateutil"
	"github.com/jpcaldeira/tandem/internal/session"
)

// maxInstallments bounds how far a single purchase may be split.
const maxInstallments = 120

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// Unlinker reverts planning entries that reference a transaction
// removed from the ledger, so a settled bill never points at a
// transaction that no longer exists.
type Unlinker interface {
	ClearByTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	unlinker Unlinker
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetUnlinker wires the planning side of the payment link. Set after
// construction because the planning service depends on this one.
func (s *Service) SetUnlinker(u Unlinker) {
	s.unlinker = u
}

type ListFilter struct {
	UserIDs   []uuid.UUID
	Type      *Type
	Category  *string
	CardID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateParams describes a user-entered transaction. Amount is the
// full amount; when Installments > 1 it is split into that many dated
// rows.
type CreateParams struct {
	Amount       int64
	Type         Type
	CardID       *uuid.UUID
	Description  string
	Category     string
	DueDate      time.Time
	Installments int
	IsRecurring  bool
}

// RecordParams describes exactly one ledger row with its installment
// position already decided, as produced by the planning payment linker.
type RecordParams struct {
	Amount       int64
	Type         Type
	CardID       *uuid.UUID
	Description  string
	Category     string
	DueDate      time.Time
	Installment  int
	Installments int
	IsRecurring  bool
}

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, p.Type)
	}

	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalid)
	}

	if p.Installments < 0 || p.Installments > maxInstallments {
		return fmt.Errorf("%w: installments must be between 1 and %d", ErrInvalid, maxInstallments)
	}

	return nil
}

// Create validates and stores a transaction, splitting it into N
// monthly installments when requested. The per-installment amount is
// the total divided in integer cents; the remainder lands on the first
// installment so the rows always sum back to the entered total.
func (s *Service) Create(ctx context.Context, sess session.Session, params CreateParams) ([]*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	n := params.Installments
	if n < 1 {
		n = 1
	}

	per := params.Amount / int64(n)
	rem := params.Amount % int64(n)

	txs := make([]*Transaction, n)
	for i := 0; i < n; i++ {
		tx := &Transaction{
			ID:           uuid.New(),
			UserID:       sess.UserID,
			CardID:       params.CardID,
			Amount:       per,
			Type:         params.Type,
			Description:  params.Description,
			Category:     params.Category,
			DueDate:      dateutil.AddMonths(params.DueDate, i),
			Installment:  i + 1,
			Installments: n,
			IsRecurring:  params.IsRecurring,
		}
		if i == 0 {
			tx.Amount += rem
		}

		txs[i] = tx
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("creating transactions: %w", err)
	}

	return txs, nil
}

// Record stores exactly one ledger row, keeping the caller's
// installment numbering instead of expanding.
func (s *Service) Record(ctx context.Context, sess session.Session, params RecordParams) (*Transaction, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalid, params.Type)
	}

	installments := params.Installments
	if installments < 1 {
		installments = 1
	}

	installment := params.Installment
	if installment < 1 {
		installment = 1
	}

	tx := &Transaction{
		ID:           uuid.New(),
		UserID:       sess.UserID,
		CardID:       params.CardID,
		Amount:       params.Amount,
		Type:         params.Type,
		Description:  params.Description,
		Category:     params.Category,
		DueDate:      params.DueDate,
		Installment:  installment,
		Installments: installments,
		IsRecurring:  params.IsRecurring,
	}

	if err := s.repo.CreateTransactions(ctx, []*Transaction{tx}); err != nil {
		return nil, fmt.Errorf("recording transaction: %w", err)
	}

	return tx, nil
}

// RecordBatch stores a parsed statement as ledger rows in one batch.
// Rows that fail validation abort the whole batch before anything is
// written.
func (s *Service) RecordBatch(ctx context.Context, sess session.Session, params []RecordParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))

	for i, p := range params {
		if p.Amount <= 0 {
			return nil, fmt.Errorf("%w: row %d: amount must be positive", ErrInvalid, i+1)
		}

		if !p.Type.Valid() {
			return nil, fmt.Errorf("%w: row %d: unknown type %q", ErrInvalid, i+1, p.Type)
		}

		installments := p.Installments
		if installments < 1 {
			installments = 1
		}

		installment := p.Installment
		if installment < 1 {
			installment = 1
		}

		txs[i] = &Transaction{
			ID:           uuid.New(),
			UserID:       sess.UserID,
			CardID:       p.CardID,
			Amount:       p.Amount,
			Type:         p.Type,
			Description:  p.Description,
			Category:     p.Category,
			DueDate:      p.DueDate,
			Installment:  installment,
			Installments: installments,
			IsRecurring:  p.IsRecurring,
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("recording batch: %w", err)
	}

	return txs, nil
}

// List returns the session's visible transactions. The visibility set
// always overrides whatever user filter the caller passed.
func (s *Service) List(ctx context.Context, sess session.Session, filter ListFilter) ([]*Transaction, error) {
	filter.UserIDs = sess.VisibleUserIDs
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Get(ctx context.Context, sess session.Session, id uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(tx.UserID) {
		return nil, ErrNotFound
	}

	return tx, nil
}

func (s *Service) Update(ctx context.Context, sess session.Session, tx *Transaction) error {
	existing, err := s.Get(ctx, sess, tx.ID)
	if err != nil {
		return err
	}

	tx.UserID = existing.UserID

	return s.repo.UpdateTransaction(ctx, tx)
}

// Delete removes a ledger transaction. A planning entry settled by this
// transaction is reverted to pending so its link never dangles.
func (s *Service) Delete(ctx context.Context, sess session.Session, id uuid.UUID) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return err
	}

	// The link must be cleared before the row goes away, or the
	// settled entry would be left paid with a dangling transaction_id.
	if s.unlinker != nil {
		cleared, err := s.unlinker.ClearByTransaction(ctx, id)
		if err != nil {
			return fmt.Errorf("clearing planning link: %w", err)
		}

		if cleared {
			slog.Info("reverted planning entry before transaction delete", "transaction_id", id)
		}
	}

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

// Summary lists the visible transactions in the filter window and folds
// them into totals.
func (s *Service) Summary(ctx context.Context, sess session.Session, filter ListFilter) (Summary, error) {
	txs, err := s.List(ctx, sess, filter)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(txs), nil
}
