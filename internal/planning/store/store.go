package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/planning"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectEntryColumns = `
	id, user_id, parent_id, description, amount, category, due_date,
	installment, installments, status, transaction_id, is_recurring,
	created_at, updated_at
`

func scanEntry(s scanner) (*planning.Entry, error) {
	var e planning.Entry

	var statusStr string

	if err := s.Scan(
		&e.ID, &e.UserID, &e.ParentID, &e.Description, &e.Amount, &e.Category, &e.DueDate,
		&e.Installment, &e.Installments, &statusStr, &e.TransactionID, &e.IsRecurring,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Status = planning.Status(statusStr)

	return &e, nil
}

func (s *Store) CreateEntries(ctx context.Context, entries []*planning.Entry) error {
	query := `
		INSERT INTO plannings (id, user_id, parent_id, description, amount, category, due_date,
			installment, installments, status, transaction_id, is_recurring, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	for _, e := range entries {
		err := s.db.QueryRowContext(ctx, query,
			e.ID,
			e.UserID,
			e.ParentID,
			e.Description,
			e.Amount,
			e.Category,
			e.DueDate,
			e.Installment,
			e.Installments,
			e.Status,
			e.TransactionID,
			e.IsRecurring,
		).Scan(&e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating planning entry: %w", err)
		}
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*planning.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM plannings WHERE id = $1`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, planning.ErrNotFound
		}

		return nil, fmt.Errorf("getting planning entry: %w", err)
	}

	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, filter planning.ListFilter) ([]*planning.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM plannings WHERE 1=1`

	var args []any

	argIdx := 1

	if len(filter.UserIDs) > 0 {
		ph := make([]string, len(filter.UserIDs))
		for i, id := range filter.UserIDs {
			ph[i] = fmt.Sprintf("$%d", argIdx)

			args = append(args, id)
			argIdx++
		}

		query += fmt.Sprintf(" AND user_id IN (%s)", strings.Join(ph, ", "))
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.GroupID != nil {
		query += fmt.Sprintf(" AND (id = $%d OR parent_id = $%d)", argIdx, argIdx)

		args = append(args, *filter.GroupID)
		argIdx++
	}

	query += " ORDER BY due_date ASC, installment ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing planning entries: %w", err)
	}
	defer rows.Close()

	var entries []*planning.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning planning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planning rows: %w", err)
	}

	return entries, nil
}

func (s *Store) UpdateEntry(ctx context.Context, e *planning.Entry) error {
	query := `
		UPDATE plannings
		SET description = $1, amount = $2, category = $3, due_date = $4,
			is_recurring = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		e.Description,
		e.Amount,
		e.Category,
		e.DueDate,
		e.IsRecurring,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating planning entry: %w", err)
	}

	return nil
}

// SetPayment writes the stored status together with the transaction
// link, keeping the two fields in step in a single statement.
func (s *Store) SetPayment(ctx context.Context, id uuid.UUID, status planning.Status, transactionID *uuid.UUID) error {
	query := `
		UPDATE plannings
		SET status = $1, transaction_id = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, transactionID, id)
	if err != nil {
		return fmt.Errorf("setting payment state: %w", err)
	}

	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM plannings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting planning entry: %w", err)
	}

	return nil
}

func (s *Store) FindByTransaction(ctx context.Context, transactionID uuid.UUID) (*planning.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM plannings WHERE transaction_id = $1`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, transactionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, planning.ErrNotFound
		}

		return nil, fmt.Errorf("finding entry by transaction: %w", err)
	}

	return e, nil
}
