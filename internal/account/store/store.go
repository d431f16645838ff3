package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	id, user_id, bank_name, account_number, type, balance, created_at, updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var typeStr string

	if err := s.Scan(
		&a.ID, &a.UserID, &a.BankName, &a.AccountNumber, &typeStr, &a.Balance,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, bank_name, account_number, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.ID,
		a.UserID,
		a.BankName,
		a.AccountNumber,
		a.Type,
		a.Balance,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE 1=1`

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

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET bank_name = $1, account_number = $2, type = $3, balance = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		a.BankName,
		a.AccountNumber,
		a.Type,
		a.Balance,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}
