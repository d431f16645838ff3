package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/card"
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

const selectCardColumns = `
	id, user_id, name, type, bank, last_four, credit_limit, current_balance,
	created_at, updated_at
`

func scanCard(s scanner) (*card.Card, error) {
	var c card.Card

	var typeStr string

	if err := s.Scan(
		&c.ID, &c.UserID, &c.Name, &typeStr, &c.Bank, &c.LastFour,
		&c.Limit, &c.CurrentBalance, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = card.Type(typeStr)

	return &c, nil
}

func (s *Store) CreateCard(ctx context.Context, c *card.Card) error {
	query := `
		INSERT INTO cards (id, user_id, name, type, bank, last_four, credit_limit,
			current_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Type,
		c.Bank,
		c.LastFour,
		c.Limit,
		c.CurrentBalance,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}

	return nil
}

func (s *Store) GetCard(ctx context.Context, id uuid.UUID) (*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards WHERE id = $1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("getting card: %w", err)
	}

	return c, nil
}

func (s *Store) ListCards(ctx context.Context, filter card.ListFilter) ([]*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards WHERE 1=1`

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
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*card.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}

		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}

	return cards, nil
}

func (s *Store) UpdateCard(ctx context.Context, c *card.Card) error {
	query := `
		UPDATE cards
		SET name = $1, type = $2, bank = $3, last_four = $4, credit_limit = $5,
			current_balance = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Type,
		c.Bank,
		c.LastFour,
		c.Limit,
		c.CurrentBalance,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}

	return nil
}

func (s *Store) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	query := `UPDATE cards SET current_balance = $1, updated_at = NOW() WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("updating card balance: %w", err)
	}

	return nil
}

func (s *Store) DeleteCard(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	return nil
}

func (s *Store) SumCardExpenses(ctx context.Context, cardID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE card_id = $1 AND type = 'expense'
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, cardID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing card expenses: %w", err)
	}

	return total, nil
}
