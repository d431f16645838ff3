package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/goal"
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

const selectGoalColumns = `
	id, user_id, couple_id, name, target_amount, current_amount, target_date,
	description, created_at, updated_at
`

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var desc sql.NullString

	if err := s.Scan(
		&g.ID, &g.UserID, &g.CoupleID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
		&g.TargetDate, &desc, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	g.Description = desc.String

	return &g, nil
}

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, couple_id, name, target_amount, current_amount,
			target_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.ID,
		g.UserID,
		g.CoupleID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.TargetDate,
		g.Description,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE id = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context, filter goal.ListFilter) ([]*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE 1=1`

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
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal rows: %w", err)
	}

	return goals, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, target_date = $4,
			description = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.TargetDate,
		g.Description,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	return nil
}

func (s *Store) UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `UPDATE goals SET current_amount = $1, updated_at = NOW() WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("updating goal amount: %w", err)
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	return nil
}
