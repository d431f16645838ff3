package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/couple"
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

func scanProfile(s scanner) (*couple.Profile, error) {
	var p couple.Profile

	if err := s.Scan(&p.ID, &p.Name, &p.Email, &p.CoupleID, &p.CreatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

func scanInvite(s scanner) (*couple.Invite, error) {
	var inv couple.Invite

	var statusStr string

	if err := s.Scan(&inv.ID, &inv.CoupleID, &inv.InvitedEmail, &inv.InvitedBy, &statusStr, &inv.CreatedAt); err != nil {
		return nil, err
	}

	inv.Status = couple.InviteStatus(statusStr)

	return &inv, nil
}

func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (*couple.Profile, error) {
	query := `SELECT id, name, email, couple_id, created_at FROM profiles WHERE id = $1`

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, couple.ErrProfileNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return p, nil
}

func (s *Store) ListProfilesByCouple(ctx context.Context, coupleID uuid.UUID) ([]*couple.Profile, error) {
	query := `SELECT id, name, email, couple_id, created_at FROM profiles WHERE couple_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("listing couple profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*couple.Profile

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}

	return profiles, nil
}

func (s *Store) SetProfileCouple(ctx context.Context, userID uuid.UUID, coupleID *uuid.UUID) error {
	query := `UPDATE profiles SET couple_id = $1 WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, coupleID, userID)
	if err != nil {
		return fmt.Errorf("setting profile couple: %w", err)
	}

	return nil
}

func (s *Store) CreateCouple(ctx context.Context, c *couple.Couple) error {
	query := `
		INSERT INTO couples (id, name, created_by, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.ID, c.Name, c.CreatedBy).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating couple: %w", err)
	}

	return nil
}

func (s *Store) GetCouple(ctx context.Context, id uuid.UUID) (*couple.Couple, error) {
	query := `SELECT id, name, created_by, created_at FROM couples WHERE id = $1`

	var c couple.Couple

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, couple.ErrNotFound
		}

		return nil, fmt.Errorf("getting couple: %w", err)
	}

	return &c, nil
}

func (s *Store) RenameCouple(ctx context.Context, id uuid.UUID, name string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE couples SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("renaming couple: %w", err)
	}

	return nil
}

func (s *Store) CreateInvite(ctx context.Context, inv *couple.Invite) error {
	query := `
		INSERT INTO couple_invites (id, couple_id, invited_email, invited_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.ID,
		inv.CoupleID,
		inv.InvitedEmail,
		inv.InvitedBy,
		inv.Status,
	).Scan(&inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invite: %w", err)
	}

	return nil
}

const selectInviteColumns = `id, couple_id, invited_email, invited_by, status, created_at`

func (s *Store) GetInvite(ctx context.Context, id uuid.UUID) (*couple.Invite, error) {
	query := `SELECT ` + selectInviteColumns + ` FROM couple_invites WHERE id = $1`

	inv, err := scanInvite(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, couple.ErrInviteNotFound
		}

		return nil, fmt.Errorf("getting invite: %w", err)
	}

	return inv, nil
}

func (s *Store) FindPendingInvite(ctx context.Context, coupleID uuid.UUID, email string) (*couple.Invite, error) {
	query := `SELECT ` + selectInviteColumns + `
		FROM couple_invites
		WHERE couple_id = $1 AND invited_email = $2 AND status = 'pending'
		LIMIT 1`

	inv, err := scanInvite(s.db.QueryRowContext(ctx, query, coupleID, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, couple.ErrInviteNotFound
		}

		return nil, fmt.Errorf("finding pending invite: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvitesByEmail(ctx context.Context, email string, status couple.InviteStatus) ([]*couple.Invite, error) {
	query := `SELECT ` + selectInviteColumns + `
		FROM couple_invites
		WHERE invited_email = $1 AND status = $2
		ORDER BY created_at DESC`

	return s.listInvites(ctx, query, email, status)
}

func (s *Store) ListInvitesByInviter(ctx context.Context, userID uuid.UUID) ([]*couple.Invite, error) {
	query := `SELECT ` + selectInviteColumns + `
		FROM couple_invites
		WHERE invited_by = $1
		ORDER BY created_at DESC`

	return s.listInvites(ctx, query, userID)
}

func (s *Store) listInvites(ctx context.Context, query string, args ...any) ([]*couple.Invite, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invites: %w", err)
	}
	defer rows.Close()

	var invites []*couple.Invite

	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invite: %w", err)
		}

		invites = append(invites, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invite rows: %w", err)
	}

	return invites, nil
}

func (s *Store) SetInviteStatus(ctx context.Context, id uuid.UUID, status couple.InviteStatus) error {
	_, err := s.db.ExecContext(ctx, `UPDATE couple_invites SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("setting invite status: %w", err)
	}

	return nil
}
