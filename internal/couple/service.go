package couple

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=couple
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	ListProfilesByCouple(ctx context.Context, coupleID uuid.UUID) ([]*Profile, error)
	SetProfileCouple(ctx context.Context, userID uuid.UUID, coupleID *uuid.UUID) error

	CreateCouple(ctx context.Context, c *Couple) error
	GetCouple(ctx context.Context, id uuid.UUID) (*Couple, error)
	RenameCouple(ctx context.Context, id uuid.UUID, name string) error

	CreateInvite(ctx context.Context, inv *Invite) error
	GetInvite(ctx context.Context, id uuid.UUID) (*Invite, error)
	FindPendingInvite(ctx context.Context, coupleID uuid.UUID, email string) (*Invite, error)
	ListInvitesByEmail(ctx context.Context, email string, status InviteStatus) ([]*Invite, error)
	ListInvitesByInviter(ctx context.Context, userID uuid.UUID) ([]*Invite, error)
	SetInviteStatus(ctx context.Context, id uuid.UUID, status InviteStatus) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// VisibleUserIDs resolves the set of user IDs sharing visibility with
// the given user: the user alone when ungrouped, or every member of
// their couple. Callers use the result as an inclusion filter; the size
// of a couple is not assumed.
func (s *Service) VisibleUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return []uuid.UUID{userID}, nil
		}

		return nil, err
	}

	if p.CoupleID == nil {
		return []uuid.UUID{userID}, nil
	}

	members, err := s.repo.ListProfilesByCouple(ctx, *p.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("listing couple members: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	return ids, nil
}

// Current returns the user's couple and its members, or a nil couple
// when the user is not grouped.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (*Couple, []*Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if p.CoupleID == nil {
		return nil, nil, nil
	}

	c, err := s.repo.GetCouple(ctx, *p.CoupleID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.ListProfilesByCouple(ctx, c.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing couple members: %w", err)
	}

	return c, members, nil
}

// Create starts a new couple with the user as its first member.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, name string) (*Couple, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.CoupleID != nil {
		return nil, ErrAlreadyGrouped
	}

	c := &Couple{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: userID,
	}

	if err := s.repo.CreateCouple(ctx, c); err != nil {
		return nil, fmt.Errorf("creating couple: %w", err)
	}

	if err := s.repo.SetProfileCouple(ctx, userID, &c.ID); err != nil {
		return nil, fmt.Errorf("joining own couple: %w", err)
	}

	return c, nil
}

// Invite records a pending invitation for the given email. Duplicate
// pending invites for the same couple and email are refused.
func (s *Service) Invite(ctx context.Context, userID uuid.UUID, email string) (*Invite, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.CoupleID == nil {
		return nil, fmt.Errorf("%w: create a couple before inviting", ErrInvalid)
	}

	existing, err := s.repo.FindPendingInvite(ctx, *p.CoupleID, email)
	if err != nil && !errors.Is(err, ErrInviteNotFound) {
		return nil, err
	}

	if existing != nil {
		return nil, ErrAlreadyInvited
	}

	inv := &Invite{
		ID:           uuid.New(),
		CoupleID:     *p.CoupleID,
		InvitedEmail: email,
		InvitedBy:    userID,
		Status:       InvitePending,
	}

	if err := s.repo.CreateInvite(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invite: %w", err)
	}

	return inv, nil
}

// PendingInvites lists the invitations addressed to the given email.
func (s *Service) PendingInvites(ctx context.Context, email string) ([]*Invite, error) {
	return s.repo.ListInvitesByEmail(ctx, email, InvitePending)
}

// ReceivedInvites lists the pending invitations addressed to the
// user's own email.
func (s *Service) ReceivedInvites(ctx context.Context, userID uuid.UUID) ([]*Invite, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return s.PendingInvites(ctx, p.Email)
}

// SentInvites lists the invitations the user has issued.
func (s *Service) SentInvites(ctx context.Context, userID uuid.UUID) ([]*Invite, error) {
	return s.repo.ListInvitesByInviter(ctx, userID)
}

// Accept joins the inviting couple and marks the invite accepted. The
// invite must be addressed to the accepting user's email.
func (s *Service) Accept(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID) error {
	inv, err := s.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return err
	}

	if inv.Status != InvitePending {
		return fmt.Errorf("%w: invite is not pending", ErrInvalid)
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if p.Email != inv.InvitedEmail {
		return ErrInviteNotFound
	}

	if p.CoupleID != nil {
		return ErrAlreadyGrouped
	}

	if err := s.repo.SetInviteStatus(ctx, inviteID, InviteAccepted); err != nil {
		return fmt.Errorf("accepting invite: %w", err)
	}

	if err := s.repo.SetProfileCouple(ctx, userID, &inv.CoupleID); err != nil {
		return fmt.Errorf("joining couple: %w", err)
	}

	return nil
}

// Reject marks the invite rejected without touching the profile.
func (s *Service) Reject(ctx context.Context, userID uuid.UUID, inviteID uuid.UUID) error {
	inv, err := s.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return err
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if p.Email != inv.InvitedEmail {
		return ErrInviteNotFound
	}

	return s.repo.SetInviteStatus(ctx, inviteID, InviteRejected)
}

// Leave removes the user from their couple. Their records become
// private again; the partner keeps the couple.
func (s *Service) Leave(ctx context.Context, userID uuid.UUID) error {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if p.CoupleID == nil {
		return fmt.Errorf("%w: user is not in a couple", ErrInvalid)
	}

	return s.repo.SetProfileCouple(ctx, userID, nil)
}

// Rename changes the couple's display name.
func (s *Service) Rename(ctx context.Context, userID uuid.UUID, name string) (*Couple, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.CoupleID == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.RenameCouple(ctx, *p.CoupleID, name); err != nil {
		return nil, fmt.Errorf("renaming couple: %w", err)
	}

	return s.repo.GetCouple(ctx, *p.CoupleID)
}
