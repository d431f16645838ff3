package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/session"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=card
type Repository interface {
	CreateCard(ctx context.Context, c *Card) error
	GetCard(ctx context.Context, id uuid.UUID) (*Card, error)
	ListCards(ctx context.Context, filter ListFilter) ([]*Card, error)
	UpdateCard(ctx context.Context, c *Card) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error
	DeleteCard(ctx context.Context, id uuid.UUID) error

	// SumCardExpenses totals the expense transactions charged to the
	// card, for the credit balance rollup.
	SumCardExpenses(ctx context.Context, cardID uuid.UUID) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	UserIDs []uuid.UUID
}

type CreateParams struct {
	Name     string
	Type     Type
	Bank     string
	LastFour string
	Limit    int64
	Balance  int64
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, p.Type)
	}

	if len(p.LastFour) != 4 {
		return fmt.Errorf("%w: last four digits are required", ErrInvalid)
	}

	if p.Type == TypeCredit && p.Limit <= 0 {
		return fmt.Errorf("%w: credit cards need a positive limit", ErrInvalid)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, sess session.Session, params CreateParams) (*Card, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	c := &Card{
		ID:             uuid.New(),
		UserID:         sess.UserID,
		Name:           params.Name,
		Type:           params.Type,
		Bank:           params.Bank,
		LastFour:       params.LastFour,
		Limit:          params.Limit,
		CurrentBalance: params.Balance,
	}

	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, sess session.Session) ([]*Card, error) {
	return s.repo.ListCards(ctx, ListFilter{UserIDs: sess.VisibleUserIDs})
}

func (s *Service) Get(ctx context.Context, sess session.Session, id uuid.UUID) (*Card, error) {
	c, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(c.UserID) {
		return nil, ErrNotFound
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, sess session.Session, c *Card) (*Card, error) {
	existing, err := s.Get(ctx, sess, c.ID)
	if err != nil {
		return nil, err
	}

	if !c.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalid, c.Type)
	}

	c.UserID = existing.UserID

	if err := s.repo.UpdateCard(ctx, c); err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, sess session.Session, id uuid.UUID) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return err
	}

	return s.repo.DeleteCard(ctx, id)
}

// RecalculateBalance recomputes a credit card's usage from the expense
// transactions charged to it and persists the result. Debit balances
// are user-maintained and stay untouched.
func (s *Service) RecalculateBalance(ctx context.Context, sess session.Session, id uuid.UUID) (*Card, error) {
	c, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	if c.Type != TypeCredit {
		return c, nil
	}

	total, err := s.repo.SumCardExpenses(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("summing card expenses: %w", err)
	}

	if err := s.repo.UpdateBalance(ctx, id, total); err != nil {
		return nil, fmt.Errorf("updating card balance: %w", err)
	}

	c.CurrentBalance = total

	return c, nil
}
