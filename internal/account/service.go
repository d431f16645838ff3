package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/session"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, filter ListFilter) ([]*Account, error)
	UpdateAccount(ctx context.Context, a *Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
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
	BankName      string
	AccountNumber string
	Type          Type
	Balance       int64
}

func (s *Service) Create(ctx context.Context, sess session.Session, params CreateParams) (*Account, error) {
	if params.BankName == "" {
		return nil, fmt.Errorf("%w: bank name is required", ErrInvalid)
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalid, params.Type)
	}

	a := &Account{
		ID:            uuid.New(),
		UserID:        sess.UserID,
		BankName:      params.BankName,
		AccountNumber: params.AccountNumber,
		Type:          params.Type,
		Balance:       params.Balance,
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return a, nil
}

func (s *Service) List(ctx context.Context, sess session.Session) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, ListFilter{UserIDs: sess.VisibleUserIDs})
}

func (s *Service) Get(ctx context.Context, sess session.Session, id uuid.UUID) (*Account, error) {
	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(a.UserID) {
		return nil, ErrNotFound
	}

	return a, nil
}

func (s *Service) Update(ctx context.Context, sess session.Session, a *Account) (*Account, error) {
	existing, err := s.Get(ctx, sess, a.ID)
	if err != nil {
		return nil, err
	}

	a.UserID = existing.UserID

	if err := s.repo.UpdateAccount(ctx, a); err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, sess session.Session, id uuid.UUID) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return err
	}

	return s.repo.DeleteAccount(ctx, id)
}
