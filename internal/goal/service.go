package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/session"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context, filter ListFilter) ([]*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

type ListFilter struct {
	UserIDs []uuid.UUID
}

type CreateParams struct {
	Name          string
	TargetAmount  int64
	CurrentAmount int64
	TargetDate    time.Time
	Description   string
	CoupleID      *uuid.UUID
}

// Create validates and stores a goal. A non-positive target is rejected
// here so progress computation never has to guard against dividing by
// zero.
func (s *Service) Create(ctx context.Context, sess session.Session, params CreateParams) (*Goal, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if params.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target amount must be positive", ErrInvalid)
	}

	current := params.CurrentAmount
	if current < 0 {
		current = 0
	}

	g := &Goal{
		ID:            uuid.New(),
		UserID:        sess.UserID,
		CoupleID:      params.CoupleID,
		Name:          params.Name,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: current,
		TargetDate:    params.TargetDate,
		Description:   params.Description,
	}

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	return g, nil
}

func (s *Service) List(ctx context.Context, sess session.Session) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, ListFilter{UserIDs: sess.VisibleUserIDs})
}

func (s *Service) Get(ctx context.Context, sess session.Session, id uuid.UUID) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sess.CanSee(g.UserID) {
		return nil, ErrNotFound
	}

	return g, nil
}

func (s *Service) Update(ctx context.Context, sess session.Session, g *Goal) (*Goal, error) {
	existing, err := s.Get(ctx, sess, g.ID)
	if err != nil {
		return nil, err
	}

	if g.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target amount must be positive", ErrInvalid)
	}

	g.UserID = existing.UserID

	if g.CurrentAmount < 0 {
		g.CurrentAmount = 0
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, sess session.Session, id uuid.UUID) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return err
	}

	return s.repo.DeleteGoal(ctx, id)
}

// AdjustAmount moves the saved amount by delta, in either direction.
// The result is clamped to zero; withdrawing more than is saved just
// empties the goal.
func (s *Service) AdjustAmount(ctx context.Context, sess session.Session, id uuid.UUID, delta int64) (*Goal, error) {
	g, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	amount := g.CurrentAmount + delta
	if amount < 0 {
		amount = 0
	}

	if err := s.repo.UpdateAmount(ctx, id, amount); err != nil {
		return nil, fmt.Errorf("adjusting goal amount: %w", err)
	}

	g.CurrentAmount = amount

	return g, nil
}

// Progress derives the display metrics for a goal as of now.
func (s *Service) Progress(g *Goal) Progress {
	return ComputeProgress(g, s.now())
}
