package categorize

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=categorize
type Repository interface {
	FindCategory(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, pattern, category string) error
}

// Service learns which spending category a statement description
// belongs to, so imported transactions come pre-categorized.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the learned category for a statement description, or
// empty when nothing matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers that descriptions containing pattern belong to the
// given category.
func (s *Service) Learn(ctx context.Context, pattern, category string) error {
	return s.repo.CreateMapping(ctx, pattern, category)
}
