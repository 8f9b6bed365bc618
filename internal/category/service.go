package category

import "context"

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]CategoryItem, error) {
	return s.repo.List(ctx)
}
