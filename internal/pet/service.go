package pet

import (
	"context"
	"log/slog"

	"github.com/wichananm65/petshop-storefront/internal/notify"
)

type Service struct {
	repo   Repository
	events notify.Publisher
}

func NewService(repo Repository, events notify.Publisher) *Service {
	if events == nil {
		events = notify.Discard{}
	}
	return &Service{repo: repo, events: events}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores p and announces it to connected viewers.
func (s *Service) Create(ctx context.Context, p Pet) (Pet, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	s.events.Publish(notify.EventPetAdded, created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Pet, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return Pet{}, err
	}
	s.events.Publish(notify.EventPetUpdated, updated)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(notify.EventPetDeleted, map[string]int{"id": id})
	return nil
}

// Seed inserts every pet whose name and breed pair is not stored yet and
// returns how many were added. Seeding does not publish events.
func (s *Service) Seed(ctx context.Context, pets []Pet) (int, error) {
	added := 0
	for _, p := range pets {
		exists, err := s.repo.Exists(ctx, p.Name, p.Breed)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}
		if _, err := s.repo.Create(ctx, p); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		slog.Info("seeded pets", "added", added)
	}
	return added, nil
}
