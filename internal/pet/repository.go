package pet

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("pet not found")
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]Pet, error)
	GetByID(ctx context.Context, id int) (Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, id int, patch Patch) (Pet, error)
	Delete(ctx context.Context, id int) error
	// Exists reports whether a pet with the same name and breed is stored;
	// seeding uses it to stay idempotent.
	Exists(ctx context.Context, name, breed string) (bool, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Pet
	nextID  int
}

func NewInMemoryRepository(seed []Pet) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Pet, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context, f Filter) ([]Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids map[int]bool
	if len(f.IDs) > 0 {
		ids = make(map[int]bool, len(f.IDs))
		for _, id := range f.IDs {
			ids[id] = true
		}
	}
	search := strings.ToLower(f.Search)

	out := make([]Pet, 0)
	for _, p := range r.storage {
		if f.typeSet() && p.Type != f.Type {
			continue
		}
		if f.genderSet() && p.Gender != f.Gender {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Breed), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if ids != nil && !ids[p.ID] {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, p Pet) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, patch Patch) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID != id {
			continue
		}
		if patch.Price != nil {
			r.storage[i].Price = *patch.Price
		}
		if patch.IsAvailable != nil {
			r.storage[i].IsAvailable = *patch.IsAvailable
		}
		return r.storage[i], nil
	}
	return Pet{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Exists(_ context.Context, name, breed string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Name == name && p.Breed == breed {
			return true, nil
		}
	}
	return false, nil
}
