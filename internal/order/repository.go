package order

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateID means the generated id is already taken; nothing was written.
	ErrDuplicateID = errors.New("order id already exists")
	// ErrIDConflict means every id generated for one checkout collided.
	ErrIDConflict = errors.New("could not allocate a unique order id")
)

// Repository defines persistence operations for orders.
type Repository interface {
	// Create writes the header and every item atomically.
	Create(ctx context.Context, o Order) error
	// UpdateStatus overwrites the status without checking that the order exists.
	UpdateStatus(ctx context.Context, id, status string) error
	GetPublic(ctx context.Context, id string) (PublicOrder, error)
	// List returns every order, newest first, without items.
	List(ctx context.Context) ([]Order, error)
	Items(ctx context.Context, orderID string) ([]Item, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	orders     map[string]Order
	nextItemID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]Order), nextItemID: 1}
}

func (r *InMemoryRepository) Create(_ context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return ErrDuplicateID
	}
	items := make([]Item, len(o.Items))
	for i, it := range o.Items {
		it.ID = r.nextItemID
		it.OrderID = o.ID
		r.nextItemID++
		items[i] = it
	}
	o.Items = items
	r.orders[o.ID] = o
	return nil
}

func (r *InMemoryRepository) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.Status = status
		r.orders[id] = o
	}
	return nil
}

func (r *InMemoryRepository) GetPublic(_ context.Context, id string) (PublicOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return PublicOrder{}, ErrNotFound
	}
	return toPublic(o), nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		o.Items = nil
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *InMemoryRepository) Items(_ context.Context, orderID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o := r.orders[orderID]
	out := make([]Item, len(o.Items))
	copy(out, o.Items)
	return out, nil
}

func toPublic(o Order) PublicOrder {
	p := PublicOrder{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Date:         o.Date,
		Status:       o.Status,
		Amount:       o.Amount,
		Items:        make([]PublicItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		p.Items = append(p.Items, PublicItem{PetName: it.PetName, PetPrice: it.PetPrice, PetImage: it.PetImage})
	}
	return p
}
