package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/petshop-storefront/internal/notify"
	"github.com/wichananm65/petshop-storefront/internal/stats"
)

// maxIDAttempts bounds how many fresh ids one checkout may try.
const maxIDAttempts = 3

// StatsProvider recomputes the dashboard figures attached to order events.
type StatsProvider interface {
	Snapshot(ctx context.Context) (stats.Stats, error)
}

type Service struct {
	repo   Repository
	stats  StatsProvider
	events notify.Publisher
	newID  func() string
	now    func() time.Time
}

func NewService(repo Repository, sp StatsProvider, events notify.Publisher) *Service {
	if events == nil {
		events = notify.Discard{}
	}
	return &Service{
		repo:   repo,
		stats:  sp,
		events: events,
		newID:  randomID,
		now:    time.Now,
	}
}

func randomID() string {
	return fmt.Sprintf("#ORD-%d", 1000+rand.IntN(9000))
}

type PlaceInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	District      string
	State         string
	Pincode       string
	PaymentMethod string
	Amount        decimal.Decimal
	Items         []ItemInput
}

type ItemInput struct {
	PetID     int
	Name      string
	Price     decimal.Decimal
	ImageURL  string
	Condition string
}

type placedEvent struct {
	Order
	Stats *stats.Stats `json:"stats,omitempty"`
}

type updatedEvent struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Stats  *stats.Stats `json:"stats,omitempty"`
}

// Place records a new PENDING order with its items. The amount is stored as
// given; it is not checked against the item prices.
func (s *Service) Place(ctx context.Context, in PlaceInput) (Order, error) {
	now := s.now()
	o := Order{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Address:       in.Address,
		District:      in.District,
		State:         in.State,
		Pincode:       in.Pincode,
		PaymentMethod: in.PaymentMethod,
		Date:          now.Format(DateLayout),
		Status:        StatusPending,
		Amount:        in.Amount,
		CreatedAt:     now.UTC().Format(time.RFC3339),
		Items:         make([]Item, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		condition := it.Condition
		if condition == "" {
			condition = DefaultCondition
		}
		o.Items = append(o.Items, Item{
			PetID:        it.PetID,
			PetName:      it.Name,
			PetPrice:     it.Price,
			PetImage:     it.ImageURL,
			PetCondition: condition,
		})
	}

	var err error
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		o.ID = s.newID()
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		err = s.repo.Create(ctx, o)
		if !errors.Is(err, ErrDuplicateID) {
			break
		}
		slog.Warn("order id collision", "id", o.ID, "attempt", attempt)
	}
	if errors.Is(err, ErrDuplicateID) {
		return Order{}, ErrIDConflict
	}
	if err != nil {
		return Order{}, err
	}

	s.events.Publish(notify.EventOrderPlaced, placedEvent{Order: o, Stats: s.snapshot(ctx)})
	return o, nil
}

// UpdateStatus overwrites the status of id. Unknown ids and repeated
// statuses are not errors.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.events.Publish(notify.EventOrderUpdated, updatedEvent{ID: id, Status: status, Stats: s.snapshot(ctx)})
	return nil
}

func (s *Service) GetPublic(ctx context.Context, id string) (PublicOrder, error) {
	return s.repo.GetPublic(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Items(ctx context.Context, orderID string) ([]Item, error) {
	return s.repo.Items(ctx, orderID)
}

// snapshot returns nil when the figures cannot be computed; the event still goes out.
func (s *Service) snapshot(ctx context.Context) *stats.Stats {
	if s.stats == nil {
		return nil
	}
	st, err := s.stats.Snapshot(ctx)
	if err != nil {
		slog.Error("stats snapshot for order event", "error", err)
		return nil
	}
	return &st
}
