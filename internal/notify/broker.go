// Package notify fans storefront events out to every interested subscriber.
//
// Delivery is best effort: Publish never fails, never retries and never
// waits on a slow consumer. Handlers run on the publishing goroutine, so a
// handler must hand work off (for example to a buffered channel) instead of
// doing I/O inline.
package notify

import (
	"log/slog"
	"sync"
)

const (
	EventOrderPlaced  = "order:placed"
	EventOrderUpdated = "order:updated"
	EventPetAdded     = "pet:added"
	EventPetUpdated   = "pet:updated"
	EventPetDeleted   = "pet:deleted"
)

// Event is the frame delivered to subscribers and written to viewers.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`

	// Origin is set when the event was relayed from another instance.
	Origin string `json:"-"`
}

type Handler func(Event)

// Publisher is what domain services depend on to announce changes.
type Publisher interface {
	Publish(name string, payload any)
}

// Broker is an in-process publish/subscribe hub.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]Handler
	nextID uint64
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]Handler)}
}

// Subscribe registers h for every event and returns a function that removes it.
func (b *Broker) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Broker) Publish(name string, payload any) {
	b.Dispatch(Event{Name: name, Data: payload})
}

// Dispatch delivers ev to a snapshot of the current subscribers.
func (b *Broker) Dispatch(ev Event) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		deliver(h, ev)
	}
}

func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func deliver(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("notify: subscriber panicked", "event", ev.Name, "panic", r)
		}
	}()
	h(ev)
}

// Discard is a Publisher that drops everything.
type Discard struct{}

func (Discard) Publish(string, any) {}
