package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const bridgeBuffer = 256

type envelope struct {
	Origin string          `json:"origin"`
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
}

// RedisBridge mirrors local events to a Redis channel and relays events
// published by other instances into the local broker, so viewers connected
// to any instance see every change.
type RedisBridge struct {
	client  *redis.Client
	channel string
	origin  string
	broker  *Broker
	out     chan envelope
}

func NewRedisBridge(client *redis.Client, channel string, broker *Broker) *RedisBridge {
	return &RedisBridge{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		broker:  broker,
		out:     make(chan envelope, bridgeBuffer),
	}
}

// Run blocks until ctx is cancelled or the subscription fails.
func (b *RedisBridge) Run(ctx context.Context) error {
	unsubscribe := b.broker.Subscribe(b.forward)
	defer unsubscribe()

	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	slog.Info("redis bridge subscribed", "channel", b.channel, "origin", b.origin)

	in := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-b.out:
			raw, err := json.Marshal(env)
			if err != nil {
				slog.Warn("redis bridge: encode failed", "event", env.Event, "error", err)
				continue
			}
			if err := b.client.Publish(ctx, b.channel, raw).Err(); err != nil {
				slog.Warn("redis bridge: publish failed", "event", env.Event, "error", err)
			}
		case msg, ok := <-in:
			if !ok {
				return nil
			}
			b.relay([]byte(msg.Payload))
		}
	}
}

// forward queues a locally published event for Redis. Relayed events are
// skipped so they do not bounce between instances.
func (b *RedisBridge) forward(ev Event) {
	if ev.Origin != "" {
		return
	}
	data, err := json.Marshal(ev.Data)
	if err != nil {
		slog.Warn("redis bridge: payload not encodable", "event", ev.Name, "error", err)
		return
	}
	select {
	case b.out <- envelope{Origin: b.origin, Event: ev.Name, Data: data}:
	default:
		slog.Warn("redis bridge: buffer full, dropping event", "event", ev.Name)
	}
}

func (b *RedisBridge) relay(raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		slog.Warn("redis bridge: bad envelope", "error", err)
		return
	}
	if env.Origin == b.origin || env.Event == "" {
		return
	}
	b.broker.Dispatch(Event{Name: env.Event, Data: env.Data, Origin: env.Origin})
}
