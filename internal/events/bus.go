// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/utils"
	"github.com/MKhiriev/voucher-sync/models"
)

type subscription struct {
	kinds   map[models.EventKind]struct{}
	handler Handler
}

func (s subscription) wants(kind models.EventKind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[kind]
	return ok
}

// Bus is an in-memory [Notifier]. Handlers run synchronously on the
// publisher's goroutine in subscription order.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]subscription
	order  []string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
	now    func() time.Time
}

func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		subs:   make(map[string]subscription),
		ids:    utils.NewUUIDGenerator(),
		logger: log,
		now:    time.Now,
	}
}

// Subscribe registers handler for the given kinds, or for every kind when
// none are given. The returned function removes the subscription.
func (b *Bus) Subscribe(handler Handler, kinds ...models.EventKind) func() {
	id := b.ids.Generate()
	sub := subscription{handler: handler}
	if len(kinds) > 0 {
		sub.kinds = make(map[models.EventKind]struct{}, len(kinds))
		for _, k := range kinds {
			sub.kinds[k] = struct{}{}
		}
	}

	b.mu.Lock()
	b.subs[id] = sub
	b.order = append(b.order, id)
	b.mu.Unlock()

	b.logger.Debug().Str("func", "Bus.Subscribe").Str("subscription_id", id).Int("kinds", len(kinds)).Msg("listener subscribed")

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

// SubscribeChan delivers events into a buffered channel. Events are dropped
// while the buffer is full. The returned function unsubscribes and closes
// the channel.
func (b *Bus) SubscribeChan(buffer int, kinds ...models.EventKind) (<-chan models.Event, func()) {
	ch := make(chan models.Event, buffer)
	var (
		mu     sync.Mutex
		closed bool
	)

	unsubscribe := b.Subscribe(func(ctx context.Context, event models.Event) error {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return nil
		}
		select {
		case ch <- event:
		default:
			b.logger.Warn().Str("func", "Bus.SubscribeChan").Str("event_kind", string(event.Kind)).Msg("listener is slow, event dropped")
		}
		return nil
	}, kinds...)

	return ch, func() {
		unsubscribe()
		mu.Lock()
		if !closed {
			closed = true
			close(ch)
		}
		mu.Unlock()
	}
}

func (b *Bus) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subs, id)
	for i, sid := range b.order {
		if sid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish implements [Notifier]. A failing or panicking handler never stops
// delivery to the remaining ones.
func (b *Bus) Publish(ctx context.Context, kind models.EventKind, data any) {
	event := models.Event{
		ID:   b.ids.Generate(),
		Kind: kind,
		Data: data,
		At:   b.now().UTC(),
	}

	for _, handler := range b.handlersFor(kind) {
		if err := b.dispatch(ctx, handler, event); err != nil {
			b.logger.Error().Err(err).
				Str("func", "Bus.Publish").
				Str("event_kind", string(kind)).
				Str("event_id", event.ID).
				Msg("handler failed to process event")
		}
	}
}

func (b *Bus) handlersFor(kind models.EventKind) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		if sub := b.subs[id]; sub.wants(kind) {
			handlers = append(handlers, sub.handler)
		}
	}
	return handlers
}

func (b *Bus) dispatch(ctx context.Context, handler Handler, event models.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("func", "Bus.dispatch").
				Str("event_kind", string(event.Kind)).
				Interface("panic", r).
				Msg("handler panicked")
		}
	}()

	return handler(ctx, event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, models.EventKind, any) {}

var (
	_ Notifier = (*Bus)(nil)
	_ Notifier = Nop{}
)
