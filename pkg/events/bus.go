// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package events

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Event is anything that can be published on a [Bus].
type Event interface {
	isEvent()
}

// Bus delivers events to subscribers. Subscribing and unsubscribing are safe
// to do concurrently with publishing.
type Bus struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers []subscriber
	async       sync.WaitGroup
	logger      *slog.Logger
}

type subscriber struct {
	id      uint64
	deliver func(Event)
}

// NewBus returns a new bus. If logger is nil, subscriber panics are logged to
// the default logger.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := new(Bus)
	b.logger = logger.With("module", "events")
	return b
}

// subscribe adds a subscriber and returns a function that removes it.
func (b *Bus) subscribe(deliver func(Event)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subscribers = append(b.subscribers, subscriber{id, deliver})

	var once sync.Once
	return func() { once.Do(func() { b.unsubscribe(id) }) }
}

func (b *Bus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Copy so that a publish in progress keeps its snapshot
	subs := make([]subscriber, 0, len(b.subscribers))
	for _, s := range b.subscribers {
		if s.id != id {
			subs = append(subs, s)
		}
	}
	b.subscribers = subs
}

// Publish sends the event to every subscriber. Synchronous subscribers are
// called in the order they subscribed, before Publish returns.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.Lock()
	subs := b.subscribers
	b.mu.Unlock()

	for _, s := range subs {
		s.deliver(event)
	}
}

// Wait blocks until every asynchronous delivery started so far has returned.
func (b *Bus) Wait() {
	if b == nil {
		return
	}
	b.async.Wait()
}

func (b *Bus) recover(event Event) {
	err := recover()
	if err == nil {
		return
	}
	b.logger.Error("Subscriber panicked", "event", fmt.Sprintf("%T", event), "error", err, "stack", string(debug.Stack()))
}

// SubscribeSync calls sub on the publisher's goroutine for every event of
// type T. Calling the returned function stops delivery.
func SubscribeSync[T Event](b *Bus, sub func(T)) (cancel func()) {
	return b.subscribe(func(e Event) {
		et, ok := e.(T)
		if !ok {
			return
		}

		defer b.recover(e)
		sub(et)
	})
}

// SubscribeAsync calls sub on a new goroutine for every event of type T. Use
// [Bus.Wait] to wait for deliveries to finish. Calling the returned function
// stops delivery of later events.
func SubscribeAsync[T Event](b *Bus, sub func(T)) (cancel func()) {
	return b.subscribe(func(e Event) {
		et, ok := e.(T)
		if !ok {
			return
		}

		b.async.Add(1)
		go func() {
			defer b.async.Done()
			defer b.recover(e)
			sub(et)
		}()
	})
}
