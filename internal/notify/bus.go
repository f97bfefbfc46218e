package notify

import (
	"context"
	"sync"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/logger"
)

// Subscriber is notified of every newly ingested listening event.
// Name identifies a subscriber for attach/detach de-duplication.
type Subscriber interface {
	Name() string
	Update(ctx context.Context, event domain.ListeningEvent) error
}

// Bus fans out newly created listening events to attached subscribers.
// A failing subscriber never affects its siblings or the publisher.
type Bus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Attach registers a subscriber. Attaching a subscriber whose Name is
// already present is a no-op, so no subscriber receives duplicate delivery.
func (b *Bus) Attach(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subscribers {
		if s.Name() == sub.Name() {
			return
		}
	}
	b.subscribers = append(b.subscribers, sub)
}

// Detach removes the subscriber with the same Name, if present.
func (b *Bus) Detach(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.subscribers[:0]
	for _, s := range b.subscribers {
		if s.Name() != sub.Name() {
			kept = append(kept, s)
		}
	}
	b.subscribers = kept
}

// Notify invokes every subscriber's Update concurrently and returns once all
// have settled. Subscriber errors are logged and swallowed; they never reach
// the caller and never prevent sibling subscribers from running.
func (b *Bus) Notify(ctx context.Context, event domain.ListeningEvent) {
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	log := logger.FromContext(ctx)

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub Subscriber) {
			defer wg.Done()
			if err := sub.Update(ctx, event); err != nil {
				log.Error("Subscriber failed to process event",
					"subscriber", sub.Name(), "event_id", event.ID, "error", err)
			}
		}(sub)
	}
	wg.Wait()
}

// Count returns the number of currently attached subscribers.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
