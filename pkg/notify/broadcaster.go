package notify

import (
	"context"
	"sync"
)

// Subscriber receives events from a Broadcaster.
type Subscriber struct {
	ch     chan Event
	closed bool
	mu     sync.RWMutex
}

// Events returns the channel on which broadcast events are delivered.
// The channel is closed when the subscriber is closed.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Close closes the subscriber. It is idempotent.
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *Subscriber) send(event Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

// Broadcaster fans events out to any number of subscribers. Delivery is
// non-blocking: when a subscriber's buffer is full the event is dropped for
// that subscriber and the subscriber is removed. All methods are safe for
// concurrent use.
type Broadcaster struct {
	subscribers map[*Subscriber]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewBroadcaster creates an in-memory broadcaster. bufferSize sets each
// subscriber's channel buffer; a minimum of 1 is enforced so sends stay
// non-blocking.
func NewBroadcaster(bufferSize int) *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[*Subscriber]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a new subscriber. The subscription is torn down
// automatically when ctx is cancelled. Subscribing to a closed broadcaster
// returns an already-closed subscriber.
func (b *Broadcaster) Subscribe(ctx context.Context) *Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscriber{ch: make(chan Event, b.bufferSize)}

	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Emit delivers the event to every active subscriber, dropping it for any
// subscriber whose buffer is full. Emit never blocks on a slow consumer.
func (b *Broadcaster) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.subscribers {
		if !sub.send(event) {
			// Removal happens off the emit path to avoid write-lock
			// contention during read-heavy emission.
			go b.unsubscribe(sub)
		}
	}
}

// Close shuts the broadcaster down and closes every subscriber. It is safe
// to call multiple times.
func (b *Broadcaster) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.cleanupWg.Wait()

	return nil
}

func (b *Broadcaster) unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
