package pubsub

import (
	"context"
	"sync"
	"time"
)

// DefaultBuffer is the per-subscriber queue length used by NewBroker.
const DefaultBuffer = 64

type subscription[T any] struct {
	ch      chan Event[T]
	dropped int
}

// Broker delivers each published event to every current subscriber.
// A subscriber whose queue is full misses the event; Publish never blocks.
type Broker[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]*subscription[T]
	nextID uint64
	buffer int
	stop   chan struct{}
	shut   bool
	now    func() time.Time
}

// NewBroker returns a broker using DefaultBuffer.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](DefaultBuffer)
}

// NewBrokerWithBuffer returns a broker whose subscribers queue up to size
// events. Sizes below one are raised to one.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:   map[uint64]*subscription[T]{},
		buffer: max(size, 1),
		stop:   make(chan struct{}),
		now:    time.Now,
	}
}

// Subscribe registers a new subscriber. Its channel closes when ctx ends or
// the broker shuts down; subscribing to a closed broker yields a closed
// channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shut {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	b.nextID++
	id := b.nextID
	sub := &subscription[T]{ch: make(chan Event[T], b.buffer)}
	b.subs[id] = sub

	go b.unsubscribeOnDone(ctx, id)
	return sub.ch
}

func (b *Broker[T]) unsubscribeOnDone(ctx context.Context, id uint64) {
	select {
	case <-ctx.Done():
	case <-b.stop:
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Publish stamps payload with the current time and offers it to every
// subscriber.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shut {
		return
	}
	event := Event[T]{Type: eventType, Payload: payload, Timestamp: b.now()}
	for _, sub := range b.subs {
		select {
		case sub.ch <- event:
		default:
			sub.dropped++
		}
	}
}

// Close closes every subscriber channel. Later calls do nothing.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shut {
		return
	}
	b.shut = true
	close(b.stop)
	for id, sub := range b.subs {
		close(sub.ch)
		delete(b.subs, id)
	}
}

// SubscriberCount reports how many subscribers are registered.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dropped reports how many events live subscribers have missed because
// their queue was full.
func (b *Broker[T]) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, sub := range b.subs {
		total += sub.dropped
	}
	return total
}
