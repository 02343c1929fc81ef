// Package pubsub implements the change streams the stores notify their
// consumers on: synchronous, in subscription order, one delivery per publish.
package pubsub

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Broadcaster fans a value out to all current subscribers. Delivery happens
// in-line with Publish; a subscriber that panics is isolated so the remaining
// subscribers still get the value.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

func New[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{}
}

// Subscribe registers fn and returns a function that removes it again.
func (b *Broadcaster[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to every subscriber registered at call time.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	subs := make([]subscriber[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		deliver(s.fn, v)
	}
}

func deliver[T any](fn func(T), v T) {
	defer func() {
		_ = recover()
	}()
	fn(v)
}
