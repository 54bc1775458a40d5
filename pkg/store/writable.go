// Package store provides an observable value cell: a container that holds
// a value and notifies subscribers every time it is written.
package store

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Subscriber receives the value held by a store.
type Subscriber[T any] func(T)

// Unsubscriber cancels a subscription. Calling it more than once is a no-op.
type Unsubscriber func()

// Readable is the read side of a store.
type Readable[T any] interface {
	// Get returns the current value.
	Get() T

	// Subscribe registers fn and calls it immediately with the current
	// value, then again after every write.
	Subscribe(fn Subscriber[T]) Unsubscriber
}

// subscription is one registered callback. active is cleared on
// unsubscribe so a round already in flight skips it.
type subscription[T any] struct {
	fn     Subscriber[T]
	active atomic.Bool
}

// delivery is a value waiting to be handed to a set of subscribers.
type delivery[T any] struct {
	value T
	subs  []*subscription[T]
}

// Writable holds a value of type T and notifies subscribers on every write.
//
// Every Set or Update notifies all currently registered subscribers in
// registration order, without comparing the new value to the old one.
// Callbacks run on the writer's goroutine with no lock held. A write made
// from inside a callback is queued and delivered once the current round
// finishes, before the outermost write returns.
type Writable[T any] struct {
	mu       sync.Mutex
	value    T
	subs     []*subscription[T]
	pending  []delivery[T]
	draining bool
}

var _ Readable[int] = (*Writable[int])(nil)

// New returns a Writable holding initial.
func New[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Set replaces the current value with v and notifies subscribers.
func (w *Writable[T]) Set(v T) {
	w.mu.Lock()
	w.value = v
	w.enqueueLocked(v)
	w.drain()
}

// Update replaces the current value with fn applied to it and notifies
// subscribers. fn runs under the store lock and must not call back into
// the store.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	w.value = fn(w.value)
	w.enqueueLocked(w.value)
	w.drain()
}

// Subscribe registers fn, calls it with the current value, and returns a
// function that removes the registration.
//
// The first call is queued like a write, so fn never sees a later value
// before the current one. It runs before Subscribe returns unless a
// delivery round is already in progress, from a callback or another
// goroutine; that round makes the call once earlier writes are delivered.
func (w *Writable[T]) Subscribe(fn Subscriber[T]) Unsubscriber {
	sub := &subscription[T]{fn: fn}
	sub.active.Store(true)

	w.mu.Lock()
	w.subs = append(w.subs, sub)
	w.pending = append(w.pending, delivery[T]{value: w.value, subs: []*subscription[T]{sub}})
	w.drain()

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(sub) })
	}
}

// Subscribers returns the number of active subscriptions.
func (w *Writable[T]) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

func (w *Writable[T]) remove(sub *subscription[T]) {
	sub.active.Store(false)

	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.subs {
		if s == sub {
			w.subs = slices.Delete(w.subs, i, i+1)
			return
		}
	}
}

// enqueueLocked snapshots the subscriber list for v. The caller holds w.mu.
func (w *Writable[T]) enqueueLocked(v T) {
	subs := make([]*subscription[T], len(w.subs))
	copy(subs, w.subs)
	w.pending = append(w.pending, delivery[T]{value: v, subs: subs})
}

// drain delivers queued values in order. It is entered with w.mu held and
// returns with it released. Only one goroutine drains at a time; others
// leave their delivery on the queue for it.
func (w *Writable[T]) drain() {
	if w.draining {
		w.mu.Unlock()
		return
	}
	w.draining = true
	defer func() {
		if r := recover(); r != nil {
			// A panicking subscriber drops the rest of the queue.
			w.mu.Lock()
			w.pending = nil
			w.draining = false
			w.mu.Unlock()
			panic(r)
		}
	}()

	for len(w.pending) > 0 {
		d := w.pending[0]
		w.pending[0] = delivery[T]{}
		w.pending = w.pending[1:]
		w.mu.Unlock()

		for _, sub := range d.subs {
			if sub.active.Load() {
				sub.fn(d.value)
			}
		}

		w.mu.Lock()
	}

	w.pending = nil
	w.draining = false
	w.mu.Unlock()
}
