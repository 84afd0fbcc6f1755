// Package observable provides a concurrency-safe value that notifies
// subscribers whenever it is replaced.
package observable

import "sync"

// Value holds a T behind a sync.RWMutex and fans every change out to
// subscribers. Reads (Get) take a shared lock; writes (Set, Update) are
// serialized.
//
// Subscribers are called in registration order, one change at a time, with
// the value that was just stored. A subscriber must not call Set or Update
// on the same Value synchronously; hand that work to a goroutine.
type Value[T any] struct {
	mu  sync.RWMutex
	val T

	// notifyMu keeps deliveries ordered: a second change waits until every
	// subscriber has seen the first.
	notifyMu sync.Mutex
	subsMu   sync.Mutex
	nextID   int
	subs     []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a Value initialized with val.
func New[T any](val T) *Value[T] {
	return &Value[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set replaces the current value and notifies subscribers.
func (v *Value[T]) Set(val T) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	v.val = val
	v.mu.Unlock()

	v.notify(val)
}

// Update applies fn to the value under the write lock. If fn returns an
// error the value is left as it was, nobody is notified, and the error is
// returned.
func (v *Value[T]) Update(fn func(*T) error) error {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	next := v.val
	if err := fn(&next); err != nil {
		v.mu.Unlock()
		return err
	}
	v.val = next
	v.mu.Unlock()

	v.notify(next)
	return nil
}

// Subscribe registers fn for future changes and returns a function that
// removes it. The returned function is safe to call more than once.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.subsMu.Lock()
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.subsMu.Lock()
			defer v.subsMu.Unlock()
			for i, s := range v.subs {
				if s.id == id {
					v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (v *Value[T]) notify(val T) {
	v.subsMu.Lock()
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	v.subsMu.Unlock()

	for _, s := range subs {
		s.fn(val)
	}
}
