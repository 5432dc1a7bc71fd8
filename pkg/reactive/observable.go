package reactive

import "sync"

// Observable holds a value and notifies typed listeners when it is set.
// Observable is thread-safe: Value, Set, and AddListener may be called from
// any goroutine. Listeners fire synchronously, in registration order, on the
// goroutine that calls Set.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	equals    func(a, b T) bool
	listeners []observableEntry[T]
	nextID    int
}

type observableEntry[T any] struct {
	id int
	fn func(T)
}

// NewObservable creates an observable with the given initial value.
// Every Set notifies listeners; use NewObservableWithEquality to skip
// notifications when the value has not changed.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable that only notifies when
// equals reports the new value as different from the current one.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equals: equals}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set updates the value and notifies listeners. If the observable was created
// with an equality function and the new value equals the current one, Set is
// a no-op.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := o.snapshotLocked()
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// Update applies a transformation to the current value.
// Equivalent to o.Set(transform(o.Value())): the transform runs outside the
// observable's lock, so it may read the observable, and concurrent updaters
// may interleave between the read and the write.
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.Value()))
}

// AddListener registers a callback that receives each new value.
// Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners = append(o.listeners, observableEntry[T]{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, entry := range o.listeners {
			if entry.id == id {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

// snapshotLocked copies the listener functions so they can be invoked
// outside the lock. Callers must hold o.mu.
func (o *Observable[T]) snapshotLocked() []func(T) {
	listeners := make([]func(T), len(o.listeners))
	for i, entry := range o.listeners {
		listeners[i] = entry.fn
	}
	return listeners
}
