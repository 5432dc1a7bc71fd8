package reactive

import "sync"

// Listenable is anything that can broadcast change notifications.
// AddListener returns an unsubscribe function that removes the listener.
type Listenable interface {
	AddListener(fn func()) func()
}

// Disposable is anything that holds resources requiring explicit release.
type Disposable interface {
	Dispose()
}

// Notifier broadcasts valueless change notifications to registered listeners.
// Listeners fire synchronously, in registration order, on the goroutine that
// calls Notify. Notifier is safe for concurrent use.
type Notifier struct {
	mu        sync.RWMutex
	listeners []notifierEntry
	nextID    int
}

type notifierEntry struct {
	id int
	fn func()
}

// NewNotifier creates a notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers a callback that fires on every Notify.
// Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, notifierEntry{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, entry := range n.listeners {
			if entry.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify calls all registered listeners in registration order.
func (n *Notifier) Notify() {
	n.mu.RLock()
	listeners := make([]func(), len(n.listeners))
	for i, entry := range n.listeners {
		listeners[i] = entry.fn
	}
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}

// Dispose removes all listeners. The notifier remains usable but silent
// until new listeners are added.
func (n *Notifier) Dispose() {
	n.mu.Lock()
	n.listeners = nil
	n.mu.Unlock()
}

// ControllerBase provides listener management for custom controllers.
// Embed it in a controller struct and call NotifyListeners after mutating
// state:
//
//	type myController struct {
//	    reactive.ControllerBase
//	    value int
//	}
//
//	func (c *myController) SetValue(v int) {
//	    c.value = v
//	    c.NotifyListeners()
//	}
type ControllerBase struct {
	notifier Notifier
}

// AddListener registers a callback that fires on NotifyListeners.
// Returns an unsubscribe function.
func (c *ControllerBase) AddListener(fn func()) func() {
	return c.notifier.AddListener(fn)
}

// NotifyListeners calls all registered listeners in registration order.
func (c *ControllerBase) NotifyListeners() {
	c.notifier.Notify()
}

// ListenerCount returns the number of registered listeners.
func (c *ControllerBase) ListenerCount() int {
	return c.notifier.ListenerCount()
}

// Dispose removes all listeners.
func (c *ControllerBase) Dispose() {
	c.notifier.Dispose()
}
