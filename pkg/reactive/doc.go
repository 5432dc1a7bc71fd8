// Package reactive provides value-change notification primitives.
//
// This package defines the foundational types for reactive state: Listenable,
// Notifier, Observable, and ControllerBase. They are deliberately small: a
// listener is a plain function, a subscription is the closure returned by
// AddListener, and notification is synchronous on the caller's goroutine.
//
// # Listenable
//
// Listenable is the minimal subscription surface. Anything that can broadcast
// "something changed" implements it:
//
//	unsub := controller.AddListener(func() {
//	    refresh()
//	})
//	defer unsub()
//
// # Notifier
//
// Notifier is the basic Listenable implementation. It holds no value; callers
// invoke Notify to fire every registered listener in registration order:
//
//	refresh := reactive.NewNotifier()
//	refresh.AddListener(func() { reload() })
//	refresh.Notify()
//
// # Observable
//
// Observable holds a value and notifies typed listeners when it changes.
// Observable is thread-safe and can be shared across goroutines:
//
//	counter := reactive.NewObservable(0)
//	counter.AddListener(func(v int) { fmt.Println("now", v) })
//	counter.Set(5)
//
// NewObservableWithEquality adds change-detection so that setting an equal
// value does not notify.
//
// # Controllers
//
// Long-lived mutable objects embed ControllerBase to get listener management
// without boilerplate:
//
//	type ScrollController struct {
//	    reactive.ControllerBase
//	    offset float64
//	}
//
//	func (c *ScrollController) SetOffset(offset float64) {
//	    c.offset = offset
//	    c.NotifyListeners()
//	}
package reactive
