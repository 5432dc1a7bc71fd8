package record

import "fmt"

// Record is a value holder with change notification. It owns a 32-bit
// integer value (default 0), an optional name (default absent), and an
// ordered list of value listeners.
//
// Record is NOT thread-safe; see the package documentation.
type Record struct {
	value     int32
	name      string
	hasName   bool
	listeners []listenerEntry
	nextID    int
	disposed  bool
}

type listenerEntry struct {
	id int
	fn func(int32)
}

// New creates a record with value 0 and no name.
func New() *Record {
	return &Record{}
}

// NewWithValue creates a record with the given initial value and no name.
// No notification fires for the initial value.
func NewWithValue(initial int32) *Record {
	return &Record{value: initial}
}

// Value returns the current value.
func (r *Record) Value() int32 {
	r.checkAlive("Value")
	return r.value
}

// SetValue updates the value and notifies listeners. If the new value equals
// the current one, SetValue is a no-op and nothing fires. Listeners are
// invoked synchronously in registration order with the new value; the value
// is assigned before the first listener runs, so listeners observe the new
// state. Panics raised by a listener propagate to the caller.
func (r *Record) SetValue(value int32) {
	r.checkAlive("SetValue")
	if r.value == value {
		return
	}
	r.value = value
	r.EmitValueChanged(value)
}

// Name returns the current name. The second return is false when no name
// has been set.
func (r *Record) Name() (string, bool) {
	r.checkAlive("Name")
	return r.name, r.hasName
}

// SetName sets the name. Setting the current name again is a no-op.
// Name changes never fire value listeners; only the value field carries a
// change signal.
func (r *Record) SetName(name string) {
	r.checkAlive("SetName")
	if r.hasName && r.name == name {
		return
	}
	r.name = name
	r.hasName = true
}

// ClearName removes the name. Clearing an absent name is a no-op.
func (r *Record) ClearName() {
	r.checkAlive("ClearName")
	r.name = ""
	r.hasName = false
}

// Increment raises the value by 1, with SetValue's notification contract.
func (r *Record) Increment() {
	r.checkAlive("Increment")
	r.SetValue(r.value + 1)
}

// Decrement lowers the value by 1, with SetValue's notification contract.
func (r *Record) Decrement() {
	r.checkAlive("Decrement")
	r.SetValue(r.value - 1)
}

// String returns a textual representation of the record:
// Record(name='N', value=V) when a name is set, Record(value=V) otherwise.
func (r *Record) String() string {
	r.checkAlive("String")
	if r.hasName {
		return fmt.Sprintf("Record(name='%s', value=%d)", r.name, r.value)
	}
	return fmt.Sprintf("Record(value=%d)", r.value)
}

// AddListener registers a callback that receives each new value.
// Listeners fire in registration order and are not deduplicated; registering
// the same function twice means it fires twice. Returns an unsubscribe
// function. Registration does not touch the record's value or name.
func (r *Record) AddListener(fn func(int32)) func() {
	r.checkAlive("AddListener")
	if fn == nil {
		return func() {}
	}

	id := r.nextID
	r.nextID++
	r.listeners = append(r.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		for i, entry := range r.listeners {
			if entry.id == id {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (r *Record) ListenerCount() int {
	r.checkAlive("ListenerCount")
	return len(r.listeners)
}

// EmitValueChanged invokes all listeners with the given value, bypassing
// change-detection and leaving the stored value untouched. Use it to
// re-announce current state:
//
//	rec.EmitValueChanged(rec.Value())
func (r *Record) EmitValueChanged(value int32) {
	r.checkAlive("EmitValueChanged")
	// Snapshot so listeners that unsubscribe mid-notification do not
	// disturb the iteration.
	listeners := make([]func(int32), len(r.listeners))
	for i, entry := range r.listeners {
		listeners[i] = entry.fn
	}
	for _, fn := range listeners {
		fn(value)
	}
}

// Dispose releases the record's listeners. Dispose is idempotent; every
// other operation panics once the record is disposed.
func (r *Record) Dispose() {
	r.listeners = nil
	r.disposed = true
}

func (r *Record) checkAlive(op string) {
	if r.disposed {
		panic("record: " + op + " called on disposed Record")
	}
}
