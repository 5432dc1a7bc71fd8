// Package record implements an observable record: a value holder with two
// fields and change notification.
//
// A Record owns a 32-bit integer value and an optional name. Setting the
// value applies change-detection: listeners fire only when the stored value
// actually changes, synchronously and in registration order, and always
// observe the already-updated value. Name changes never fire value listeners;
// only the numeric field carries a change signal.
//
//	rec := record.NewWithValue(10)
//	rec.SetName("Counter")
//
//	unsub := rec.AddListener(func(v int32) {
//	    fmt.Println("value is now", v)
//	})
//	defer unsub()
//
//	rec.Increment()     // notifies with 11
//	rec.SetValue(11)    // no-op, no notification
//
// Records additionally support string-keyed property access over a closed
// identifier set (see Get and Set) and YAML snapshots for saving and seeding
// record state (see Snapshot).
//
// Record is NOT thread-safe. It is designed for single-owner, single-thread
// use; guard it externally if it must cross goroutines. After Dispose, any
// further operation panics.
package record
