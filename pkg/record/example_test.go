package record_test

import (
	"fmt"

	"github.com/go-drift/reactive/pkg/record"
)

// This example shows the basic lifecycle: construct a record, listen for
// value changes, and mutate it. Setting the same value twice only notifies
// once.
func ExampleRecord() {
	rec := record.NewWithValue(10)
	rec.SetName("Counter")

	unsub := rec.AddListener(func(v int32) {
		fmt.Printf("value changed to %d\n", v)
	})

	rec.Increment()   // notifies with 11
	rec.SetValue(11)  // same value, no notification
	rec.Decrement()   // notifies with 10

	fmt.Println(rec)

	// Clean up when done
	unsub()

	// Output:
	// value changed to 11
	// value changed to 10
	// Record(name='Counter', value=10)
}

// This example shows force-notification. EmitValueChanged re-announces a
// value without mutating the record.
func ExampleRecord_EmitValueChanged() {
	rec := record.NewWithValue(7)

	rec.AddListener(func(v int32) {
		fmt.Printf("announced %d\n", v)
	})

	rec.EmitValueChanged(rec.Value())
	fmt.Printf("stored value is still %d\n", rec.Value())

	// Output:
	// announced 7
	// stored value is still 7
}

// This example shows string-keyed property access over the record's closed
// property set.
func ExampleRecord_Set() {
	rec := record.New()

	if err := rec.Set(record.PropValue, 150); err != nil {
		fmt.Println("set failed:", err)
	}
	if err := rec.Set(record.PropName, "GObject Style"); err != nil {
		fmt.Println("set failed:", err)
	}

	value, _ := rec.Get(record.PropValue)
	name, _ := rec.Get(record.PropName)
	fmt.Printf("value=%v name=%v\n", value, name)

	// Output:
	// value=150 name=GObject Style
}

// This example shows seeding records from a YAML snapshot document.
func ExampleUnmarshalSnapshots() {
	data := []byte(`
- name: Object 1
  value: 100
- value: 12
`)

	records, err := record.UnmarshalSnapshots(data)
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	for _, rec := range records {
		fmt.Println(rec)
	}

	// Output:
	// Record(name='Object 1', value=100)
	// Record(value=12)
}
