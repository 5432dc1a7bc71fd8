// Command showcase demonstrates the reactive library: observed records,
// change notification, string-keyed property access, and YAML snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/reactive/pkg/reactive"
	"github.com/go-drift/reactive/pkg/record"
)

func main() {
	demonstrateBasics()
	demonstrateListeners()
	demonstrateProperties()
	demonstrateSnapshots()
	demonstratePrimitives()
}

func section(title string) {
	fmt.Println()
	fmt.Println("==", title, "==")
}

func demonstrateBasics() {
	section("Basics")

	rec := record.New()
	withValue := record.NewWithValue(42)

	fmt.Println("fresh record:", rec)
	fmt.Println("with initial value:", withValue)

	rec.SetName("Counter")
	rec.SetValue(9)
	fmt.Println("after mutation:", rec)
}

func demonstrateListeners() {
	section("Listeners")

	rec := record.NewWithValue(10)
	rec.SetName("Signal Tester")

	unsub1 := rec.AddListener(func(v int32) {
		fmt.Println("  handler 1: received", v)
	})
	defer unsub1()
	unsub2 := rec.AddListener(func(v int32) {
		fmt.Println("  handler 2: value is now", v)
	})
	defer unsub2()

	fmt.Println("increment:")
	rec.Increment()
	fmt.Println("decrement:")
	rec.Decrement()
	fmt.Println("setting the same value (nothing should fire):")
	rec.SetValue(rec.Value())
	fmt.Println("force-notify without mutation:")
	rec.EmitValueChanged(rec.Value())
}

func demonstrateProperties() {
	section("Properties")

	rec := record.New()

	if err := rec.Set(record.PropValue, 150); err != nil {
		fmt.Fprintln(os.Stderr, "set value:", err)
	}
	if err := rec.Set(record.PropName, "GObject Style"); err != nil {
		fmt.Fprintln(os.Stderr, "set name:", err)
	}

	for _, prop := range record.Properties() {
		v, err := rec.Get(prop)
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			continue
		}
		fmt.Printf("  %s: %v\n", prop, v)
	}

	// Unknown identifiers fail with a structured error.
	if err := rec.Set("color", "red"); err != nil {
		fmt.Println("  expected failure:", err)
	}
}

func demonstrateSnapshots() {
	section("Snapshots")

	seed := []byte(`
- name: Object 1
  value: 100
- name: Object 2
  value: 12
- value: 7
`)

	records, err := record.UnmarshalSnapshots(seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
		return
	}
	for _, rec := range records {
		rec.Increment()
		fmt.Println(" ", rec)
	}

	out, err := record.MarshalSnapshots(records)
	if err != nil {
		fmt.Fprintln(os.Stderr, "save:", err)
		return
	}
	fmt.Print(string(out))
}

func demonstratePrimitives() {
	section("Primitives")

	counter := reactive.NewObservable(0)
	unsub := counter.AddListener(func(v int) {
		fmt.Println("  observable now", v)
	})
	defer unsub()
	counter.Set(5)
	counter.Update(func(v int) int { return v * 2 })

	refresh := reactive.NewNotifier()
	refresh.AddListener(func() { fmt.Println("  refresh requested") })
	refresh.Notify()
}
