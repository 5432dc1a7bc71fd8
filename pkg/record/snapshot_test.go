package record

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-drift/reactive/pkg/errors"
)

func TestSnapshotRoundTrip(t *testing.T) {
	rec := NewWithValue(25)
	rec.SetName("Property Test")

	restored := FromSnapshot(rec.Snapshot())

	if restored.Value() != 25 {
		t.Errorf("Value() = %d, want 25", restored.Value())
	}
	if name, ok := restored.Name(); !ok || name != "Property Test" {
		t.Errorf("Name() = %q, %v, want %q, true", name, ok, "Property Test")
	}
	if restored.ListenerCount() != 0 {
		t.Error("restored record should have no listeners")
	}
}

func TestSnapshotWithoutName(t *testing.T) {
	rec := NewWithValue(-1)

	s := rec.Snapshot()
	if s.Name != nil {
		t.Errorf("Snapshot().Name = %v, want nil", *s.Name)
	}

	restored := FromSnapshot(s)
	if _, ok := restored.Name(); ok {
		t.Error("restored record should have no name")
	}
}

func TestUnmarshalSnapshots(t *testing.T) {
	data := []byte(strings.TrimSpace(`
- name: Counter
  value: 9
- value: 42
`))

	records, err := UnmarshalSnapshots(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshots returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if got := records[0].String(); got != "Record(name='Counter', value=9)" {
		t.Errorf("records[0] = %q", got)
	}
	if got := records[1].String(); got != "Record(value=42)" {
		t.Errorf("records[1] = %q", got)
	}
}

func TestUnmarshalSnapshotsInvalidYAML(t *testing.T) {
	_, err := UnmarshalSnapshots([]byte("{not a sequence"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindSnapshot {
		t.Errorf("error = %v, want kind %v", err, errors.KindSnapshot)
	}
}

func TestMarshalSnapshots(t *testing.T) {
	named := NewWithValue(9)
	named.SetName("Counter")
	records := []*Record{named, NewWithValue(42)}

	data, err := MarshalSnapshots(records)
	if err != nil {
		t.Fatalf("MarshalSnapshots returned error: %v", err)
	}

	restored, err := UnmarshalSnapshots(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshots returned error: %v", err)
	}
	if len(restored) != 2 {
		t.Fatalf("got %d records, want 2", len(restored))
	}
	for i := range records {
		if restored[i].String() != records[i].String() {
			t.Errorf("restored[%d] = %q, want %q", i, restored[i].String(), records[i].String())
		}
	}
}
