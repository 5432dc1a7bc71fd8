package record

import (
	"gopkg.in/yaml.v3"

	"github.com/go-drift/reactive/pkg/errors"
)

// Snapshot is the serializable state of a record: the value and, when set,
// the name. Listeners are not part of a snapshot.
type Snapshot struct {
	Name  *string `yaml:"name,omitempty"`
	Value int32   `yaml:"value"`
}

// Snapshot captures the record's current state.
func (r *Record) Snapshot() Snapshot {
	r.checkAlive("Snapshot")
	s := Snapshot{Value: r.value}
	if r.hasName {
		name := r.name
		s.Name = &name
	}
	return s
}

// FromSnapshot creates a record holding the snapshot's state. The record has
// no listeners; no notification fires for the restored value.
func FromSnapshot(s Snapshot) *Record {
	r := NewWithValue(s.Value)
	if s.Name != nil {
		r.SetName(*s.Name)
	}
	return r
}

// UnmarshalSnapshots decodes a YAML sequence of snapshots into fresh records.
func UnmarshalSnapshots(data []byte) ([]*Record, error) {
	var snapshots []Snapshot
	if err := yaml.Unmarshal(data, &snapshots); err != nil {
		return nil, &errors.Error{
			Op:   "record.UnmarshalSnapshots",
			Kind: errors.KindSnapshot,
			Err:  err,
		}
	}
	records := make([]*Record, len(snapshots))
	for i, s := range snapshots {
		records[i] = FromSnapshot(s)
	}
	return records, nil
}

// MarshalSnapshots encodes the records' current state as a YAML sequence.
func MarshalSnapshots(records []*Record) ([]byte, error) {
	snapshots := make([]Snapshot, len(records))
	for i, r := range records {
		snapshots[i] = r.Snapshot()
	}
	data, err := yaml.Marshal(snapshots)
	if err != nil {
		return nil, &errors.Error{
			Op:   "record.MarshalSnapshots",
			Kind: errors.KindSnapshot,
			Err:  err,
		}
	}
	return data, nil
}
