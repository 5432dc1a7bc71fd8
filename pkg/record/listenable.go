package record

import "github.com/go-drift/reactive/pkg/reactive"

// Listenable returns a reactive.Listenable view of the record's value
// changes, so a record can plug into anything that accepts the primitive
// interface. Listeners added through the view join the record's ordered
// listener list and fire under the same contract as AddListener; they do
// not fire for name changes.
func (r *Record) Listenable() reactive.Listenable {
	return listenableRecord{r}
}

type listenableRecord struct {
	r *Record
}

var _ reactive.Listenable = listenableRecord{}

func (l listenableRecord) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return l.r.AddListener(func(int32) { fn() })
}
