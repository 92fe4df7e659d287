package feed

import (
	"encoding/json"

	"github.com/johnmwilson82/observable"
)

// Source is a feed input: a snapshot of current state plus a way to
// hear about changes. Snapshot and the subscription callback both run
// on the goroutine that mutates the underlying observable.
type Source interface {
	Snapshot() (json.RawMessage, error)
	Subscribe(fn func()) *observable.Subscription
}

type funcSource struct {
	snapshot  func() (json.RawMessage, error)
	subscribe func(fn func()) *observable.Subscription
}

func (s *funcSource) Snapshot() (json.RawMessage, error) {
	return s.snapshot()
}

func (s *funcSource) Subscribe(fn func()) *observable.Subscription {
	return s.subscribe(fn)
}

// ValueSource adapts a cell. Snapshots are the JSON encoding of the
// current value.
func ValueSource[T any](v *observable.Value[T]) Source {
	return &funcSource{
		snapshot: func() (json.RawMessage, error) {
			return json.Marshal(v.Get())
		},
		subscribe: v.Subscribe,
	}
}

// CollectionSource adapts a collection. Snapshots are the JSON
// encoding of the element slice, in no particular order.
func CollectionSource[T any, C observable.Container[T]](col *observable.Collection[T, C]) Source {
	return &funcSource{
		snapshot: func() (json.RawMessage, error) {
			return json.Marshal(col.Elements())
		},
		subscribe: col.Subscribe,
	}
}
