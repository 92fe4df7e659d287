// Package observable provides notification primitives for plain Go
// values: multicast subjects, equality-gated value cells and
// observable membership collections.
//
// # Core Types
//
// Subject[T] is an ordered multicast dispatcher:
//
//	var clicks observable.Subject[string]
//	sub := clicks.Subscribe(func(id string) { fmt.Println("clicked", id) })
//	clicks.Notify("save")
//	sub.Unsubscribe()
//
// Value[T] is a cell that announces real changes and swallows no-ops:
//
//	temp := observable.NewValue(21.5)
//	temp.SubscribeValue(func(c float64) { fmt.Println("now", c) })
//	temp.Set(21.5) // equal value, observers stay silent
//	temp.Set(22.0) // observers run
//
// Collection[T, C] adds element-granular notifications on top of a
// membership Container:
//
//	tags := observable.NewSet("alpha", "beta")
//	tags.SubscribeChanges(func(tag string, inserted bool) {
//	    fmt.Println(tag, inserted)
//	})
//	tags.Insert("gamma")
//
// Computed derives a read-only cell from other observables:
//
//	total := observable.Computed(func() int { return a.Get() + b.Get() }, a, b)
//
// # Notification Order
//
// A successful collection mutation notifies in a fixed order: element
// observers first, then void observers, then value observers with the
// whole container. A successful value store notifies void observers,
// then value observers. Dispatch snapshots the observer list when it
// starts; subscriptions added or removed mid-pass take effect on the
// next pass.
//
// # Thread Safety
//
// Nothing in this package is synchronized internally. A subject, cell
// or collection belongs to one goroutine at a time; sharing one across
// goroutines requires external synchronization. The bridge packages
// (feed, instrument, snapshot) do their own locking at their
// boundaries and keep core access single-threaded.
package observable
