package observable

// Observable is the subscription surface shared by cells and
// collections: anything that can announce "something changed" without
// saying what.
type Observable interface {
	Subscribe(fn func()) *Subscription
}

// Computed returns a read-only cell holding compute's result,
// recomputed after every change on any source. Results pass through
// the usual equality gate, so a recomputation that produces an equal
// value stays silent downstream. The registrations on the sources last
// for the sources' lifetime.
//
// compute runs once before Computed returns. Cycles between computed
// cells are the caller's responsibility to avoid.
func Computed[T any](compute func() T, sources ...Observable) *Value[T] {
	return NewBound(func(set func(T) bool) {
		set(compute())
		for _, src := range sources {
			if src == nil {
				continue
			}
			src.Subscribe(func() { set(compute()) }).Release()
		}
	})
}
