package observable

// Value is an observable cell holding a single T. Every mutation
// passes through an equality gate: storing a value equal to the
// current one is a complete no-op, storing a different one fires the
// cell's void observers and then its value observers, exactly once
// each.
//
// A cell is either free or bound. Free cells accept Set and Update.
// Bound cells are fed by an updater installed at construction and
// reject public mutation with ErrReadOnly.
//
// The zero value is a free cell holding T's zero value.
type Value[T any] struct {
	void Subject[struct{}]
	vals Subject[T]

	value T

	// equal decides whether a store is a change. Nil means
	// defaultEquals.
	equal func(T, T) bool

	bound bool
}

// NewValue returns a free cell holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// NewBound returns a cell whose only writer is the updater wired up by
// bind. bind runs once before NewBound returns and receives the
// private setter; the setter stores through the same equality gate as
// Set and reports whether observers fired. Public mutation of the
// returned cell fails with ErrReadOnly.
func NewBound[T any](bind func(set func(T) bool)) *Value[T] {
	v := &Value[T]{bound: true}
	if bind != nil {
		bind(v.store)
	}
	return v
}

// WithEquals installs eq as the cell's equality predicate and returns
// the cell. Call it right after construction, before the cell is
// shared. The predicate must be pure: no mutation, no notification.
func (v *Value[T]) WithEquals(eq func(T, T) bool) *Value[T] {
	v.equal = eq
	return v
}

// Get returns the current value. It never mutates the cell.
func (v *Value[T]) Get() T {
	return v.value
}

// Bound reports whether the cell is fed by an updater and therefore
// rejects public mutation.
func (v *Value[T]) Bound() bool {
	return v.bound
}

// Set stores value. On a bound cell it returns ErrReadOnly without
// storing or notifying. Otherwise a value equal to the current one
// changes nothing and fires nobody, while a different one is stored
// and announced. The boolean reports whether a change fired.
func (v *Value[T]) Set(value T) (bool, error) {
	if v.bound {
		return false, ErrReadOnly
	}
	return v.store(value), nil
}

// MustSet is Set for call sites that know the cell is free. It panics
// on ErrReadOnly.
func (v *Value[T]) MustSet(value T) bool {
	changed, err := v.Set(value)
	if err != nil {
		panic(err)
	}
	return changed
}

// Update stores fn(current) through the same gate as Set.
func (v *Value[T]) Update(fn func(T) T) (bool, error) {
	if v.bound {
		return false, ErrReadOnly
	}
	return v.store(fn(v.value)), nil
}

// Subscribe registers fn to run after every change, without the new
// value.
func (v *Value[T]) Subscribe(fn func()) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	return v.void.Subscribe(func(struct{}) { fn() })
}

// SubscribeValue registers fn to receive every new value.
func (v *Value[T]) SubscribeValue(fn func(T)) *Subscription {
	return v.vals.Subscribe(fn)
}

// SubscribeAndCall registers fn like Subscribe and additionally
// invokes it once, immediately. The immediate call does not count as a
// change.
func (v *Value[T]) SubscribeAndCall(fn func()) *Subscription {
	sub := v.Subscribe(fn)
	if fn != nil {
		fn()
	}
	return sub
}

// SubscribeValueAndCall registers fn like SubscribeValue and invokes
// it once, immediately, with the current value.
func (v *Value[T]) SubscribeValueAndCall(fn func(T)) *Subscription {
	sub := v.SubscribeValue(fn)
	if fn != nil {
		fn(v.value)
	}
	return sub
}

// Close closes both notification channels. Outstanding subscriptions
// become inert. The stored value remains readable.
func (v *Value[T]) Close() {
	v.void.Close()
	v.vals.Close()
}

// store is the gate every write funnels through: compare, assign,
// notify void observers, notify value observers.
func (v *Value[T]) store(value T) bool {
	if v.equals(v.value, value) {
		return false
	}
	v.value = value
	v.notify()
	return true
}

// notify announces the current value unconditionally. Collection
// mutators use it after in-place container edits, where the equality
// gate cannot apply.
func (v *Value[T]) notify() {
	v.void.Notify(struct{}{})
	v.vals.Notify(v.value)
}

func (v *Value[T]) equals(a, b T) bool {
	if v.equal != nil {
		return v.equal(a, b)
	}
	return defaultEquals(a, b)
}
