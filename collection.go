package observable

// elementChange is the payload carried on a collection's element
// channel.
type elementChange[T any] struct {
	element  T
	inserted bool
}

// Collection is an observable membership container. It extends Value
// with an element channel announcing individual insertions and
// removals. On every successful mutation the element observers run
// first, then the void observers, then the value observers with the
// whole container; the container is already updated when observers
// run.
//
// The whole-container channels are inherited from Value: Subscribe,
// SubscribeValue, their AndCall forms, and Set for bulk replacement.
// Bulk replacement fires only the whole-container channels, gated on
// container equality.
//
// Collections are used through the pointer returned by their
// constructor; copying one aliases its container.
type Collection[T any, C Container[T]] struct {
	Value[C]

	changes Subject[elementChange[T]]
}

// NewCollection returns a collection driving container.
func NewCollection[T any, C Container[T]](container C) *Collection[T, C] {
	c := &Collection[T, C]{}
	c.value = container
	c.equal = containerEquals[T, C]
	return c
}

// NewSet returns a HashSet-backed collection holding elems.
func NewSet[T comparable](elems ...T) *Collection[T, *HashSet[T]] {
	return NewCollection[T](NewHashSet(elems...))
}

// NewBoundCollection returns a collection whose container is replaced
// only by the updater wired up by bind. The setter swaps in a whole
// new container through the container equality gate and fires the
// whole-container channels. Insert, Emplace and Remove on the result
// fail with ErrReadOnly.
func NewBoundCollection[T any, C Container[T]](initial C, bind func(set func(C) bool)) *Collection[T, C] {
	c := &Collection[T, C]{}
	c.value = initial
	c.equal = containerEquals[T, C]
	c.bound = true
	if bind != nil {
		bind(c.Value.store)
	}
	return c
}

// WithEquals installs eq as the container equality predicate used by
// bulk replacement and returns the collection.
func (c *Collection[T, C]) WithEquals(eq func(C, C) bool) *Collection[T, C] {
	c.Value.WithEquals(eq)
	return c
}

// SubscribeChanges registers fn on the element channel. fn receives
// the affected element, with true for an insertion and false for a
// removal.
func (c *Collection[T, C]) SubscribeChanges(fn func(element T, inserted bool)) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	return c.changes.Subscribe(func(ec elementChange[T]) { fn(ec.element, ec.inserted) })
}

// Insert adds v to the container. On a bound collection it returns
// ErrReadOnly. A rejected insert (v already present) changes nothing
// and fires nobody. A successful insert announces (v, true) on the
// element channel, then runs the void observers and the value
// observers.
func (c *Collection[T, C]) Insert(v T) (bool, error) {
	if c.bound {
		return false, ErrReadOnly
	}
	if !c.value.Insert(v) {
		return false, nil
	}
	c.changes.Notify(elementChange[T]{element: v, inserted: true})
	c.Value.notify()
	return true, nil
}

// Emplace adds v exactly like Insert. The separate name mirrors
// containers that distinguish in-place construction from insertion;
// the observable contract is identical.
func (c *Collection[T, C]) Emplace(v T) (bool, error) {
	return c.Insert(v)
}

// Remove erases v from the container. On a bound collection it returns
// ErrReadOnly. A miss changes nothing and fires nobody. A hit
// announces the stored element and false on the element channel, then
// runs the void observers and the value observers.
func (c *Collection[T, C]) Remove(v T) (bool, error) {
	if c.bound {
		return false, ErrReadOnly
	}
	stored, ok := c.value.Remove(v)
	if !ok {
		return false, nil
	}
	c.changes.Notify(elementChange[T]{element: stored, inserted: false})
	c.Value.notify()
	return true, nil
}

// Contains reports membership of v.
func (c *Collection[T, C]) Contains(v T) bool {
	return c.value.Contains(v)
}

// Len returns the number of elements.
func (c *Collection[T, C]) Len() int {
	return c.value.Len()
}

// Elements returns the container's elements in the container's order.
func (c *Collection[T, C]) Elements() []T {
	return c.value.Values()
}

// Close closes the element channel and the whole-container channels.
func (c *Collection[T, C]) Close() {
	c.changes.Close()
	c.Value.Close()
}

func containerEquals[T any, C Container[T]](a, b C) bool {
	return a.Equal(b)
}
