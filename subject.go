package observable

// slot pairs an observer with the identifier naming its registration.
// Identifiers are per subject, monotonically increasing and never
// reused, so a stale identifier can never match a newer registration.
type slot[T any] struct {
	id uint64
	fn func(T)
}

// Subject is an ordered multicast dispatcher. Observers subscribe with
// a callback and are invoked in registration order on every Notify.
// The zero value is an empty subject ready for use.
//
// Subjects are not synchronized internally; see the package
// documentation for the threading model.
type Subject[T any] struct {
	slots  []slot[T]
	lastID uint64
	closed bool
}

// Subscribe registers fn as an observer and returns the handle
// controlling the registration. Observers run in the order they
// subscribed. Subscribing a nil observer, or subscribing on a closed
// subject, registers nothing and returns an already released handle.
func (s *Subject[T]) Subscribe(fn func(T)) *Subscription {
	if s.closed || fn == nil {
		return &Subscription{}
	}
	s.lastID++
	s.slots = append(s.slots, slot[T]{id: s.lastID, fn: fn})
	return &Subscription{src: s, id: s.lastID}
}

// Notify invokes every observer registered at the moment of the call,
// in registration order, passing v to each. Observers may subscribe or
// unsubscribe during the pass; such changes take effect on the next
// pass. A panicking observer aborts the pass and the panic reaches the
// caller; observers later in the snapshot are not invoked.
func (s *Subject[T]) Notify(v T) {
	if s.closed || len(s.slots) == 0 {
		return
	}

	// Copy the slots so observers can edit registrations mid-pass.
	snapshot := make([]slot[T], len(s.slots))
	copy(snapshot, s.slots)

	for _, sl := range snapshot {
		sl.fn(v)
	}
}

// Len returns the number of registered observers.
func (s *Subject[T]) Len() int {
	return len(s.slots)
}

// Close drops all registrations and marks the subject dead:
// outstanding subscriptions become inert, later Subscribe calls return
// released handles and Notify does nothing. Close is idempotent.
func (s *Subject[T]) Close() {
	s.closed = true
	s.slots = nil
}

// remove deregisters the slot with the given id, preserving the order
// of the remaining observers. Unknown ids are ignored, which makes
// double unsubscription harmless.
func (s *Subject[T]) remove(id uint64) {
	if s.closed {
		return
	}
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

func (s *Subject[T]) dead() bool {
	return s.closed
}
