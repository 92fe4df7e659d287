package observable

// unsubscriber is the subject-side surface a subscription handle needs
// to end its registration.
type unsubscriber interface {
	remove(id uint64)
	dead() bool
}

// Subscription is the handle for a single observer registration. The
// handle does not own the registration: dropping it leaves the
// observer subscribed for the subject's lifetime. The zero value is a
// released handle.
type Subscription struct {
	src unsubscriber
	id  uint64
}

// Unsubscribe ends the registration. It is idempotent and remains safe
// after Release and after the subject has been closed.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.src == nil {
		return
	}
	if !s.src.dead() {
		s.src.remove(s.id)
	}
	s.src = nil
}

// Release detaches the handle without ending the registration. The
// observer keeps receiving notifications for the subject's lifetime
// and later Unsubscribe calls on this handle are no-ops.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.src = nil
}

// Live reports whether the handle still controls a registration. It
// returns false after Unsubscribe or Release, and after the subject
// has been closed.
func (s *Subscription) Live() bool {
	return s != nil && s.src != nil && !s.src.dead()
}
