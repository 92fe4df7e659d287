package observable

import (
	"strings"
	"testing"
)

func TestSubjectNotifyOrder(t *testing.T) {
	var s Subject[int]
	var order []string

	s.Subscribe(func(int) { order = append(order, "first") })
	s.Subscribe(func(int) { order = append(order, "second") })
	s.Subscribe(func(int) { order = append(order, "third") })

	s.Notify(0)

	if got := strings.Join(order, ","); got != "first,second,third" {
		t.Errorf("expected observers in registration order, got %s", got)
	}
}

func TestSubjectPayload(t *testing.T) {
	var s Subject[string]
	var got string

	s.Subscribe(func(v string) { got = v })
	s.Notify("hello")

	if got != "hello" {
		t.Errorf("expected hello, got %s", got)
	}
}

func TestSubjectNotifyWithoutObservers(t *testing.T) {
	var s Subject[int]

	// Must not panic or allocate state.
	s.Notify(1)

	if s.Len() != 0 {
		t.Errorf("expected 0 observers, got %d", s.Len())
	}
}

func TestSubjectUnsubscribeStopsDelivery(t *testing.T) {
	var s Subject[int]
	calls := 0

	sub := s.Subscribe(func(int) { calls++ })
	s.Notify(1)
	sub.Unsubscribe()
	s.Notify(2)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestSubjectUnsubscribeIdempotent(t *testing.T) {
	var s Subject[int]
	calls := 0

	sub := s.Subscribe(func(int) { calls++ })
	other := s.Subscribe(func(int) { calls++ })

	sub.Unsubscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()

	s.Notify(1)
	if calls != 1 {
		t.Errorf("expected surviving observer to run once, got %d calls", calls)
	}
	if !other.Live() {
		t.Error("expected unrelated subscription to stay live")
	}
}

func TestSubjectUnsubscribeMiddlePreservesOrder(t *testing.T) {
	var s Subject[int]
	var order []string

	s.Subscribe(func(int) { order = append(order, "a") })
	mid := s.Subscribe(func(int) { order = append(order, "b") })
	s.Subscribe(func(int) { order = append(order, "c") })

	mid.Unsubscribe()
	s.Notify(0)

	if got := strings.Join(order, ","); got != "a,c" {
		t.Errorf("expected a,c after removing the middle observer, got %s", got)
	}
}

func TestSubjectUnsubscribeDuringNotify(t *testing.T) {
	var s Subject[int]
	var order []string
	var second *Subscription

	s.Subscribe(func(int) {
		order = append(order, "first")
		second.Unsubscribe()
	})
	second = s.Subscribe(func(int) { order = append(order, "second") })

	// The pass dispatches to the snapshot taken at its start, so the
	// second observer still runs this pass.
	s.Notify(0)
	if got := strings.Join(order, ","); got != "first,second" {
		t.Errorf("expected snapshot to finish the pass, got %s", got)
	}

	// Next pass sees the removal.
	order = nil
	s.Notify(0)
	if got := strings.Join(order, ","); got != "first" {
		t.Errorf("expected only the first observer on the next pass, got %s", got)
	}
}

func TestSubjectSubscribeDuringNotify(t *testing.T) {
	var s Subject[int]
	calls := 0
	late := 0

	s.Subscribe(func(int) {
		calls++
		if calls == 1 {
			s.Subscribe(func(int) { late++ })
		}
	})

	s.Notify(0)
	if late != 0 {
		t.Errorf("observer added mid-pass must wait for the next pass, got %d calls", late)
	}

	s.Notify(0)
	if late != 1 {
		t.Errorf("expected late observer to run on the next pass, got %d calls", late)
	}
}

func TestSubjectSelfUnsubscribeDuringNotify(t *testing.T) {
	var s Subject[int]
	calls := 0
	var sub *Subscription

	sub = s.Subscribe(func(int) {
		calls++
		sub.Unsubscribe()
	})

	s.Notify(0)
	s.Notify(0)

	if calls != 1 {
		t.Errorf("expected a self-unsubscribing observer to run once, got %d", calls)
	}
}

func TestSubjectObserverPanicAbortsPass(t *testing.T) {
	var s Subject[int]
	calls := 0

	s.Subscribe(func(int) { calls++ })
	boom := s.Subscribe(func(int) { panic("boom") })
	s.Subscribe(func(int) { calls++ })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the observer panic to reach the caller")
			}
		}()
		s.Notify(0)
	}()

	if calls != 1 {
		t.Errorf("expected observers after the panic to be skipped, got %d calls", calls)
	}

	// The subject stays consistent and usable.
	boom.Unsubscribe()
	s.Notify(0)
	if calls != 3 {
		t.Errorf("expected both remaining observers on the next pass, got %d calls", calls)
	}
}

func TestSubjectLen(t *testing.T) {
	var s Subject[int]

	if s.Len() != 0 {
		t.Errorf("expected empty subject, got %d", s.Len())
	}

	a := s.Subscribe(func(int) {})
	s.Subscribe(func(int) {})
	if s.Len() != 2 {
		t.Errorf("expected 2 observers, got %d", s.Len())
	}

	a.Unsubscribe()
	if s.Len() != 1 {
		t.Errorf("expected 1 observer, got %d", s.Len())
	}
}

func TestSubjectClose(t *testing.T) {
	var s Subject[int]
	calls := 0

	sub := s.Subscribe(func(int) { calls++ })
	s.Close()

	s.Notify(1)
	if calls != 0 {
		t.Errorf("expected no delivery after close, got %d calls", calls)
	}
	if sub.Live() {
		t.Error("expected outstanding subscription to go inert after close")
	}
	sub.Unsubscribe()

	late := s.Subscribe(func(int) { calls++ })
	if late.Live() {
		t.Error("expected subscribe on a closed subject to return a released handle")
	}
	s.Notify(2)
	if calls != 0 {
		t.Errorf("expected no delivery to late subscribers, got %d calls", calls)
	}

	s.Close()
}

func TestSubjectNilObserver(t *testing.T) {
	var s Subject[int]

	sub := s.Subscribe(nil)
	if sub.Live() {
		t.Error("expected a released handle for a nil observer")
	}
	if s.Len() != 0 {
		t.Errorf("expected no registration for a nil observer, got %d", s.Len())
	}

	s.Notify(1)
}

func TestSubjectSlotIDsNeverReused(t *testing.T) {
	var s Subject[int]

	first := s.Subscribe(func(int) {})
	firstID := first.id
	first.Unsubscribe()

	second := s.Subscribe(func(int) {})
	if second.id == firstID {
		t.Error("expected a fresh slot id after unsubscribing")
	}
}

func TestSubjectStaleIDRemovesNothing(t *testing.T) {
	var s Subject[int]
	calls := 0

	first := s.Subscribe(func(int) {})
	staleID := first.id
	first.Unsubscribe()

	s.Subscribe(func(int) { calls++ })

	stale := &Subscription{src: &s, id: staleID}
	stale.Unsubscribe()

	s.Notify(0)
	if calls != 1 {
		t.Errorf("expected the surviving observer to run, got %d calls", calls)
	}
}

func TestSubscriptionZeroValue(t *testing.T) {
	var sub Subscription

	if sub.Live() {
		t.Error("expected the zero subscription to be released")
	}
	sub.Unsubscribe()
	sub.Release()
}

func TestSubscriptionReleaseKeepsRegistration(t *testing.T) {
	var s Subject[int]
	calls := 0

	sub := s.Subscribe(func(int) { calls++ })
	sub.Release()

	if sub.Live() {
		t.Error("expected a released handle")
	}

	// Release detaches the handle only; the observer stays registered.
	sub.Unsubscribe()
	s.Notify(0)
	if calls != 1 {
		t.Errorf("expected the released observer to keep firing, got %d calls", calls)
	}
}
