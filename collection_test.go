package observable

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func wantMembers(t *testing.T, col *Collection[int, *HashSet[int]], want ...int) {
	if col.Len() != len(want) {
		t.Errorf("expected %d elements, got %d", len(want), col.Len())
	}
	for _, w := range want {
		if !col.Contains(w) {
			t.Errorf("expected element %d to be present", w)
		}
	}
}

func TestCollectionConstruction(t *testing.T) {
	empty := NewSet[int]()
	if empty.Len() != 0 {
		t.Errorf("expected an empty collection, got %d elements", empty.Len())
	}

	col := NewSet(1, 2, 3)
	wantMembers(t, col, 1, 2, 3)
}

func TestCollectionGet(t *testing.T) {
	col := NewSet(1, 2, 3)

	got := col.Get()
	if !got.Equal(NewHashSet(1, 2, 3)) {
		t.Errorf("expected {1 2 3}, got %v", got.Values())
	}
}

func TestCollectionInsert(t *testing.T) {
	col := NewSet(1, 2, 3)

	inserted, err := col.Insert(4)
	if err != nil {
		t.Fatalf("Insert(4) failed: %v", err)
	}
	if !inserted {
		t.Error("expected Insert(4) to report success")
	}
	wantMembers(t, col, 1, 2, 3, 4)

	// Can't insert an existing value
	inserted, err = col.Insert(3)
	if err != nil {
		t.Fatalf("Insert(3) failed: %v", err)
	}
	if inserted {
		t.Error("expected Insert(3) to be rejected")
	}
	wantMembers(t, col, 1, 2, 3, 4)
}

func TestCollectionEmplace(t *testing.T) {
	col := NewSet(1, 2)

	inserted, err := col.Emplace(3)
	if err != nil {
		t.Fatalf("Emplace(3) failed: %v", err)
	}
	if !inserted {
		t.Error("expected Emplace(3) to report success")
	}

	inserted, _ = col.Emplace(3)
	if inserted {
		t.Error("expected Emplace of an existing value to be rejected")
	}
	wantMembers(t, col, 1, 2, 3)
}

func TestCollectionRemove(t *testing.T) {
	col := NewSet(1, 2, 3)

	removed, err := col.Remove(3)
	if err != nil {
		t.Fatalf("Remove(3) failed: %v", err)
	}
	if !removed {
		t.Error("expected Remove(3) to report success")
	}
	wantMembers(t, col, 1, 2)

	// Can't remove a nonexistent value
	removed, err = col.Remove(4)
	if err != nil {
		t.Fatalf("Remove(4) failed: %v", err)
	}
	if removed {
		t.Error("expected Remove(4) to be rejected")
	}
	wantMembers(t, col, 1, 2)
}

func TestCollectionBulkSet(t *testing.T) {
	col := NewSet(5, 6, 7)

	changed, err := col.Set(NewHashSet(3, 4, 5, 6))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !changed {
		t.Error("expected bulk Set to report a change")
	}
	wantMembers(t, col, 3, 4, 5, 6)
}

func TestCollectionSubscribe(t *testing.T) {
	col := NewSet(1, 2, 3)
	calls := 0

	col.Subscribe(func() { calls++ }).Release()
	col.Set(NewHashSet(1, 2, 3, 4))

	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}

func TestCollectionSubscribeChangesOnInsert(t *testing.T) {
	col := NewSet(1, 2, 3)
	calls := 0
	insertedVal := 0
	isInserted := false

	col.Subscribe(func() { calls++ }).Release()
	col.SubscribeChanges(func(v int, inserted bool) {
		insertedVal = v
		isInserted = inserted
	}).Release()

	col.Insert(4)

	if calls != 1 {
		t.Errorf("expected 1 void notification, got %d", calls)
	}
	if insertedVal != 4 {
		t.Errorf("expected element 4, got %d", insertedVal)
	}
	if !isInserted {
		t.Error("expected an insertion flag")
	}
}

func TestCollectionSubscribeChangesOnRemove(t *testing.T) {
	col := NewSet(1, 2, 3)
	calls := 0
	removedVal := 0
	isInserted := true

	col.Subscribe(func() { calls++ }).Release()
	col.SubscribeChanges(func(v int, inserted bool) {
		removedVal = v
		isInserted = inserted
	}).Release()

	col.Remove(3)

	if calls != 1 {
		t.Errorf("expected 1 void notification, got %d", calls)
	}
	if removedVal != 3 {
		t.Errorf("expected element 3, got %d", removedVal)
	}
	if isInserted {
		t.Error("expected a removal flag")
	}
}

func TestCollectionSetSameValueSilent(t *testing.T) {
	col := NewSet(1, 2, 3)
	calls := 0

	col.Subscribe(func() { calls++ })
	col.SubscribeValue(func(*HashSet[int]) { calls++ })
	col.Set(NewHashSet(1, 2, 3))

	if calls != 0 {
		t.Errorf("expected silence for an equal container, got %d calls", calls)
	}
}

func TestCollectionInsertExistingSilent(t *testing.T) {
	col := NewSet(1, 2, 3)
	calls := 0

	col.Subscribe(func() { calls++ })
	col.SubscribeValue(func(*HashSet[int]) { calls++ })
	col.SubscribeChanges(func(int, bool) { calls++ })
	col.Insert(3)

	if calls != 0 {
		t.Errorf("expected silence for a duplicate insert, got %d calls", calls)
	}
}

func TestCollectionRemoveMissingSilent(t *testing.T) {
	col := NewSet(1, 2, 3)
	calls := 0

	col.Subscribe(func() { calls++ })
	col.SubscribeValue(func(*HashSet[int]) { calls++ })
	col.SubscribeChanges(func(int, bool) { calls++ })
	col.Remove(4)

	if calls != 0 {
		t.Errorf("expected silence for a missing removal, got %d calls", calls)
	}
}

func TestCollectionSubscribeAndCall(t *testing.T) {
	col := NewSet(5, 6, 7)

	calls := 0
	col.SubscribeAndCall(func() { calls++ })
	if calls != 1 {
		t.Errorf("expected one immediate call, got %d", calls)
	}
}

func TestCollectionSubscribeValueAndCall(t *testing.T) {
	col := NewSet(5, 6, 7)

	var got *HashSet[int]
	col.SubscribeValueAndCall(func(s *HashSet[int]) { got = s })

	if got == nil || !got.Equal(NewHashSet(5, 6, 7)) {
		t.Error("expected the immediate call to carry the current container")
	}
}

func TestCollectionNotifyOrderOnInsert(t *testing.T) {
	col := NewSet(1, 2, 3)
	var order []string

	col.SubscribeValue(func(*HashSet[int]) { order = append(order, "value") })
	col.Subscribe(func() { order = append(order, "void") })
	col.SubscribeChanges(func(v int, inserted bool) {
		order = append(order, fmt.Sprintf("element(%d,%t)", v, inserted))
	})

	col.Insert(4)

	// Element observers run first, then void, then value.
	want := "element(4,true),void,value"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCollectionElementObserverSeesUpdatedContainer(t *testing.T) {
	col := NewSet(1, 2, 3)

	col.SubscribeChanges(func(v int, inserted bool) {
		if inserted && !col.Contains(v) {
			t.Errorf("expected %d to be in the container during its insert notification", v)
		}
		if !inserted && col.Contains(v) {
			t.Errorf("expected %d to be gone during its removal notification", v)
		}
	})

	col.Insert(4)
	col.Remove(2)
}

func TestCollectionMutationSequence(t *testing.T) {
	col := NewSet(1, 2, 3)
	var log []string

	col.SubscribeChanges(func(v int, inserted bool) {
		log = append(log, fmt.Sprintf("change(%d,%t)", v, inserted))
	})
	col.Subscribe(func() { log = append(log, "void") })
	col.SubscribeValue(func(s *HashSet[int]) {
		log = append(log, fmt.Sprintf("value(len=%d)", s.Len()))
	})

	col.Insert(4)
	col.Insert(4)
	col.Remove(2)

	want := strings.Join([]string{
		"change(4,true)", "void", "value(len=4)",
		"change(2,false)", "void", "value(len=3)",
	}, ",")
	if got := strings.Join(log, ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	wantMembers(t, col, 1, 3, 4)
}

func TestCollectionBulkSetSkipsElementChannel(t *testing.T) {
	col := NewSet(1, 2)
	elementCalls := 0
	valueCalls := 0

	col.SubscribeChanges(func(int, bool) { elementCalls++ })
	col.SubscribeValue(func(*HashSet[int]) { valueCalls++ })

	col.Set(NewHashSet(7, 8, 9))

	if elementCalls != 0 {
		t.Errorf("expected bulk replacement to skip the element channel, got %d calls", elementCalls)
	}
	if valueCalls != 1 {
		t.Errorf("expected 1 value notification, got %d", valueCalls)
	}
}

func TestBoundCollection(t *testing.T) {
	var push func(*HashSet[int]) bool
	col := NewBoundCollection[int](NewHashSet(1, 2), func(set func(*HashSet[int]) bool) {
		push = set
	})

	if !col.Bound() {
		t.Error("expected a bound collection")
	}

	calls := 0
	col.Subscribe(func() { calls++ })

	if _, err := col.Insert(3); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly from Insert, got %v", err)
	}
	if _, err := col.Emplace(3); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly from Emplace, got %v", err)
	}
	if _, err := col.Remove(1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly from Remove, got %v", err)
	}
	if _, err := col.Set(NewHashSet(9)); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly from Set, got %v", err)
	}

	wantMembers(t, col, 1, 2)
	if calls != 0 {
		t.Errorf("expected no notifications from rejected mutations, got %d", calls)
	}

	// The updater still moves the container.
	if !push(NewHashSet(1, 2, 3)) {
		t.Error("expected the updater to report a change")
	}
	if calls != 1 {
		t.Errorf("expected 1 notification from the updater, got %d", calls)
	}
	wantMembers(t, col, 1, 2, 3)
}

func TestCollectionOnMapSet(t *testing.T) {
	col := NewCollection[string](NewMapSet("a", "b"))
	var log []string

	col.SubscribeChanges(func(v string, inserted bool) {
		log = append(log, fmt.Sprintf("%s:%t", v, inserted))
	})

	if inserted, _ := col.Insert("c"); !inserted {
		t.Error("expected Insert(c) to report success")
	}
	if inserted, _ := col.Insert("c"); inserted {
		t.Error("expected a duplicate insert to be rejected")
	}
	if removed, _ := col.Remove("a"); !removed {
		t.Error("expected Remove(a) to report success")
	}

	if got := strings.Join(log, ","); got != "c:true,a:false" {
		t.Errorf("expected c:true,a:false, got %s", got)
	}
	if col.Len() != 2 {
		t.Errorf("expected 2 elements, got %d", col.Len())
	}
	if !col.Contains("b") || !col.Contains("c") {
		t.Error("expected b and c to remain")
	}
}

func TestCollectionClose(t *testing.T) {
	col := NewSet(1)
	sub := col.SubscribeChanges(func(int, bool) {})

	col.Close()
	if sub.Live() {
		t.Error("expected element subscriptions to go inert after Close")
	}
}
