package observable

import mapset "github.com/deckarep/golang-set/v2"

// MapSet adapts a mapset.Set to the Container contract so collections
// can run on the golang-set implementation instead of HashSet.
type MapSet[T comparable] struct {
	s mapset.Set[T]
}

// NewMapSet returns a MapSet holding elems. The underlying set is the
// thread-unsafe variant, matching this package's threading model.
func NewMapSet[T comparable](elems ...T) *MapSet[T] {
	return &MapSet[T]{s: mapset.NewThreadUnsafeSet(elems...)}
}

// Insert adds v, reporting whether it was absent.
func (m *MapSet[T]) Insert(v T) bool {
	return m.s.Add(v)
}

// Remove erases v and returns the stored element. The boolean reports
// whether v was present.
func (m *MapSet[T]) Remove(v T) (T, bool) {
	if !m.s.Contains(v) {
		var zero T
		return zero, false
	}
	m.s.Remove(v)
	return v, true
}

// Contains reports membership of v.
func (m *MapSet[T]) Contains(v T) bool {
	return m.s.Contains(v)
}

// Len returns the number of elements.
func (m *MapSet[T]) Len() int {
	return m.s.Cardinality()
}

// Values returns the elements in unspecified order.
func (m *MapSet[T]) Values() []T {
	return m.s.ToSlice()
}

// Equal reports whether other holds exactly the same elements.
func (m *MapSet[T]) Equal(other Container[T]) bool {
	if other == nil || m.Len() != other.Len() {
		return false
	}
	for _, v := range m.s.ToSlice() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
