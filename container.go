package observable

// Container is the membership contract a Collection drives. Insert
// reports whether the element was absent and is now present. Remove
// reports whether the element was present and returns the stored
// element it erased, captured before erasure so observers can see it.
// Implementations decide element identity; Equal compares whole
// containers for the equality gate on bulk replacement.
//
// A Container handed to a Collection must not be mutated by anyone
// else afterwards.
type Container[T any] interface {
	Insert(v T) bool
	Remove(v T) (T, bool)
	Contains(v T) bool
	Len() int
	Values() []T
	Equal(other Container[T]) bool
}

// HashSet is the default Container: unordered unique membership over a
// Go map. The zero value is an empty set ready for use.
type HashSet[T comparable] struct {
	m map[T]struct{}
}

// NewHashSet returns a HashSet holding elems.
func NewHashSet[T comparable](elems ...T) *HashSet[T] {
	h := &HashSet[T]{m: make(map[T]struct{}, len(elems))}
	for _, e := range elems {
		h.m[e] = struct{}{}
	}
	return h
}

// Insert adds v, reporting whether it was absent.
func (h *HashSet[T]) Insert(v T) bool {
	if h.m == nil {
		h.m = make(map[T]struct{})
	}
	if _, ok := h.m[v]; ok {
		return false
	}
	h.m[v] = struct{}{}
	return true
}

// Remove erases v and returns the stored element. The boolean reports
// whether v was present.
func (h *HashSet[T]) Remove(v T) (T, bool) {
	if _, ok := h.m[v]; !ok {
		var zero T
		return zero, false
	}
	delete(h.m, v)
	return v, true
}

// Contains reports membership of v.
func (h *HashSet[T]) Contains(v T) bool {
	_, ok := h.m[v]
	return ok
}

// Len returns the number of elements.
func (h *HashSet[T]) Len() int {
	return len(h.m)
}

// Values returns the elements in unspecified order.
func (h *HashSet[T]) Values() []T {
	vs := make([]T, 0, len(h.m))
	for v := range h.m {
		vs = append(vs, v)
	}
	return vs
}

// Equal reports whether other holds exactly the same elements.
func (h *HashSet[T]) Equal(other Container[T]) bool {
	if other == nil || h.Len() != other.Len() {
		return false
	}
	for v := range h.m {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
