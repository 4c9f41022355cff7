package collections

type Set[V comparable] map[V]struct{}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// AddNew adds the element and reports whether it was absent beforehand
func (set Set[V]) AddNew(value V) bool {
	if set.Contains(value) {
		return false
	}
	set.Add(value)
	return true
}

func (set Set[V]) Len() int {
	return len(set)
}
