package set

// A nil other set is treated as an empty set by every operation below.
// Results share the ordering of the receiver and never share nodes with
// either operand.

// Equals - true when both sets contain exactly the same elements
func (s *LinkedSet[T]) Equals(other Set[T]) bool {
	if isNilSet(other) {
		return s.size == 0
	}

	return s.size == other.Len() && s.Complement(other).IsEmpty()
}

// Union - elements that are in s or in other
func (s *LinkedSet[T]) Union(other Set[T]) *LinkedSet[T] {
	if isNilSet(other) {
		return s.Clone()
	}

	o, ok := s.mergeable(other)
	if !ok {
		result := s.Clone()
		for _, item := range other.Items() {
			result.Insert(item)
		}
		return result
	}

	result := s.emptyLike()
	a, b := s.front, o.front
	for a != nil && b != nil {
		switch c := s.compare(a.element, b.element); {
		case c < 0:
			result.appendOrdered(a.element)
			a = a.next
		case c > 0:
			result.appendOrdered(b.element)
			b = b.next
		default:
			result.appendOrdered(a.element)
			a, b = a.next, b.next
		}
	}

	result.drain(a)
	result.drain(b)
	return result
}

// Intersection - elements that are both in s and other
func (s *LinkedSet[T]) Intersection(other Set[T]) *LinkedSet[T] {
	result := s.emptyLike()
	if isNilSet(other) || other.IsEmpty() || s.size == 0 {
		return result
	}

	o, ok := s.mergeable(other)
	if !ok {
		for curr := s.front; curr != nil; curr = curr.next {
			if other.Has(curr.element) {
				result.appendOrdered(curr.element)
			}
		}
		return result
	}

	a, b := s.front, o.front
	for a != nil && b != nil {
		switch c := s.compare(a.element, b.element); {
		case c < 0:
			a = a.next
		case c > 0:
			b = b.next
		default:
			result.appendOrdered(a.element)
			a, b = a.next, b.next
		}
	}

	return result
}

// Complement - elements of s which are not in other
func (s *LinkedSet[T]) Complement(other Set[T]) *LinkedSet[T] {
	if isNilSet(other) || other.IsEmpty() {
		return s.Clone()
	}

	result := s.emptyLike()
	if s.size == 0 {
		return result
	}

	o, ok := s.mergeable(other)
	if !ok {
		for curr := s.front; curr != nil; curr = curr.next {
			if !other.Has(curr.element) {
				result.appendOrdered(curr.element)
			}
		}
		return result
	}

	a, b := s.front, o.front
	for a != nil && b != nil {
		switch c := s.compare(a.element, b.element); {
		case c < 0:
			result.appendOrdered(a.element)
			a = a.next
		case c > 0:
			b = b.next
		default:
			a, b = a.next, b.next
		}
	}

	result.drain(a)
	return result
}

// mergeable - other as a LinkedSet when both lists are sorted by the same ordering
func (s *LinkedSet[T]) mergeable(other Set[T]) (*LinkedSet[T], bool) {
	o, ok := other.(*LinkedSet[T])
	if !ok || o == nil || o.order == nil {
		return nil, false
	}

	return o, s.order.sameAs(o.order)
}

func (s *LinkedSet[T]) drain(from *node[T]) {
	for curr := from; curr != nil; curr = curr.next {
		s.appendOrdered(curr.element)
	}
}
