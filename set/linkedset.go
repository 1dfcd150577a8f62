package set

import (
	"context"
	"fmt"
	"strings"

	"github.com/denismitr/linkedset/utils"
	"golang.org/x/exp/constraints"
)

type node[T any] struct {
	element T
	next    *node[T]
	prev    *node[T]
}

// LinkedSet - a set backed by a doubly linked list which is always kept
// in ascending order. Use New, Of or NewFunc to create one, the zero value
// has no ordering and is not usable.
//
// LinkedSet is not safe for concurrent use. Any structural change
// invalidates iterators created before it.
type LinkedSet[T any] struct {
	front *node[T]
	rear  *node[T]
	size  int
	mods  int

	order  *ordering[T]
	absent func(T) bool
}

var _ Set[int] = (*LinkedSet[int])(nil)

// New - creates a set ordered by the natural ordering of T
func New[T constraints.Ordered](options ...Option[T]) *LinkedSet[T] {
	order := &ordering[T]{compare: utils.Natural[T], natural: true}
	return newLinkedSet(order, options...)
}

func Of[T constraints.Ordered](items ...T) *LinkedSet[T] {
	return New(WithItems(items...))
}

// NewFunc - creates a set ordered by compare, which must be a total ordering
func NewFunc[T any](compare utils.CompareFn[T], options ...Option[T]) *LinkedSet[T] {
	return newLinkedSet(&ordering[T]{compare: compare}, options...)
}

func newLinkedSet[T any](order *ordering[T], options ...Option[T]) *LinkedSet[T] {
	cfg := newConfig(options...)
	s := &LinkedSet[T]{order: order, absent: cfg.absent}
	s.InsertSlice(cfg.items)
	return s
}

// emptyLike - an empty set with the same ordering and absent predicate
func (s *LinkedSet[T]) emptyLike() *LinkedSet[T] {
	return &LinkedSet[T]{order: s.order, absent: s.absent}
}

func (s *LinkedSet[T]) compare(a, b T) int {
	return s.order.compare(a, b)
}

func (s *LinkedSet[T]) isAbsent(item T) bool {
	return s.absent != nil && s.absent(item)
}

// seek returns the first node not less than item, nil if every element is less
func (s *LinkedSet[T]) seek(item T) *node[T] {
	for curr := s.front; curr != nil; curr = curr.next {
		if s.compare(curr.element, item) >= 0 {
			return curr
		}
	}
	return nil
}

func (s *LinkedSet[T]) locate(item T) *node[T] {
	if s.isAbsent(item) {
		return nil
	}

	n := s.seek(item)
	if n == nil || s.compare(n.element, item) != 0 {
		return nil
	}
	return n
}

// Insert - adds item keeping the ascending order.
// Absent and already present items are rejected.
func (s *LinkedSet[T]) Insert(item T) (modified bool) {
	if s.isAbsent(item) {
		return false
	}

	n := &node[T]{element: item}
	switch {
	case s.front == nil:
		s.front = n
		s.rear = n
	case s.compare(item, s.front.element) < 0:
		s.linkFront(n)
	case s.compare(item, s.rear.element) > 0:
		s.linkRear(n)
	default:
		succ := s.seek(item)
		if s.compare(succ.element, item) == 0 {
			return false
		}
		s.linkBefore(n, succ)
	}

	s.size++
	s.mods++
	return true
}

// appendOrdered - inserts item only when it belongs in front of the first
// or after the last element. Callers feeding ascending input get O(1) inserts.
func (s *LinkedSet[T]) appendOrdered(item T) bool {
	if s.isAbsent(item) {
		return false
	}

	n := &node[T]{element: item}
	switch {
	case s.front == nil:
		s.front = n
		s.rear = n
	case s.compare(item, s.front.element) < 0:
		s.linkFront(n)
	case s.compare(item, s.rear.element) > 0:
		s.linkRear(n)
	default:
		return false
	}

	s.size++
	s.mods++
	return true
}

func (s *LinkedSet[T]) linkFront(n *node[T]) {
	n.next = s.front
	s.front.prev = n
	s.front = n
}

func (s *LinkedSet[T]) linkRear(n *node[T]) {
	n.prev = s.rear
	s.rear.next = n
	s.rear = n
}

// linkBefore splices n in front of succ, which is never the front node
func (s *LinkedSet[T]) linkBefore(n, succ *node[T]) {
	pred := succ.prev
	pred.next = n
	n.prev = pred
	n.next = succ
	succ.prev = n
}

func (s *LinkedSet[T]) Remove(item T) bool {
	if s.size == 0 {
		return false
	}

	n := s.locate(item)
	if n == nil {
		return false
	}

	if n.prev == nil {
		s.front = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		s.rear = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.next = nil
	n.prev = nil
	s.size--
	s.mods++
	return true
}

func (s *LinkedSet[T]) Has(item T) bool {
	return s.locate(item) != nil
}

func (s *LinkedSet[T]) Clear() {
	if s.size == 0 {
		return
	}

	s.front = nil
	s.rear = nil
	s.size = 0
	s.mods++
}

func (s *LinkedSet[T]) Len() int {
	return s.size
}

func (s *LinkedSet[T]) IsEmpty() bool {
	return s.size == 0
}

// First - the smallest element
func (s *LinkedSet[T]) First() (T, bool) {
	if s.front == nil {
		return utils.GetZero[T](), false
	}
	return s.front.element, true
}

// Last - the greatest element
func (s *LinkedSet[T]) Last() (T, bool) {
	if s.rear == nil {
		return utils.GetZero[T](), false
	}
	return s.rear.element, true
}

// Items - all elements in ascending order
func (s *LinkedSet[T]) Items() []T {
	items := make([]T, 0, s.size)
	curr := s.front
	for curr != nil {
		items = append(items, curr.element)
		curr = curr.next
	}
	return items
}

func (s *LinkedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	if isNilSet(sourceSet) {
		return false
	}

	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *LinkedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// Clone - a copy sharing no nodes with s
func (s *LinkedSet[T]) Clone() *LinkedSet[T] {
	result := s.emptyLike()
	for curr := s.front; curr != nil; curr = curr.next {
		result.appendOrdered(curr.element)
	}
	return result
}

// Elements - streams the elements in ascending order until
// the set is drained or ctx is done
func (s *LinkedSet[T]) Elements(ctx context.Context) <-chan T {
	resultCh := make(chan T)
	front := s.front

	go func() {
		defer close(resultCh)

		curr := front
		for curr != nil {
			if ctx.Err() != nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			case resultCh <- curr.element:
			}
			curr = curr.next
		}
	}()

	return resultCh
}

func (s *LinkedSet[T]) String() string {
	if s.size == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteString("[")
	for curr := s.front; curr != nil; curr = curr.next {
		if curr != s.front {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", curr.element)
	}
	b.WriteString("]")
	return b.String()
}
