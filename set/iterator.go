package set

import (
	"iter"

	"github.com/denismitr/linkedset/utils"
	"github.com/pkg/errors"
)

// Iterator - a read only cursor over a set. Next fails with
// ErrIteratorInvalidated once the underlying set has been modified.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

type cursor[T any] struct {
	set     *LinkedSet[T]
	current *node[T]
	order   utils.Order
	mods    int
}

var _ Iterator[int] = (*cursor[int])(nil)

// Iterator - walks the elements in ascending order
func (s *LinkedSet[T]) Iterator() Iterator[T] {
	return &cursor[T]{set: s, current: s.front, order: utils.AscOrder, mods: s.mods}
}

// DescendingIterator - walks the elements in descending order
func (s *LinkedSet[T]) DescendingIterator() Iterator[T] {
	return &cursor[T]{set: s, current: s.rear, order: utils.DescOrder, mods: s.mods}
}

func (c *cursor[T]) HasNext() bool {
	return c.current != nil
}

func (c *cursor[T]) Next() (T, error) {
	if c.set.mods != c.mods {
		return utils.GetZero[T](), errors.Wrapf(ErrIteratorInvalidated, "%s iterator", c.order)
	}

	if c.current == nil {
		return utils.GetZero[T](), errors.Wrapf(ErrIteratorExhausted, "%s iterator", c.order)
	}

	item := c.current.element
	if c.order == utils.AscOrder {
		c.current = c.current.next
	} else {
		c.current = c.current.prev
	}

	return item, nil
}

func (c *cursor[T]) Remove() error {
	return errors.Wrap(ErrUnsupportedOperation, "iterator is read only")
}

// powerSetCursor enumerates subsets by counting from 0 to 2^k - 1,
// bit i of the counter selects the i-th smallest element.
type powerSetCursor[T any] struct {
	set  *LinkedSet[T]
	k    int
	mask []uint64
	done bool
	mods int
}

var _ Iterator[*LinkedSet[int]] = (*powerSetCursor[int])(nil)

// PowerSetIterator - walks all 2^Len() subsets of the set,
// starting with the empty one. No other order is guaranteed.
func (s *LinkedSet[T]) PowerSetIterator() Iterator[*LinkedSet[T]] {
	return &powerSetCursor[T]{
		set:  s,
		k:    s.size,
		mask: make([]uint64, (s.size+63)/64),
		mods: s.mods,
	}
}

func (c *powerSetCursor[T]) HasNext() bool {
	return !c.done
}

func (c *powerSetCursor[T]) Next() (*LinkedSet[T], error) {
	if c.set.mods != c.mods {
		return nil, errors.Wrap(ErrIteratorInvalidated, "power set iterator")
	}

	if c.done {
		return nil, errors.Wrap(ErrIteratorExhausted, "power set iterator")
	}

	subset := c.set.emptyLike()
	i := 0
	for curr := c.set.front; curr != nil; curr = curr.next {
		if c.mask[i/64]&(uint64(1)<<(i%64)) != 0 {
			subset.appendOrdered(curr.element)
		}
		i++
	}

	c.increment()
	return subset, nil
}

func (c *powerSetCursor[T]) increment() {
	for i := range c.mask {
		c.mask[i]++
		if c.mask[i] != 0 {
			// the last word only holds k%64 counter bits
			if rem := c.k % 64; i == len(c.mask)-1 && rem != 0 && c.mask[i]>>rem != 0 {
				c.done = true
			}
			return
		}
	}

	c.done = true
}

func (c *powerSetCursor[T]) Remove() error {
	return errors.Wrap(ErrUnsupportedOperation, "power set iterator is read only")
}

// All - ascending sequence of the elements for range loops.
// Modifying the set inside the loop panics with ErrIteratorInvalidated.
func (s *LinkedSet[T]) All() iter.Seq[T] {
	return s.seq(s.Iterator)
}

// Backward - descending sequence of the elements for range loops
func (s *LinkedSet[T]) Backward() iter.Seq[T] {
	return s.seq(s.DescendingIterator)
}

func (s *LinkedSet[T]) seq(newIterator func() Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator()
		for it.HasNext() {
			item, err := it.Next()
			if err != nil {
				panic(err)
			}

			if !yield(item) {
				return
			}
		}
	}
}

// PowerSet - sequence of all subsets for range loops
func (s *LinkedSet[T]) PowerSet() iter.Seq[*LinkedSet[T]] {
	return func(yield func(*LinkedSet[T]) bool) {
		it := s.PowerSetIterator()
		for it.HasNext() {
			subset, err := it.Next()
			if err != nil {
				panic(err)
			}

			if !yield(subset) {
				return
			}
		}
	}
}
