package iterables

import (
	"fmt"
	"iter"

	"bean-mapper/errs"
)

// Set is a set that iterates in first-insertion order. Its iterators support
// Remove.
//
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	items []T
	index map[T]int
}

// NewSet returns a set holding the distinct values in first-seen order.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{items: make([]T, 0, len(values))}
	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Add inserts v and reports whether it was absent.
func (s *Set[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}

	if _, exists := s.index[v]; exists {
		return false
	}

	s.index[v] = len(s.items)
	s.items = append(s.items, v)

	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, exists := s.index[v]
	return exists
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	i, exists := s.index[v]
	if !exists {
		return false
	}

	s.removeAt(i)

	return true
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements in insertion order.
func (s *Set[T]) Values() []T {
	return append(make([]T, 0, len(s.items)), s.items...)
}

// All returns an iter.Seq over the elements.
func (s *Set[T]) All() iter.Seq[T] {
	return Seq[T](s)
}

// Iterator returns an iterator positioned before the first element.
func (s *Set[T]) Iterator() Iterator[T] {
	return &setIterator[T]{set: s, last: -1}
}

func (s *Set[T]) removeAt(i int) {
	delete(s.index, s.items[i])

	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = *new(T)
	s.items = s.items[:len(s.items)-1]

	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
}

func (s *Set[T]) String() string {
	return fmt.Sprint(s.items)
}

type setIterator[T comparable] struct {
	set  *Set[T]
	next int
	last int
}

func (it *setIterator[T]) HasNext() bool {
	return it.next < len(it.set.items)
}

func (it *setIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return *new(T), errs.ErrExhausted
	}

	v := it.set.items[it.next]
	it.last = it.next
	it.next++

	return v, nil
}

func (it *setIterator[T]) Remove() error {
	if it.last < 0 {
		return fmt.Errorf("%w: no element to remove", errs.ErrIllegalState)
	}

	it.set.removeAt(it.last)
	it.next = it.last
	it.last = -1

	return nil
}

var _ Collection[int] = (*Set[int])(nil)
