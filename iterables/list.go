package iterables

import (
	"fmt"
	"iter"

	"bean-mapper/errs"
)

// List is an ordered, slice-backed collection. Its iterators support Remove.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	items []T
}

// Of returns a list holding a copy of values.
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice returns a list holding a copy of s.
func FromSlice[T any](s []T) *List[T] {
	items := make([]T, len(s))
	copy(items, s)

	return &List[T]{items: items}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics when i is out of range.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Add appends values to the end of the list.
func (l *List[T]) Add(values ...T) {
	l.items = append(l.items, values...)
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	return append(make([]T, 0, len(l.items)), l.items...)
}

// All returns an iter.Seq over the elements.
func (l *List[T]) All() iter.Seq[T] {
	return Seq[T](l)
}

// Iterator returns an iterator positioned before the first element.
func (l *List[T]) Iterator() Iterator[T] {
	return &listIterator[T]{list: l, last: -1}
}

func (l *List[T]) removeAt(i int) {
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = *new(T)
	l.items = l.items[:len(l.items)-1]
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.items)
}

type listIterator[T any] struct {
	list *List[T]
	next int
	last int
}

func (it *listIterator[T]) HasNext() bool {
	return it.next < len(it.list.items)
}

func (it *listIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return *new(T), errs.ErrExhausted
	}

	v := it.list.items[it.next]
	it.last = it.next
	it.next++

	return v, nil
}

func (it *listIterator[T]) Remove() error {
	if it.last < 0 {
		return fmt.Errorf("%w: no element to remove", errs.ErrIllegalState)
	}

	it.list.removeAt(it.last)
	it.next = it.last
	it.last = -1

	return nil
}

var _ Collection[int] = (*List[int])(nil)
