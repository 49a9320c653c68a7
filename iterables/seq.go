package iterables

import (
	"iter"

	"go.uber.org/atomic"

	"bean-mapper/errs"
)

// FromSeq adapts an iter.Seq to Iterable. Every call to Iterator ranges over
// seq again, so the result is repeatable whenever seq is.
//
// The returned iterators hold a coroutine until they are exhausted; callers
// that stop early should pass them to Close.
func FromSeq[T any](seq iter.Seq[T]) Iterable[T] {
	return IterableFunc[T](func() Iterator[T] {
		next, stop := iter.Pull(seq)
		return &pullIterator[T]{next: next, stop: stop}
	})
}

type pullIterator[T any] struct {
	next   func() (T, bool)
	stop   func()
	value  T
	peeked bool
	done   bool
}

func (it *pullIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	if it.peeked {
		return true
	}

	v, ok := it.next()
	if !ok {
		it.Close()
		return false
	}

	it.value, it.peeked = v, true

	return true
}

func (it *pullIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return *new(T), errs.ErrExhausted
	}

	v := it.value
	it.value, it.peeked = *new(T), false

	return v, nil
}

func (it *pullIterator[T]) Remove() error {
	return errs.ErrUnsupportedOperation
}

func (it *pullIterator[T]) Close() error {
	if !it.done {
		it.done = true
		it.stop()
	}

	return nil
}

// Once wraps a single iterator as an Iterable. The first call to Iterator
// returns it; later calls return an exhausted iterator.
func Once[T any](it Iterator[T]) Iterable[T] {
	return &onceIterable[T]{it: it}
}

type onceIterable[T any] struct {
	it   Iterator[T]
	used atomic.Bool
}

func (o *onceIterable[T]) Iterator() Iterator[T] {
	if o.used.Swap(true) {
		return emptyIterator[T]{}
	}

	return o.it
}

func (o *onceIterable[T]) SinglePass() bool {
	return true
}

type emptyIterator[T any] struct{}

func (emptyIterator[T]) HasNext() bool {
	return false
}

func (emptyIterator[T]) Next() (T, error) {
	return *new(T), errs.ErrExhausted
}

func (emptyIterator[T]) Remove() error {
	return errs.ErrIllegalState
}
