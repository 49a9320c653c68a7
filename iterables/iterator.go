package iterables

import (
	"io"
	"iter"
)

// Iterator is a pull iterator over T.
//
// Next returns errs.ErrExhausted once HasNext reports false. Remove deletes the
// element most recently returned by Next from the underlying collection;
// iterators that cannot remove return errs.ErrUnsupportedOperation.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

// Iterable produces a fresh Iterator on demand.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// Collection is an Iterable whose size is known without iterating.
type Collection[T any] interface {
	Iterable[T]
	Len() int
}

// SinglePass marks iterables whose elements can be consumed only once.
type SinglePass interface {
	SinglePass() bool
}

// SizeHint is implemented by iterables that may know their size without
// iterating, typically views over a Collection.
type SizeHint interface {
	SizeHint() (int, bool)
}

// knownSize returns the size of src when it is available without iterating.
func knownSize[T any](src Iterable[T]) (int, bool) {
	switch s := src.(type) {
	case Collection[T]:
		return s.Len(), true
	case SizeHint:
		return s.SizeHint()
	default:
		return 0, false
	}
}

// isSinglePass reports whether src can be iterated only once.
func isSinglePass(src any) bool {
	sp, ok := src.(SinglePass)
	return ok && sp.SinglePass()
}

// Mapper converts a T into a U. Implementations must accept nil-like input
// and return a zero-like U for it instead of panicking.
type Mapper[T, U any] interface {
	Map(source T) U
}

// MapperFunc adapts a plain function to Mapper.
type MapperFunc[T, U any] func(T) U

func (f MapperFunc[T, U]) Map(source T) U {
	return f(source)
}

// IterableFunc adapts an iterator constructor to Iterable.
type IterableFunc[T any] func() Iterator[T]

func (f IterableFunc[T]) Iterator() Iterator[T] {
	return f()
}

// Close releases it when it holds resources (see FromSeq). It is a no-op for
// iterators that do not implement io.Closer.
func Close(it any) error {
	if c, ok := it.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Seq exposes an Iterable as an iter.Seq. Iteration stops silently at the
// first error returned by Next.
func Seq[T any](src Iterable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := src.Iterator()
		defer Close(it)

		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// drain feeds every element of src to fn, consuming one iterator.
func drain[T any](src Iterable[T], fn func(T)) error {
	it := src.Iterator()
	defer Close(it)

	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}

		fn(v)
	}

	return nil
}
