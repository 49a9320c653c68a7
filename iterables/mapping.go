package iterables

import (
	"errors"
	"fmt"

	"bean-mapper/errs"
	"bean-mapper/internal/common"
)

type iteratorState int

const (
	// stateReady: no element returned since creation or since the last Remove.
	stateReady iteratorState = iota
	// stateCurrent: Next returned an element that Remove may delete.
	stateCurrent
	// stateExhausted: the delegate reported exhaustion.
	stateExhausted
)

// MappingIterator maps the elements of a delegate iterator one at a time.
//
// HasNext mirrors the delegate exactly, Next pulls one element and maps it,
// and Remove is forwarded to the delegate.
type MappingIterator[T, U any] struct {
	delegate Iterator[T]
	mapper   Mapper[T, U]
	state    iteratorState
}

// NewMappingIterator returns an iterator mapping the elements of delegate
// with mapper.
func NewMappingIterator[T, U any](delegate Iterator[T], mapper Mapper[T, U]) (*MappingIterator[T, U], error) {
	if common.IsNil(delegate) {
		return nil, errs.InvalidArgument("delegate iterator")
	}

	if common.IsNil(mapper) {
		return nil, errs.InvalidArgument("mapper")
	}

	return &MappingIterator[T, U]{delegate: delegate, mapper: mapper}, nil
}

func (m *MappingIterator[T, U]) HasNext() bool {
	return m.delegate.HasNext()
}

// Next maps the next element of the delegate. Errors from the delegate,
// errs.ErrExhausted included, are returned unchanged.
func (m *MappingIterator[T, U]) Next() (U, error) {
	v, err := m.delegate.Next()
	if err != nil {
		m.state = stateReady
		if errors.Is(err, errs.ErrExhausted) {
			m.state = stateExhausted
		}

		return *new(U), err
	}

	m.state = stateCurrent

	return m.mapper.Map(v), nil
}

// Remove removes the element most recently returned by Next from the
// delegate's collection. Without such an element it returns
// errs.ErrIllegalState and leaves the delegate untouched.
func (m *MappingIterator[T, U]) Remove() error {
	if m.state != stateCurrent {
		return fmt.Errorf("%w: remove requires a preceding successful next", errs.ErrIllegalState)
	}

	if err := m.delegate.Remove(); err != nil {
		return err
	}

	m.state = stateReady

	return nil
}

// Close closes the delegate when it holds resources.
func (m *MappingIterator[T, U]) Close() error {
	return Close(m.delegate)
}
