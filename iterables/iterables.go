package iterables

import (
	"fmt"

	"bean-mapper/errs"
	"bean-mapper/internal/common"
)

// ToList copies the elements of input, in encounter order, into a new List.
// The result never shares storage with input.
func ToList[T any](input Iterable[T]) (*List[T], error) {
	if common.IsNil(input) {
		return nil, errs.InvalidArgument("input")
	}

	if l, ok := input.(*List[T]); ok {
		return FromSlice(l.items), nil
	}

	capacity, _ := knownSize(input)

	out := &List[T]{items: make([]T, 0, capacity)}
	if err := drain(input, func(v T) { out.items = append(out.items, v) }); err != nil {
		return nil, fmt.Errorf("failed to copy iterable: %w", err)
	}

	return out, nil
}

// ToSet copies the distinct elements of input into a new Set that iterates in
// first-seen order.
func ToSet[T comparable](input Iterable[T]) (*Set[T], error) {
	if common.IsNil(input) {
		return nil, errs.InvalidArgument("input")
	}

	out := &Set[T]{}
	if err := drain(input, func(v T) { out.Add(v) }); err != nil {
		return nil, fmt.Errorf("failed to copy iterable: %w", err)
	}

	return out, nil
}

// Size returns the number of elements in input. Collections, and views that
// know their size, report it directly; other iterables are counted by
// consuming one iterator. SinglePass inputs are refused with
// errs.ErrUnsupportedOperation.
func Size[T any](input Iterable[T]) (int, error) {
	if common.IsNil(input) {
		return 0, errs.InvalidArgument("input")
	}

	if n, ok := knownSize(input); ok {
		return n, nil
	}

	if isSinglePass(input) {
		return 0, fmt.Errorf("%w: counting a single-pass iterable consumes it", errs.ErrUnsupportedOperation)
	}

	n := 0
	if err := drain(input, func(T) { n++ }); err != nil {
		return 0, fmt.Errorf("failed to count iterable: %w", err)
	}

	return n, nil
}
