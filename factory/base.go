package factory

import (
	"fmt"
	"reflect"

	"bean-mapper/errs"
)

// TypePair is the resolved (target, source) type pair of a factory.
type TypePair struct {
	Target reflect.Type
	Source reflect.Type
}

// String formats the pair as "source -> target".
func (p TypePair) String() string {
	return fmt.Sprintf("%v -> %v", p.Source, p.Target)
}

// Base is an ObjectFactory that allocates its resolved target type with
// Instantiate. The type pair never changes after construction, so a Base may
// be shared between goroutines.
type Base[T, U any] struct {
	pair TypePair
}

// NewBase resolves T and U from the type arguments. Both must be concrete:
// an interface type argument (any included) fails with errs.ErrTypeResolution.
func NewBase[T, U any]() (*Base[T, U], error) {
	target, source := reflect.TypeFor[T](), reflect.TypeFor[U]()

	if err := checkConcrete(target, "target"); err != nil {
		return nil, err
	}

	if err := checkConcrete(source, "source"); err != nil {
		return nil, err
	}

	return &Base[T, U]{pair: TypePair{Target: target, Source: source}}, nil
}

// MustBase is like NewBase but panics when the types cannot be resolved.
// It is meant for package-level factory variables.
func MustBase[T, U any]() *Base[T, U] {
	b, err := NewBase[T, U]()
	if err != nil {
		panic(err)
	}

	return b
}

// NewBaseOf uses the supplied types instead of the type arguments. Both must
// be non-nil, concrete, and assignable to T and U respectively.
func NewBaseOf[T, U any](target, source reflect.Type) (*Base[T, U], error) {
	if target == nil {
		return nil, errs.InvalidArgument("target type")
	}

	if source == nil {
		return nil, errs.InvalidArgument("source type")
	}

	if err := checkConcrete(target, "target"); err != nil {
		return nil, err
	}

	if err := checkConcrete(source, "source"); err != nil {
		return nil, err
	}

	if want := reflect.TypeFor[T](); !target.AssignableTo(want) {
		return nil, errs.Unresolved(target, fmt.Sprintf("target is not assignable to %v", want))
	}

	if want := reflect.TypeFor[U](); !source.AssignableTo(want) {
		return nil, errs.Unresolved(source, fmt.Sprintf("source is not assignable to %v", want))
	}

	return &Base[T, U]{pair: TypePair{Target: target, Source: source}}, nil
}

func checkConcrete(t reflect.Type, role string) error {
	base := t
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}

	if base.Kind() == reflect.Interface {
		return errs.Unresolved(t, role+" type is not concrete")
	}

	return nil
}

// Construct returns a new instance of the target type. The source is ignored.
func (b *Base[T, U]) Construct(U) (T, error) {
	if b == nil || b.pair.Target == nil {
		return *new(T), errs.Unresolved(reflect.TypeFor[T](), "factory was not created with NewBase or NewBaseOf")
	}

	v, err := Instantiate(b.pair.Target)
	if err != nil {
		return *new(T), err
	}

	return v.Interface().(T), nil
}

// Pair returns the resolved type pair.
func (b *Base[T, U]) Pair() TypePair {
	return b.pair
}

// TargetType returns the type of the objects created by this factory.
func (b *Base[T, U]) TargetType() reflect.Type {
	return b.pair.Target
}

// SourceType returns the type of the source objects.
func (b *Base[T, U]) SourceType() reflect.Type {
	return b.pair.Source
}

var _ ObjectFactory[*struct{}, int] = (*Base[*struct{}, int])(nil)
