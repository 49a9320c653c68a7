package mapper

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"bean-mapper/engine"
	"bean-mapper/errs"
	"bean-mapper/factory"
	"bean-mapper/internal/common"
	"bean-mapper/iterables"
)

// Bean maps a T into a U allocated by a factory and populated by an engine.
type Bean[T, U any] struct {
	engine  engine.Engine
	factory factory.ObjectFactory[U, T]
	log     *zap.Logger
}

// NewBean returns a Bean. A nil log discards log output.
func NewBean[T, U any](eng engine.Engine, f factory.ObjectFactory[U, T], log *zap.Logger) (*Bean[T, U], error) {
	if common.IsNil(eng) {
		return nil, errs.InvalidArgument("engine")
	}

	if common.IsNil(f) {
		return nil, errs.InvalidArgument("object factory")
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Bean[T, U]{engine: eng, factory: f, log: log}, nil
}

// Provider returns the provider of the underlying engine.
func (b *Bean[T, U]) Provider() engine.Provider {
	return b.engine.Provider()
}

// TryMap maps source, returning the zero U for nil-like input.
func (b *Bean[T, U]) TryMap(source T) (U, error) {
	var zero U

	if common.IsNil(source) {
		return zero, nil
	}

	out, err := b.factory.Construct(source)
	if err != nil {
		return zero, fmt.Errorf("failed to construct target: %w", err)
	}

	// pointer targets are populated in place, values through their address
	dst := any(&out)
	if reflect.TypeFor[U]().Kind() == reflect.Ptr {
		if common.IsNil(out) {
			return zero, errs.InvalidArgument("constructed target")
		}

		dst = out
	}

	if err := b.engine.Populate(dst, source); err != nil {
		return zero, fmt.Errorf("%v engine failed to map %T: %w", b.engine.Provider(), source, err)
	}

	return out, nil
}

// Map is TryMap with errors logged and turned into the zero U.
func (b *Bean[T, U]) Map(source T) U {
	out, err := b.TryMap(source)
	if err != nil {
		b.log.Error("mapping failed", zap.Error(err))
	}

	return out
}

func (b *Bean[T, U]) MapAll(source iterables.Iterable[T]) (iterables.Iterable[U], error) {
	return MapAll[T, U](b, source, iterables.WithLogger(b.log))
}

var _ ObjectMapper[*struct{}, *struct{}] = (*Bean[*struct{}, *struct{}])(nil)
