package engine

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"bean-mapper/errs"
	"bean-mapper/internal/common"
)

// ErrIncompatibleTypes is returned when an engine cannot populate the target
// from the source at all.
var ErrIncompatibleTypes = errors.New("incompatible source and target types")

// Engine populates dst, a non-nil pointer to a freshly constructed target,
// from src. A nil src leaves dst untouched.
type Engine interface {
	Provider() Provider
	Populate(dst, src any) error
}

// Constructor builds an engine.
type Constructor func(log *zap.Logger) Engine

var constructors = map[Provider]Constructor{
	ProviderReflect: newReflectEngine,
	ProviderJSON:    newJSONEngine,
	ProviderYAML:    newYAMLEngine,
}

// New returns the engine for p. ProviderAuto is resolved first. A nil log
// discards log output.
func New(p Provider, log *zap.Logger) (Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	resolved := p.Resolve()

	newEngine, ok := constructors[resolved]
	if !ok {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnknownProvider, p)
	}

	if p == ProviderAuto {
		log.Info("auto provider resolved", zap.Stringer("provider", resolved))
	}

	return newEngine(log.Named(resolved.String())), nil
}

// NewByName parses name and returns its engine.
func NewByName(name string, log *zap.Logger) (Engine, error) {
	p, err := ParseProvider(name)
	if err != nil {
		return nil, err
	}

	return New(p, log)
}

// target checks dst is a non-nil pointer and returns it as a reflect.Value.
func target(dst any) (reflect.Value, error) {
	if common.IsNil(dst) {
		return reflect.Value{}, errs.InvalidArgument("target")
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("%w: target must be a pointer, got %v", errs.ErrInvalidArgument, v.Type())
	}

	return v, nil
}
