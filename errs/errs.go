// Package errs holds the error taxonomy shared by the iterables, factory,
// engine and mapper packages.
//
// Callers match with errors.Is; every error returned by this module wraps one
// of the sentinels below.
package errs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument reports a required reference that was nil.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExhausted reports iteration past the last element.
	ErrExhausted = errors.New("sequence exhausted")

	// ErrUnsupportedOperation reports an operation the receiver does not implement,
	// such as removal on a read-only iterator.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIllegalState reports a removal requested with no current element.
	ErrIllegalState = errors.New("illegal iterator state")

	// ErrUninstantiableType reports a target type without a usable default instance.
	ErrUninstantiableType = errors.New("uninstantiable type")

	// ErrTypeResolution reports a factory whose target or source type is not concrete.
	ErrTypeResolution = errors.New("type resolution failed")

	// ErrUnknownProvider reports an engine provider name that is not registered.
	ErrUnknownProvider = errors.New("unknown provider")
)

// InvalidArgument returns an ErrInvalidArgument naming the offending argument.
func InvalidArgument(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
}

// TypeError binds a type-related sentinel to the type that triggered it.
type TypeError struct {
	Kind   error
	Type   reflect.Type
	Reason string
}

// Error formats as "<kind> <type>: <reason>".
func (e *TypeError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}

	if e.Reason == "" {
		return fmt.Sprintf("%v %s", e.Kind, name)
	}

	return fmt.Sprintf("%v %s: %s", e.Kind, name, e.Reason)
}

func (e *TypeError) Unwrap() error {
	return e.Kind
}

// Uninstantiable returns a TypeError wrapping ErrUninstantiableType.
func Uninstantiable(t reflect.Type, reason string) error {
	return &TypeError{Kind: ErrUninstantiableType, Type: t, Reason: reason}
}

// Unresolved returns a TypeError wrapping ErrTypeResolution.
func Unresolved(t reflect.Type, reason string) error {
	return &TypeError{Kind: ErrTypeResolution, Type: t, Reason: reason}
}
