package factory

import (
	"fmt"
	"reflect"

	"bean-mapper/errs"
)

// ObjectFactory creates a new, empty T for a given source. The source may be
// nil-like; implementations that do not use it ignore it.
type ObjectFactory[T, U any] interface {
	Construct(source U) (T, error)
}

// Func adapts a plain function to ObjectFactory.
type Func[T, U any] func(source U) (T, error)

func (f Func[T, U]) Construct(source U) (T, error) {
	return f(source)
}

// Defaulter is implemented by targets that need more than their zero value.
// SetDefaults is called on every instance Instantiate allocates.
type Defaulter interface {
	SetDefaults()
}

// Instantiate allocates a new default instance of t.
//
// Pointer types yield a pointer to a freshly allocated element; maps and
// slices are made non-nil and empty. Funcs, channels, interfaces, unsafe
// pointers and pointers to any of those or to other pointers have no default
// instance and fail with errs.ErrUninstantiableType.
func Instantiate(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, errs.InvalidArgument("type")
	}

	if t.Kind() != reflect.Ptr {
		if reason := uninstantiable(t); reason != "" {
			return reflect.Value{}, errs.Uninstantiable(t, reason)
		}

		p := reflect.New(t)
		initialize(p.Elem())
		applyDefaults(p)

		return p.Elem(), nil
	}

	elem := t.Elem()
	if elem.Kind() == reflect.Ptr {
		return reflect.Value{}, errs.Uninstantiable(t, "double pointers are not supported")
	}

	if reason := uninstantiable(elem); reason != "" {
		return reflect.Value{}, errs.Uninstantiable(t, reason)
	}

	p := reflect.New(elem)
	initialize(p.Elem())
	applyDefaults(p)

	return p, nil
}

// uninstantiable returns why t has no default instance, or "" when it has one.
func uninstantiable(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return fmt.Sprintf("%s has no default instance", t.Kind())
	default:
		return ""
	}
}

func initialize(v reflect.Value) {
	switch v.Kind() {
	case reflect.Map:
		v.Set(reflect.MakeMap(v.Type()))
	case reflect.Slice:
		v.Set(reflect.MakeSlice(v.Type(), 0, 0))
	}
}

func applyDefaults(p reflect.Value) {
	if d, ok := p.Interface().(Defaulter); ok {
		d.SetDefaults()
	}
}
