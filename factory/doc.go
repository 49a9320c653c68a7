// Package factory creates the empty target objects that a mapping engine
// populates.
//
// Base resolves its target and source types once, at construction, either
// from its own type arguments (NewBase) or from explicit reflect.Type values
// (NewBaseOf). The explicit form is the one to use when T is an interface
// served by a concrete implementation:
//
//	type UserFactory struct {
//		*factory.Base[*User, *UserDTO]
//	}
//
//	base, err := factory.NewBase[*User, *UserDTO]()
//	shapes, err := factory.NewBaseOf[Shape, any](reflect.TypeFor[*Circle](), reflect.TypeFor[*CircleDTO]())
//
// Lookup layers a repository in front of Base: the source is asked for an
// identifier, and a stored target is returned when one exists.
package factory
