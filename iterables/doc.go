// Package iterables provides pull iterators, the concrete collections the
// mapping layer copies into, and the lazy mapping view used to map one
// sequence into another without materializing it.
//
// # Iteration protocol
//
//	it := src.Iterator()
//	defer iterables.Close(it)
//	for it.HasNext() {
//		v, err := it.Next()
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// Iterators are single-owner: one goroutine at a time. Iterables produce a
// fresh iterator on each call and may be shared when their source allows it.
//
// # Lazy mapping
//
// Lazy wraps a source Iterable and a Mapper. Nothing is mapped until an
// iterator produced by Lazy is advanced, each Next maps exactly one element,
// and Remove is forwarded to the source iterator:
//
//	dtos, err := iterables.NewLazy(users, iterables.MapperFunc[*User, *UserDTO](toDTO))
//	for dto := range dtos.All() {
//		...
//	}
//
// # Realization
//
// ToList, ToSet and Size turn any Iterable into a concrete collection or a
// count. Inputs marked SinglePass are consumed by ToList and ToSet but refused
// by Size, so they are never counted and then found empty. A Lazy view
// reports the SinglePass flag and the size of its source, so Size neither
// consumes a single-pass source through it nor maps a collection to count it.
package iterables
