// Package mapper exposes the uniform mapping interface: single objects,
// iterables (lazily) and keyed collections.
//
// A Bean combines an object factory, which allocates the target, with an
// engine, which populates it from the source:
//
//	eng, _ := engine.New(engine.ProviderReflect, log)
//	m := mapper.NewBean[*Customer, *CustomerDto](eng, factory.MustBase[*CustomerDto, *Customer](), log)
//	dto := m.Map(customer)
//
// Nil input maps to the zero target; mapping errors are logged by Map and
// returned by TryMap.
package mapper
