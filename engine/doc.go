// Package engine is the provider layer: interchangeable engines that populate
// a freshly constructed target from a source object.
//
// Providers are selected explicitly, by name, from configuration:
//
//	reflect  pairs exported fields by normalized name (same-type copies go through mergo)
//	json     round-trips the source through JSON (json-iterator)
//	yaml     round-trips the source through YAML (goccy/go-yaml)
//	auto     the first provider of the preference order, currently reflect
//
// Field semantics are those of each engine; this package does not define
// mapping rules of its own.
package engine
