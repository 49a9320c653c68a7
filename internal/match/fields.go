package match

import (
	"reflect"
)

// FieldPair links a target field to the source field that populates it.
// Indexes are reflect index paths, usable with FieldByIndex.
type FieldPair struct {
	Name   string
	Target []int
	Source []int
}

// PairFields matches the exported fields of the dst struct type to those of
// src. Fields promoted from embedded structs take part. An exact name match is
// preferred; otherwise the first source field with the same normalized name is
// used. Pairs are returned in target field order. Non-struct types yield nil.
func PairFields(src, dst reflect.Type) []FieldPair {
	if src.Kind() != reflect.Struct || dst.Kind() != reflect.Struct {
		return nil
	}

	exact := make(map[string][]int)
	normalized := make(map[string][]int)

	for _, f := range exportedFields(src) {
		exact[f.Name] = f.Index

		key := NormalizeIdent(f.Name)
		if _, exists := normalized[key]; !exists {
			normalized[key] = f.Index
		}
	}

	var pairs []FieldPair

	for _, f := range exportedFields(dst) {
		index, ok := exact[f.Name]
		if !ok {
			index, ok = normalized[NormalizeIdent(f.Name)]
		}

		if !ok {
			continue
		}

		pairs = append(pairs, FieldPair{Name: f.Name, Target: f.Index, Source: index})
	}

	return pairs
}

// exportedFields lists the exported, non-embedded-struct fields of t,
// including promoted ones.
func exportedFields(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}

		if f.Anonymous && indirect(f.Type).Kind() == reflect.Struct {
			continue
		}

		out = append(out, f)
	}

	return out
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
