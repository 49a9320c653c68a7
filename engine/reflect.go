package engine

import (
	"fmt"
	"reflect"
	"sync"

	"dario.cat/mergo"
	"go.uber.org/zap"

	"bean-mapper/internal/match"
)

// typePair keys the field plan cache.
type typePair struct {
	src reflect.Type
	dst reflect.Type
}

// reflectEngine copies exported fields between structs, pairing them by
// normalized name. Fields that cannot be assigned or converted are skipped.
type reflectEngine struct {
	plans sync.Map // typePair -> []match.FieldPair
	log   *zap.Logger
}

func newReflectEngine(log *zap.Logger) Engine {
	return &reflectEngine{log: log}
}

func (e *reflectEngine) Provider() Provider {
	return ProviderReflect
}

func (e *reflectEngine) Populate(dst, src any) error {
	dv, err := target(dst)
	if err != nil {
		return err
	}

	sv := reflect.ValueOf(src)
	for sv.Kind() == reflect.Ptr || sv.Kind() == reflect.Interface {
		if sv.IsNil() {
			return nil
		}

		sv = sv.Elem()
	}

	if !sv.IsValid() {
		return nil
	}

	out := dv.Elem()

	if out.Kind() == reflect.Struct && out.Type() == sv.Type() {
		// targets may be stored or defaulted, so empty source fields overwrite too
		if err := mergo.Merge(dst, sv.Interface(), mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
			return fmt.Errorf("failed to copy %v: %w", sv.Type(), err)
		}

		return nil
	}

	if !e.assign(out, sv) {
		return fmt.Errorf("%w: %v -> %v", ErrIncompatibleTypes, sv.Type(), out.Type())
	}

	return nil
}

// plan returns the cached field pairs for src -> dst.
func (e *reflectEngine) plan(src, dst reflect.Type) []match.FieldPair {
	key := typePair{src: src, dst: dst}
	if cached, ok := e.plans.Load(key); ok {
		return cached.([]match.FieldPair)
	}

	pairs := match.PairFields(src, dst)
	actual, _ := e.plans.LoadOrStore(key, pairs)

	e.log.Debug("planned field pairs",
		zap.Stringer("source", src),
		zap.Stringer("target", dst),
		zap.Int("fields", len(pairs)))

	return actual.([]match.FieldPair)
}

// assign stores src into dst and reports whether it could.
func (e *reflectEngine) assign(dst, src reflect.Value) bool {
	if !dst.CanSet() {
		return false
	}

	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return true
	}

	switch {
	case src.Kind() == reflect.Ptr:
		if src.IsNil() {
			return true
		}

		return e.assign(dst, src.Elem())
	case dst.Kind() == reflect.Ptr:
		v := reflect.New(dst.Type().Elem())
		if !e.assign(v.Elem(), src) {
			return false
		}

		dst.Set(v)

		return true
	case src.Kind() == reflect.Struct && dst.Kind() == reflect.Struct:
		e.assignStruct(dst, src)
		return true
	case src.Kind() == reflect.Slice && dst.Kind() == reflect.Slice:
		return e.assignSlice(dst, src)
	case convertible(src.Type(), dst.Type()):
		dst.Set(src.Convert(dst.Type()))
		return true
	default:
		return false
	}
}

func (e *reflectEngine) assignStruct(dst, src reflect.Value) {
	for _, p := range e.plan(src.Type(), dst.Type()) {
		sf, err := src.FieldByIndexErr(p.Source)
		if err != nil {
			// nil embedded pointer on the source side
			continue
		}

		df, ok := fieldByIndexAlloc(dst, p.Target)
		if !ok || !e.assign(df, sf) {
			e.log.Debug("skipped field",
				zap.String("field", p.Name),
				zap.Stringer("source", sf.Type()),
				zap.Stringer("target", dst.Type()))
		}
	}
}

func (e *reflectEngine) assignSlice(dst, src reflect.Value) bool {
	if src.IsNil() {
		return true
	}

	out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
	for i := range src.Len() {
		if !e.assign(out.Index(i), src.Index(i)) {
			return false
		}
	}

	dst.Set(out)

	return true
}

// fieldByIndexAlloc is FieldByIndex that allocates nil embedded pointers on
// the way down.
func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, true
}

// convertible limits reflect conversions to numeric, boolean and string
// families, so ints never turn into strings.
func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}

	return family(src.Kind()) != familyOther && family(src.Kind()) == family(dst.Kind())
}

type kindFamily int

const (
	familyOther kindFamily = iota
	familyNumeric
	familyBool
	familyString
)

func family(k reflect.Kind) kindFamily {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return familyNumeric
	case reflect.Bool:
		return familyBool
	case reflect.String:
		return familyString
	default:
		return familyOther
	}
}
