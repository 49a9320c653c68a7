package mapper

import (
	"bean-mapper/errs"
	"bean-mapper/internal/common"
	"bean-mapper/iterables"
)

// ObjectMapper maps single objects, and iterables of them, from T to U.
type ObjectMapper[T, U any] interface {
	iterables.Mapper[T, U]

	// MapAll returns a lazy view of source mapped through Map. Every
	// iteration re-reads source.
	MapAll(source iterables.Iterable[T]) (iterables.Iterable[U], error)
}

// Func adapts a plain mapping function to ObjectMapper.
type Func[T, U any] func(T) U

func (f Func[T, U]) Map(source T) U {
	return f(source)
}

func (f Func[T, U]) MapAll(source iterables.Iterable[T]) (iterables.Iterable[U], error) {
	return MapAll[T, U](f, source)
}

// MapAll returns a lazy view of source mapped through m. A nil source or
// mapper fails with errs.ErrInvalidArgument.
func MapAll[T, U any](m iterables.Mapper[T, U], source iterables.Iterable[T], opts ...iterables.LazyOption) (iterables.Iterable[U], error) {
	lazy, err := iterables.NewLazy(source, m, opts...)
	if err != nil {
		return nil, err
	}

	return lazy, nil
}

// MapKeyed maps every value of source through m, keeping keys. Unlike MapAll
// the result is materialized. A nil source yields an empty map.
func MapKeyed[K comparable, T, U any](m iterables.Mapper[T, U], source map[K]T) (map[K]U, error) {
	if common.IsNil(m) {
		return nil, errs.InvalidArgument("mapper")
	}

	out := make(map[K]U, len(source))
	for k, v := range source {
		out[k] = m.Map(v)
	}

	return out, nil
}

var _ ObjectMapper[int, string] = Func[int, string](nil)
