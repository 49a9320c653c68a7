package iterables

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"bean-mapper/errs"
	"bean-mapper/internal/common"
)

// Lazy is an Iterable view that maps the elements of a source Iterable on
// demand. It stores no mapped values: every iterator re-reads the source and
// calls the mapper once per element returned.
type Lazy[T, U any] struct {
	source Iterable[T]
	mapper Mapper[T, U]
	log    *zap.Logger
}

// LazyOption configures a Lazy.
type LazyOption func(*lazyOptions)

type lazyOptions struct {
	log *zap.Logger
}

// WithLogger makes the Lazy log iterator creation at debug level.
func WithLogger(log *zap.Logger) LazyOption {
	return func(o *lazyOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// NewLazy returns a lazy view of source mapped through mapper.
func NewLazy[T, U any](source Iterable[T], mapper Mapper[T, U], opts ...LazyOption) (*Lazy[T, U], error) {
	if common.IsNil(source) {
		return nil, errs.InvalidArgument("source iterable")
	}

	if common.IsNil(mapper) {
		return nil, errs.InvalidArgument("mapper")
	}

	o := lazyOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Lazy[T, U]{source: source, mapper: mapper, log: o.log}, nil
}

// Iterator returns a new MappingIterator over a fresh source iterator.
func (l *Lazy[T, U]) Iterator() Iterator[U] {
	it := l.source.Iterator()

	l.log.Debug("creating iterator from lazy iterable",
		zap.String("source", fmt.Sprintf("%T", l.source)),
		zap.String("mapper", fmt.Sprintf("%T", l.mapper)),
	)

	return &MappingIterator[T, U]{delegate: it, mapper: l.mapper}
}

// SinglePass reports whether the source can be iterated only once.
func (l *Lazy[T, U]) SinglePass() bool {
	return isSinglePass(l.source)
}

// SizeHint returns the size of the source when it is known without iterating.
// Nothing is mapped.
func (l *Lazy[T, U]) SizeHint() (int, bool) {
	return knownSize(l.source)
}

// All returns an iter.Seq over the mapped elements.
func (l *Lazy[T, U]) All() iter.Seq[U] {
	return Seq[U](l)
}

var (
	_ Iterable[int] = (*Lazy[string, int])(nil)
	_ SinglePass    = (*Lazy[string, int])(nil)
	_ SizeHint      = (*Lazy[string, int])(nil)
)
