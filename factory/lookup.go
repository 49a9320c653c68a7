package factory

import (
	"fmt"

	"go.uber.org/zap"

	"bean-mapper/errs"
	"bean-mapper/internal/common"
)

// Repository finds stored targets by identifier.
type Repository[T any, ID comparable] interface {
	// Find returns the stored target and true, or false when there is none.
	Find(id ID) (T, bool, error)
}

// IdentifierFunc extracts the identifier of the target a source refers to.
// It returns false when the source carries no identifier.
type IdentifierFunc[U any, ID comparable] func(source U) (ID, bool)

// Lookup returns the stored target identified by the source when the
// repository has one, and a new instance from its Base otherwise. Population
// by the mapping engine then updates the stored target in place.
type Lookup[T, U any, ID comparable] struct {
	base     *Base[T, U]
	repo     Repository[T, ID]
	identify IdentifierFunc[U, ID]
	log      *zap.Logger
}

// NewLookup returns a Lookup. A nil log discards log output.
func NewLookup[T, U any, ID comparable](
	base *Base[T, U],
	repo Repository[T, ID],
	identify IdentifierFunc[U, ID],
	log *zap.Logger,
) (*Lookup[T, U, ID], error) {
	if base == nil {
		return nil, errs.InvalidArgument("base factory")
	}

	if common.IsNil(repo) {
		return nil, errs.InvalidArgument("repository")
	}

	if identify == nil {
		return nil, errs.InvalidArgument("identifier func")
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Lookup[T, U, ID]{base: base, repo: repo, identify: identify, log: log}, nil
}

func (l *Lookup[T, U, ID]) Construct(source U) (T, error) {
	if common.IsNil(source) {
		return l.base.Construct(source)
	}

	id, ok := l.identify(source)
	if !ok {
		return l.base.Construct(source)
	}

	found, ok, err := l.repo.Find(id)
	if err != nil {
		return *new(T), fmt.Errorf("failed to look up %v with id %v: %w", l.base.TargetType(), id, err)
	}

	if ok {
		return found, nil
	}

	l.log.Debug("target not found, creating a new instance",
		zap.Stringer("types", l.base.Pair()),
		zap.Any("id", id),
	)

	return l.base.Construct(source)
}

var _ ObjectFactory[*struct{}, int] = (*Lookup[*struct{}, int, int])(nil)
