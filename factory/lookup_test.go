package factory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bean-mapper/errs"
)

var errStorage = errors.New("storage offline")

type failingRepository struct{}

func (failingRepository) Find(int64) (*Foo, bool, error) {
	return nil, false, errStorage
}

func fooID(dto *FooDto) (int64, bool) {
	return dto.ID, dto.ID != 0
}

func newFooLookup(t *testing.T, repo Repository[*Foo, int64], log *zap.Logger) *Lookup[*Foo, *FooDto, int64] {
	t.Helper()

	l, err := NewLookup[*Foo, *FooDto, int64](MustBase[*Foo, *FooDto](), repo, fooID, log)
	require.NoError(t, err)

	return l
}

func TestLookup_ReturnsStoredTarget(t *testing.T) {
	repo := NewMemoryRepository[*Foo, int64]()
	stored := &Foo{ID: 42, Name: "stored"}
	repo.Save(42, stored)

	l := newFooLookup(t, repo, nil)

	got, err := l.Construct(&FooDto{ID: 42})
	require.NoError(t, err)
	assert.Same(t, stored, got)
}

func TestLookup_FallsBackToNewInstance(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := newFooLookup(t, NewMemoryRepository[*Foo, int64](), zap.New(core))

	tests := []struct {
		name   string
		source *FooDto
	}{
		{"nil source", nil},
		{"no identifier", &FooDto{}},
		{"unknown identifier", &FooDto{ID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Construct(tt.source)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Zero(t, got.ID)
		})
	}

	assert.Equal(t, 1, logs.FilterMessage("target not found, creating a new instance").Len())
}

func TestLookup_RepositoryError(t *testing.T) {
	l := newFooLookup(t, failingRepository{}, nil)

	_, err := l.Construct(&FooDto{ID: 1})
	require.ErrorIs(t, err, errStorage)
	assert.Contains(t, err.Error(), "*factory.Foo")
}

func TestNewLookup_NilArguments(t *testing.T) {
	base := MustBase[*Foo, *FooDto]()
	repo := NewMemoryRepository[*Foo, int64]()

	_, err := NewLookup[*Foo, *FooDto, int64](nil, repo, fooID, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewLookup[*Foo, *FooDto, int64](base, nil, fooID, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	var nilRepo *MemoryRepository[*Foo, int64]

	_, err = NewLookup[*Foo, *FooDto, int64](base, nilRepo, fooID, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewLookup[*Foo, *FooDto, int64](base, repo, nil, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository[string, int]()
	repo.Save(1, "one")
	repo.Save(2, "two")
	assert.Equal(t, 2, repo.Len())

	v, ok, err := repo.Find(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	repo.Delete(1)
	_, ok, err = repo.Find(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

type Account struct {
	Ref   uuid.UUID
	Owner string
}

type AccountDto struct {
	Ref   string
	Owner string
}

func TestLookup_UUIDKeys(t *testing.T) {
	repo := NewMemoryRepository[*Account, uuid.UUID]()

	ids := make([]uuid.UUID, 8)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)

		go func() {
			defer wg.Done()
			repo.Save(id, &Account{Ref: id, Owner: fmt.Sprintf("owner-%d", i)})
		}()
	}
	wg.Wait()

	require.Equal(t, len(ids), repo.Len())

	lookup, err := NewLookup[*Account, *AccountDto, uuid.UUID](
		MustBase[*Account, *AccountDto](),
		repo,
		func(dto *AccountDto) (uuid.UUID, bool) {
			id, err := uuid.Parse(dto.Ref)
			return id, err == nil
		},
		nil,
	)
	require.NoError(t, err)

	found, err := lookup.Construct(&AccountDto{Ref: ids[3].String()})
	require.NoError(t, err)
	assert.Equal(t, ids[3], found.Ref)
	assert.Equal(t, "owner-3", found.Owner)

	fresh, err := lookup.Construct(&AccountDto{Ref: "not-a-uuid"})
	require.NoError(t, err)
	assert.Equal(t, &Account{}, fresh)
}
