package factory

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bean-mapper/errs"
)

type withDefaults struct {
	Status string
	Limit  int
}

func (w *withDefaults) SetDefaults() {
	w.Status = "pending"
	w.Limit = 10
}

func TestInstantiate(t *testing.T) {
	tests := []struct {
		name  string
		typ   reflect.Type
		check func(t *testing.T, v reflect.Value)
	}{
		{
			name: "pointer to struct",
			typ:  reflect.TypeFor[*Foo](),
			check: func(t *testing.T, v reflect.Value) {
				require.False(t, v.IsNil())
				assert.Equal(t, &Foo{}, v.Interface())
			},
		},
		{
			name: "struct value",
			typ:  reflect.TypeFor[FooDto](),
			check: func(t *testing.T, v reflect.Value) {
				assert.Equal(t, FooDto{}, v.Interface())
			},
		},
		{
			name: "map",
			typ:  reflect.TypeFor[map[string]int](),
			check: func(t *testing.T, v reflect.Value) {
				assert.False(t, v.IsNil())
				assert.Equal(t, 0, v.Len())
			},
		},
		{
			name: "slice",
			typ:  reflect.TypeFor[[]int](),
			check: func(t *testing.T, v reflect.Value) {
				assert.False(t, v.IsNil())
			},
		},
		{
			name: "scalar",
			typ:  reflect.TypeFor[int](),
			check: func(t *testing.T, v reflect.Value) {
				assert.Equal(t, int64(0), v.Int())
			},
		},
		{
			name: "defaulter by pointer",
			typ:  reflect.TypeFor[*withDefaults](),
			check: func(t *testing.T, v reflect.Value) {
				assert.Equal(t, &withDefaults{Status: "pending", Limit: 10}, v.Interface())
			},
		},
		{
			name: "defaulter by value",
			typ:  reflect.TypeFor[withDefaults](),
			check: func(t *testing.T, v reflect.Value) {
				assert.Equal(t, withDefaults{Status: "pending", Limit: 10}, v.Interface())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Instantiate(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, v.Type())
			tt.check(t, v)
		})
	}
}

func TestInstantiate_Uninstantiable(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[func()](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[Shape](),
		reflect.TypeFor[unsafe.Pointer](),
		reflect.TypeFor[**Foo](),
		reflect.TypeFor[*func()](),
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			_, err := Instantiate(typ)
			require.ErrorIs(t, err, errs.ErrUninstantiableType)
			assert.Contains(t, err.Error(), typ.String())
		})
	}
}

func TestInstantiate_Nil(t *testing.T) {
	_, err := Instantiate(nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestFunc(t *testing.T) {
	var f ObjectFactory[*Foo, *FooDto] = Func[*Foo, *FooDto](func(src *FooDto) (*Foo, error) {
		return &Foo{ID: src.ID}, nil
	})

	foo, err := f.Construct(&FooDto{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(9), foo.ID)
}
