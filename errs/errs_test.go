package errs

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("mapper")

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualError(t, err, "invalid argument: mapper must not be nil")
}

func TestTypeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "uninstantiable with reason",
			err:      Uninstantiable(reflect.TypeFor[func()](), "func has no default instance"),
			sentinel: ErrUninstantiableType,
			expected: "uninstantiable type func(): func has no default instance",
		},
		{
			name:     "unresolved without reason",
			err:      Unresolved(reflect.TypeFor[any](), ""),
			sentinel: ErrTypeResolution,
			expected: "type resolution failed interface {}",
		},
		{
			name:     "nil type",
			err:      Unresolved(nil, "missing"),
			sentinel: ErrTypeResolution,
			expected: "type resolution failed <nil>: missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.EqualError(t, tt.err, tt.expected)

			wrapped := fmt.Errorf("outer: %w", tt.err)

			var te *TypeError
			assert.True(t, errors.As(wrapped, &te))
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}
