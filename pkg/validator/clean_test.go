package validator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valkit/valkit/pkg/validator"
)

func TestBase_Clean(t *testing.T) {
	t.Parallel()

	t.Run("passes values through by default", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(nil, nil)
		require.NoError(t, err)

		got, err := v.Clean("  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "  hello  ", got)
	})

	t.Run("trims strings when trim is enabled", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(validator.Options{"trim": true}, nil)
		require.NoError(t, err)

		got, err := v.Clean("  hello \n")
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("leaves non-strings alone when trim is enabled", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(validator.Options{"trim": true}, nil)
		require.NoError(t, err)

		got, err := v.Clean(42)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("hands the normalized value to the clean hook", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"trim": true},
			nil,
			validator.WithClean(func(b *validator.Base, value any) (any, error) {
				return strings.ToUpper(value.(string)), nil
			}),
		)
		require.NoError(t, err)

		got, err := v.Clean("  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "HELLO", got)
	})

	t.Run("hook errors propagate", func(t *testing.T) {
		t.Parallel()

		hookErr := errors.New("value rejected")
		v, err := validator.New(nil, nil,
			validator.WithClean(func(*validator.Base, any) (any, error) {
				return nil, hookErr
			}),
		)
		require.NoError(t, err)

		_, err = v.Clean("anything")
		assert.ErrorIs(t, err, hookErr)

		assert.ErrorIs(t, v.Validate("anything"), hookErr)
	})

	t.Run("Validate is a no-op without a hook", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(nil, nil)
		require.NoError(t, err)
		assert.NoError(t, v.Validate("anything"))
	})
}
