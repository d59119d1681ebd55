package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valkit/valkit/pkg/validator"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("seeds trim and invalid", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(nil, nil)
		require.NoError(t, err)

		assert.Equal(t, false, v.GetOption("trim"))
		assert.Equal(t, "The field is invalid.", v.GetMessage("invalid", nil))
	})

	t.Run("caller values win over defaults", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"trim": true},
			validator.Messages{"invalid": "Nope"},
		)
		require.NoError(t, err)

		assert.Equal(t, true, v.GetOption("trim"))
		assert.Equal(t, "Nope", v.GetMessage("invalid", nil))
	})

	t.Run("snapshots exclude caller overrides", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"trim": true},
			validator.Messages{"invalid": "Nope"},
		)
		require.NoError(t, err)

		assert.Equal(t, validator.Options{"trim": false}, v.DefaultOptions())
		assert.Equal(t, validator.Messages{"invalid": "The field is invalid."}, v.DefaultMessages())
	})
}

func TestNew_ConfigureHook(t *testing.T) {
	t.Parallel()

	t.Run("hook-declared keys accept caller input", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"max_length": 10},
			validator.Messages{"max_length": "too long, %max_length% at most"},
			validator.WithConfigure(func(b *validator.Base, _ validator.Options, _ validator.Messages) error {
				b.AddOption("max_length", nil)
				b.AddMessage("max_length", "too long")
				return nil
			}),
		)
		require.NoError(t, err)

		assert.Equal(t, 10, v.GetOption("max_length"))
		assert.Equal(t, "too long, 10 at most", v.GetMessage("max_length", map[string]any{"max_length": 10}))
	})

	t.Run("hook sees raw caller maps", func(t *testing.T) {
		t.Parallel()

		var seen validator.Options
		_, err := validator.New(
			validator.Options{"min": 1},
			nil,
			validator.WithConfigure(func(b *validator.Base, options validator.Options, _ validator.Messages) error {
				seen = options
				b.AddOption("min", 0)
				return nil
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, validator.Options{"min": 1}, seen)
	})

	t.Run("hook error aborts construction", func(t *testing.T) {
		t.Parallel()

		hookErr := errors.New("bad configuration")
		v, err := validator.New(nil, nil,
			validator.WithConfigure(func(*validator.Base, validator.Options, validator.Messages) error {
				return hookErr
			}),
		)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, hookErr)
	})
}

func TestNew_UnsupportedOption(t *testing.T) {
	t.Parallel()

	t.Run("lists every unknown key sorted", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"zebra": 1, "alpha": 2},
			nil,
			validator.WithName("EmailValidator"),
		)
		require.Nil(t, v)

		var unsupported *validator.UnsupportedOptionError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "Email", unsupported.Validator)
		assert.Equal(t, []string{"alpha", "zebra"}, unsupported.Options)
		assert.Equal(t, "validator Email does not support the following options: alpha, zebra", err.Error())
	})

	t.Run("required names are not unknown", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"pattern": ".*"},
			nil,
			validator.WithConfigure(func(b *validator.Base, _ validator.Options, _ validator.Messages) error {
				b.AddRequiredOption("pattern")
				return nil
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, ".*", v.GetOption("pattern"))
	})
}

func TestNew_UnsupportedErrorCode(t *testing.T) {
	t.Parallel()

	v, err := validator.New(
		nil,
		validator.Messages{"nonsense": "x", "bogus": "y"},
		validator.WithName("NumberValidator"),
	)
	require.Nil(t, v)

	var unsupported *validator.UnsupportedErrorCodeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Number", unsupported.Validator)
	assert.Equal(t, []string{"bogus", "nonsense"}, unsupported.Codes)
}

func TestNew_MissingRequiredOption(t *testing.T) {
	t.Parallel()

	configure := func(b *validator.Base, _ validator.Options, _ validator.Messages) error {
		b.AddRequiredOption("choices")
		return nil
	}

	t.Run("fails when neither default nor caller value exists", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(nil, nil,
			validator.WithName("ChoiceValidator"),
			validator.WithConfigure(configure),
		)
		require.Nil(t, v)

		var missing *validator.MissingRequiredOptionError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Choice", missing.Validator)
		assert.Equal(t, []string{"choices"}, missing.Options)
	})

	t.Run("satisfied by caller input", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(
			validator.Options{"choices": []string{"a", "b"}},
			nil,
			validator.WithConfigure(configure),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v.GetOption("choices"))
	})

	t.Run("satisfied by a hook default", func(t *testing.T) {
		t.Parallel()

		v, err := validator.New(nil, nil,
			validator.WithConfigure(func(b *validator.Base, _ validator.Options, _ validator.Messages) error {
				b.AddRequiredOption("choices")
				b.AddOption("choices", []string{"x"})
				return nil
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, v.GetOption("choices"))
	})
}

func TestBase_Name(t *testing.T) {
	t.Parallel()

	t.Run("strips the Validator suffix", func(t *testing.T) {
		v, err := validator.New(nil, nil, validator.WithName("DateValidator"))
		require.NoError(t, err)
		assert.Equal(t, "Date", v.Name())
	})

	t.Run("keeps names without the suffix", func(t *testing.T) {
		v, err := validator.New(nil, nil, validator.WithName("Date"))
		require.NoError(t, err)
		assert.Equal(t, "Date", v.Name())
	})

	t.Run("keeps the bare suffix as-is", func(t *testing.T) {
		v, err := validator.New(nil, nil, validator.WithName("Validator"))
		require.NoError(t, err)
		assert.Equal(t, "Validator", v.Name())
	})
}
