package validator

import (
	"maps"
	"slices"
	"strings"
)

// Options holds named configuration inputs for a validator. Values are
// dynamically typed: booleans, strings, numbers, or nested mappings.
type Options map[string]any

// Messages maps error codes to human-readable message templates.
// Templates may contain %key%-style placeholders, see Base.GetMessage.
type Messages map[string]string

// ConfigureFunc is the extension point that concrete validators use to
// declare the options, messages, and required options they recognize.
// It runs during New, before any key checking, and receives the caller's
// raw option and message maps so it can make decisions based on them.
type ConfigureFunc func(b *Base, options Options, messages Messages) error

// CleanFunc carries the per-validator business logic invoked by Base.Clean
// after base normalization has been applied to the value.
type CleanFunc func(b *Base, value any) (any, error)

// Option configures a Base during construction.
type Option func(*Base)

// WithName sets the validator's type name, used in error reporting and
// debug rendering. A trailing "Validator" suffix is stripped for display.
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithConfigure sets the configuration hook run during construction.
func WithConfigure(fn ConfigureFunc) Option {
	return func(b *Base) { b.configure = fn }
}

// WithClean sets the validation logic invoked by Clean.
func WithClean(fn CleanFunc) Option {
	return func(b *Base) { b.clean = fn }
}

// WithRegistry makes the validator read its process-wide defaults (default
// messages, charset) from reg instead of the package-level registry.
func WithRegistry(reg *Registry) Option {
	return func(b *Base) { b.registry = reg }
}

// Base is the root of the validator hierarchy. It manages two parallel
// registries per validator instance: options (configuration inputs) and
// messages (error-code to template mappings). Concrete validators embed
// *Base and supply their behavior through WithConfigure and WithClean.
//
// A Base is not safe for concurrent mutation; configure it fully before
// sharing it across goroutines.
type Base struct {
	name      string
	registry  *Registry
	configure ConfigureFunc
	clean     CleanFunc

	options         Options
	messages        Messages
	requiredOptions []string

	// Snapshots taken right after the configure hook runs, before caller
	// overrides merge in. Used to compute non-default diffs for display.
	defaultOptions  Options
	defaultMessages Messages
}

// New constructs a validator from caller-supplied options and messages,
// reconciling them against the keys the validator recognizes:
//
//  1. The option registry is seeded with {trim: false} and the message
//     registry with the registry-wide default "invalid" message.
//  2. The configure hook runs and may register further recognized keys.
//  3. The current registries are snapshotted as the defaults.
//  4. Option keys the validator neither recognizes nor requires fail with
//     *UnsupportedOptionError; unknown message keys fail with
//     *UnsupportedErrorCodeError; required options with neither a default
//     nor a caller value fail with *MissingRequiredOptionError.
//  5. Caller values merge over the defaults, caller winning on collision.
//
// Construction is all-or-nothing: any failure returns a nil validator.
func New(options Options, messages Messages, opts ...Option) (*Base, error) {
	b := &Base{
		name:     "Base",
		registry: defaultRegistry,
		options:  Options{OptionTrim: false},
	}
	for _, opt := range opts {
		opt(b)
	}

	invalid, ok := b.registry.DefaultMessage(CodeInvalid)
	if !ok {
		invalid = defaultInvalidMessage
	}
	b.messages = Messages{CodeInvalid: invalid}

	if b.configure != nil {
		if err := b.configure(b, options, messages); err != nil {
			return nil, err
		}
	}

	b.defaultOptions = maps.Clone(b.options)
	b.defaultMessages = maps.Clone(b.messages)

	var unknownOptions []string
	for name := range options {
		if _, ok := b.options[name]; ok {
			continue
		}
		if slices.Contains(b.requiredOptions, name) {
			continue
		}
		unknownOptions = append(unknownOptions, name)
	}
	if len(unknownOptions) > 0 {
		slices.Sort(unknownOptions)
		return nil, &UnsupportedOptionError{Validator: b.Name(), Options: unknownOptions}
	}

	var unknownCodes []string
	for code := range messages {
		if _, ok := b.messages[code]; !ok {
			unknownCodes = append(unknownCodes, code)
		}
	}
	if len(unknownCodes) > 0 {
		slices.Sort(unknownCodes)
		return nil, &UnsupportedErrorCodeError{Validator: b.Name(), Codes: unknownCodes}
	}

	// A required option is satisfied by a configure-hook default or by
	// caller input, whichever exists.
	var missing []string
	for _, name := range b.requiredOptions {
		if _, ok := b.options[name]; ok {
			continue
		}
		if _, ok := options[name]; ok {
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredOptionError{Validator: b.Name(), Options: missing}
	}

	maps.Copy(b.options, options)
	maps.Copy(b.messages, messages)

	return b, nil
}

// Name returns the validator's display name: the configured type name with
// a trailing "Validator" suffix stripped.
func (b *Base) Name() string {
	name := strings.TrimSuffix(b.name, "Validator")
	if name == "" {
		return b.name
	}
	return name
}

// Registry returns the process-wide defaults registry this validator reads.
func (b *Base) Registry() *Registry {
	return b.registry
}
