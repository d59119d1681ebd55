package validator

import (
	"maps"
	"slices"
)

// OptionTrim is the one option every validator recognizes: when true,
// Clean trims surrounding whitespace from string values.
const OptionTrim = "trim"

// GetOption returns the current value of an option, or nil when the
// option is not set.
func (b *Base) GetOption(name string) any {
	return b.options[name]
}

// HasOption reports whether the option is currently set.
func (b *Base) HasOption(name string) bool {
	_, ok := b.options[name]
	return ok
}

// AddOption inserts or updates an option without any key checking. It is
// primarily meant for configure hooks declaring the options a validator
// recognizes, but remains available afterwards as the unchecked escape
// hatch mirroring SetOptions.
func (b *Base) AddOption(name string, value any) {
	b.options[name] = value
}

// SetOption updates an option the validator already recognizes or has
// declared required. Unknown names fail with *UnsupportedOptionError.
func (b *Base) SetOption(name string, value any) error {
	if _, ok := b.options[name]; !ok && !slices.Contains(b.requiredOptions, name) {
		return &UnsupportedOptionError{Validator: b.Name(), Options: []string{name}}
	}
	b.options[name] = value
	return nil
}

// GetOptions returns a copy of the option registry.
func (b *Base) GetOptions() Options {
	return maps.Clone(b.options)
}

// SetOptions replaces the entire option registry without key checking.
func (b *Base) SetOptions(options Options) {
	b.options = make(Options, len(options))
	maps.Copy(b.options, options)
}

// AddRequiredOption declares that an option must resolve to a value before
// the validator is usable. Adding a name after construction does not
// retroactively re-run the missing-required-option check.
func (b *Base) AddRequiredOption(name string) {
	b.requiredOptions = append(b.requiredOptions, name)
}

// RequiredOptions returns the declared required option names in
// declaration order.
func (b *Base) RequiredOptions() []string {
	return slices.Clone(b.requiredOptions)
}

// DefaultOptions returns the option snapshot captured at construction,
// after the configure hook ran but before caller overrides merged in.
func (b *Base) DefaultOptions() Options {
	return maps.Clone(b.defaultOptions)
}

// SetDefaultOptions replaces the option snapshot that String uses as the
// baseline when deciding which options count as non-default.
func (b *Base) SetDefaultOptions(options Options) {
	b.defaultOptions = make(Options, len(options))
	maps.Copy(b.defaultOptions, options)
}

func (b *Base) boolOption(name string) bool {
	v, _ := b.options[name].(bool)
	return v
}
