// Package validator provides the base layer of a validator hierarchy: per
// validator, two parallel key/value registries — options (configuration
// inputs such as `trim`) and messages (error-code to human-readable
// template mappings) — reconciled at construction time against the keys
// the validator declares it recognizes.
//
// The package deliberately contains no field-level validation rules.
// Concrete validators embed *Base and contribute two hooks: a
// ConfigureFunc that declares recognized options, messages, and required
// option names before reconciliation runs, and a CleanFunc carrying the
// actual validation logic invoked through Clean.
//
// # Architecture
//
// Construction is all-or-nothing. New seeds the registries with the stock
// defaults (trim: false, the "invalid" message), runs the configure hook,
// snapshots the result, and then rejects caller input containing option
// keys that are neither recognized nor required (*UnsupportedOptionError),
// message codes never declared (*UnsupportedErrorCodeError), or required
// options that resolved to no value (*MissingRequiredOptionError). Only
// then do caller values merge over the defaults, caller winning.
//
// Mutation after construction comes in two explicit families: checked
// single-key setters (SetOption, SetMessage) that fail on unknown keys,
// and unchecked operations (AddOption, AddMessage, SetOptions,
// SetMessages) that bypass key checking entirely. The split is intentional
// API surface — the unchecked family is the escape hatch for bulk
// configuration.
//
// Process-wide defaults (default message texts, charset) live in a
// Registry. The package keeps a default one behind SetDefaultMessage,
// SetCharset, and Charset; pass an explicit Registry through WithRegistry
// when isolation matters, e.g. in tests. Registry mutation is a
// startup-time activity: validators capture defaults when constructed.
//
// # Usage
//
//	v, err := validator.New(
//	    validator.Options{"max_length": 10},
//	    validator.Messages{"max_length": "%value% is too long (%max_length% max)"},
//	    validator.WithName("StringValidator"),
//	    validator.WithConfigure(func(b *validator.Base, _ validator.Options, _ validator.Messages) error {
//	        b.AddOption("max_length", nil)
//	        b.AddMessage("max_length", "too long")
//	        return nil
//	    }),
//	)
//	if err != nil {
//	    // configuration mistake, surface immediately
//	}
//	msg := v.GetMessage("max_length", map[string]any{"value": "abcdefghijk", "max_length": 10})
//
// # Error Handling
//
// The three construction errors are typed and carry the validator's
// display name plus the full sorted list of offending keys; use errors.As
// to inspect them. They signal programmer or configuration mistakes, never
// transient conditions — there is no retry path.
package validator
