package validator

import (
	"github.com/valkit/valkit/pkg/sanitizer"
)

// Clean runs the validator against a value. The base layer applies the
// normalization every validator shares: when the trim option is enabled
// and the value is a string, surrounding whitespace is removed. The value
// is then handed to the clean hook, which holds the per-validator
// business logic; without a hook the value passes through unchanged.
func (b *Base) Clean(value any) (any, error) {
	if s, ok := value.(string); ok && b.boolOption(OptionTrim) {
		value = sanitizer.Trim(s)
	}
	if b.clean != nil {
		return b.clean(b, value)
	}
	return value, nil
}

// Validate runs Clean for its side effects and reports only the error.
// At the base of the hierarchy this is a no-op unless a clean hook is set.
func (b *Base) Validate(value any) error {
	_, err := b.Clean(value)
	return err
}
