package validator

import (
	"fmt"
	"maps"
	"strings"
)

// CodeInvalid is the error code every validator carries by default.
const CodeInvalid = "invalid"

// GetMessage returns the message template registered for code with every
// %key% placeholder replaced by the corresponding substitution value.
// Unknown codes yield an empty string. Replacement is textual and performs
// no escaping: when a substitution value itself contains %...% sequences,
// a later replacement may clobber it. That edge case is accepted.
func (b *Base) GetMessage(code string, subs map[string]any) string {
	tmpl, ok := b.messages[code]
	if !ok {
		return ""
	}
	for key, value := range subs {
		tmpl = strings.ReplaceAll(tmpl, "%"+key+"%", fmt.Sprint(value))
	}
	return tmpl
}

// AddMessage registers an error code without any key checking. The
// registry-wide default for the code, when one exists, takes precedence
// over the text supplied here; this lets applications override the stock
// wording of every validator in one place.
func (b *Base) AddMessage(code, text string) {
	if def, ok := b.registry.DefaultMessage(code); ok {
		b.messages[code] = def
		return
	}
	b.messages[code] = text
}

// SetMessage overwrites the template of an already-recognized error code.
// Unknown codes fail with *UnsupportedErrorCodeError.
func (b *Base) SetMessage(code, text string) error {
	if _, ok := b.messages[code]; !ok {
		return &UnsupportedErrorCodeError{Validator: b.Name(), Codes: []string{code}}
	}
	b.messages[code] = text
	return nil
}

// GetMessages returns a copy of the message registry.
func (b *Base) GetMessages() Messages {
	return maps.Clone(b.messages)
}

// SetMessages replaces the entire message registry without key checking.
func (b *Base) SetMessages(messages Messages) {
	b.messages = make(Messages, len(messages))
	maps.Copy(b.messages, messages)
}

// DefaultMessages returns the message snapshot captured at construction,
// after the configure hook ran but before caller overrides merged in.
func (b *Base) DefaultMessages() Messages {
	return maps.Clone(b.defaultMessages)
}

// SetDefaultMessages replaces the message snapshot that String uses as the
// baseline when deciding which messages count as non-default.
func (b *Base) SetDefaultMessages(messages Messages) {
	b.defaultMessages = make(Messages, len(messages))
	maps.Copy(b.defaultMessages, messages)
}
