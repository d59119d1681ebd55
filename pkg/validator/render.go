package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/valkit/valkit/pkg/inline"
)

// String renders the validator's non-default configuration as a compact
// diagnostic string: the display name followed by the options and messages
// whose current value differs from the construction-time snapshot, each as
// an inline mapping. When only messages differ, options render as "{}" to
// keep the two positions unambiguous. Not meant for persistence.
func (b *Base) String() string {
	return b.StringIndent(0)
}

// StringIndent is String with the whole line shifted right by indent
// spaces, for embedding in multi-line schema dumps.
func (b *Base) StringIndent(indent int) string {
	pad := strings.Repeat(" ", indent)
	options := b.nonDefaultOptions()
	messages := b.nonDefaultMessages()

	if len(options) == 0 && len(messages) == 0 {
		return fmt.Sprintf("%s%s()", pad, b.Name())
	}

	optionsPart := ""
	switch {
	case len(options) > 0:
		optionsPart = encodeInline(options)
	case len(messages) > 0:
		optionsPart = "{}"
	}

	messagesPart := ""
	if len(messages) > 0 {
		messagesPart = ", " + encodeInline(messages)
	}

	return fmt.Sprintf("%s%s(%s%s)", pad, b.Name(), optionsPart, messagesPart)
}

func (b *Base) nonDefaultOptions() Options {
	diff := Options{}
	for name, value := range b.options {
		def, ok := b.defaultOptions[name]
		if !ok || !reflect.DeepEqual(def, value) {
			diff[name] = value
		}
	}
	return diff
}

func (b *Base) nonDefaultMessages() Messages {
	diff := Messages{}
	for code, text := range b.messages {
		if def, ok := b.defaultMessages[code]; !ok || def != text {
			diff[code] = text
		}
	}
	return diff
}

func encodeInline(v any) string {
	s, err := inline.Encode(v)
	if err != nil {
		// Diagnostic output never fails construction; degrade to fmt.
		return fmt.Sprintf("%v", v)
	}
	return s
}
