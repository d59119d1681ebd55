package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimLeft removes leading whitespace from a string.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimRight removes trailing whitespace from a string.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// CollapseWhitespace trims a string and collapses every internal run of
// whitespace into a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
