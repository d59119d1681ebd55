// Package sanitizer provides small, stateless string normalization helpers
// used by validators before their rules run — trimming and whitespace
// collapsing — plus the Apply/Compose combinators for building
// normalization pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	)
//	clean("  hello   world \n") // "hello world"
//
// All helpers are pure functions and safe for concurrent use.
package sanitizer
