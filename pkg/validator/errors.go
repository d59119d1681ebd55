package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParsingConfig is returned when environment-based registry
// configuration cannot be parsed.
var ErrParsingConfig = errors.New("failed to parse registry config")

// UnsupportedOptionError reports option keys a validator neither
// recognizes nor declares required. It carries every offending key, not
// just the first.
type UnsupportedOptionError struct {
	Validator string
	Options   []string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("validator %s does not support the following options: %s",
		e.Validator, strings.Join(e.Options, ", "))
}

// UnsupportedErrorCodeError reports message codes a validator does not
// recognize.
type UnsupportedErrorCodeError struct {
	Validator string
	Codes     []string
}

func (e *UnsupportedErrorCodeError) Error() string {
	return fmt.Sprintf("validator %s does not support the following error codes: %s",
		e.Validator, strings.Join(e.Codes, ", "))
}

// MissingRequiredOptionError reports required options that resolved to no
// value, neither from a configure-hook default nor from caller input.
type MissingRequiredOptionError struct {
	Validator string
	Options   []string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("validator %s requires the following options: %s",
		e.Validator, strings.Join(e.Options, ", "))
}
