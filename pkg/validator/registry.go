package validator

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is the charset every registry starts with.
const DefaultCharset = "UTF-8"

const defaultInvalidMessage = "The field is invalid."

// Registry holds process-wide validator defaults: the default message
// texts picked up by validators at construction time and the charset
// consulted by charset-aware validators. A package-level registry backs
// the package-level setters; applications that want isolated or testable
// defaults construct their own and pass it to New via WithRegistry.
//
// A Registry is safe for concurrent use, but mutation is meant to happen
// at startup/configuration time, not per request: validators capture the
// defaults when they are constructed and are unaffected by later changes.
type Registry struct {
	mu       sync.RWMutex
	messages map[string]string
	charset  string
	logger   *slog.Logger
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithLogger makes the registry log default mutations through l.
// Without it, logging is discarded.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates a registry seeded with the stock "invalid" message
// and the UTF-8 charset.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		messages: map[string]string{CodeInvalid: defaultInvalidMessage},
		charset:  DefaultCharset,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetDefaultMessage registers the default text for an error code. Every
// validator constructed afterwards that declares the code picks up this
// text in preference to its own default; already-constructed validators
// are unaffected.
func (r *Registry) SetDefaultMessage(code, text string) {
	r.mu.Lock()
	r.messages[code] = text
	r.mu.Unlock()
	r.logger.Debug("default message set", "code", code)
}

// DefaultMessage returns the default text registered for an error code.
func (r *Registry) DefaultMessage(code string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	text, ok := r.messages[code]
	return text, ok
}

// SetCharset sets the registry charset. The name must be a charset known
// to the WHATWG encoding index (e.g. "UTF-8", "ISO-8859-1"); unknown
// names are rejected and leave the registry unchanged.
func (r *Registry) SetCharset(name string) error {
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("unknown charset %q: %w", name, err)
	}
	r.mu.Lock()
	r.charset = name
	r.mu.Unlock()
	r.logger.Debug("charset set", "charset", name)
	return nil
}

// Charset returns the registry charset.
func (r *Registry) Charset() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.charset
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the package-level registry used by validators
// constructed without WithRegistry.
func DefaultRegistry() *Registry { return defaultRegistry }

// SetDefaultMessage registers a default message text on the package-level
// registry.
func SetDefaultMessage(code, text string) { defaultRegistry.SetDefaultMessage(code, text) }

// DefaultMessage reads a default message text from the package-level
// registry.
func DefaultMessage(code string) (string, bool) { return defaultRegistry.DefaultMessage(code) }

// SetCharset sets the charset on the package-level registry.
func SetCharset(name string) error { return defaultRegistry.SetCharset(name) }

// Charset returns the charset of the package-level registry.
func Charset() string { return defaultRegistry.Charset() }
