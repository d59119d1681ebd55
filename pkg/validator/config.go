package validator

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type registryConfig struct {
	Charset        string `env:"VALKIT_CHARSET" envDefault:"UTF-8"`
	InvalidMessage string `env:"VALKIT_INVALID_MESSAGE"`
}

var defaultEnvLoaded sync.Once

// RegistryFromEnv builds a Registry from environment variables:
//
//	VALKIT_CHARSET          charset name (default "UTF-8")
//	VALKIT_INVALID_MESSAGE  default text for the "invalid" error code
//
// A .env file in the working directory is loaded once per process when
// present; real environment variables take precedence over it.
func RegistryFromEnv(opts ...RegistryOption) (*Registry, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg registryConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}

	r := NewRegistry(opts...)
	if err := r.SetCharset(cfg.Charset); err != nil {
		return nil, err
	}
	if cfg.InvalidMessage != "" {
		r.SetDefaultMessage(CodeInvalid, cfg.InvalidMessage)
	}
	return r, nil
}
