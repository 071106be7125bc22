package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files    []string
	prefix   string
	required bool
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles reads the given files instead of the default ".env".
// Missing files are an error when passed explicitly.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = files
		o.required = true
	}
}

// WithPrefix only considers variables starting with prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load fills v from the environment.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	o := &options{files: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	for _, f := range o.files {
		if err := godotenv.Load(f); err != nil {
			if !o.required && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", f, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on error. Use it for configuration the
// service cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
