package gen

import "log/slog"

// Config holds the generation settings shared by the model and the
// emitters.
type Config struct {
	// Package is the output package import path,
	// for example "github.com/org/project/catalog".
	Package string
	// Target is the output directory generated files are written to.
	Target string
	// Header overrides the standard generated-file header comment.
	Header string
	// PrefixConstants enables emission of a namespace constants table from
	// the context's prefix entries.
	PrefixConstants bool
	// Logger receives parser and generator diagnostics. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Option configures code generation.
type Option func(*Config) error

// NewConfig applies the options over a default configuration.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithPackage sets the output package import path.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment added at the top of each
// generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPrefixConstants enables the namespace constants table.
func WithPrefixConstants(enabled bool) Option {
	return func(c *Config) error {
		c.PrefixConstants = enabled
		return nil
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

func (c *Config) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
