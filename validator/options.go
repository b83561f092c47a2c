package validator

import (
	"context"
	"fmt"

	"github.com/erraggy/oasdocs/internal/options"
	"github.com/erraggy/oasdocs/parser"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	strictMode bool
	logger     parser.Logger
}

// ValidateWithOptions validates a document using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("openapi.yaml"),
//	    validator.WithStrictMode(true),
//	)
func ValidateWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		StrictMode: cfg.strictMode,
		Logger:     cfg.logger,
	}
	if cfg.filePath != nil {
		return v.ValidateFile(ctx, *cfg.filePath)
	}
	return v.ValidateParsed(ctx, cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"validator",
		[]string{"WithFilePath", "WithParsed"},
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		if result == nil {
			return fmt.Errorf("validator: parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithStrictMode enables or disables the full structural validation
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithLogger sets the structured logger for debug output.
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
