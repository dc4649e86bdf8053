package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-markdoc"
	"github.com/goliatone/go-markdoc/internal/di"
	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Options captures configuration for converter CLI bootstraps.
type Options struct {
	OutputDir      string
	IndentUnit     float64
	TimestampNames *bool
	Verbose        bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the markdoc module and the configured converter service/logger.
type Module struct {
	Module  *markdoc.Module
	Service markdoc.ConverterService
	Logger  interfaces.Logger
}

// BuildModule constructs a markdoc module configured for CLI conversions.
func BuildModule(opts Options) (*Module, error) {
	cfg := markdoc.DefaultConfig()
	cfg.Features.Commands = true

	if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
		cfg.Converter.OutputDir = trimmed
	}
	if opts.IndentUnit > 0 {
		cfg.Converter.HeadingIndentUnit = opts.IndentUnit
	}
	if opts.TimestampNames != nil {
		cfg.Converter.TimestampNames = *opts.TimestampNames
	}
	if opts.Verbose {
		cfg.Features.Logger = true
		cfg.Logging.Level = "debug"
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := markdoc.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise markdoc module: %w", err)
	}

	service := module.Converter()
	if service == nil {
		return nil, fmt.Errorf("converter service not configured")
	}

	logger := logging.ConverterLogger(module.Container().LoggerProvider())

	return &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}, nil
}

// BoolPointer returns a pointer to the supplied flag value so bootstraps can
// distinguish "unset" from "explicitly false".
func BoolPointer(value bool) *bool {
	return &value
}
