// Package di wires module dependencies: logger provider, template store,
// parsers, and the conversion service, honouring configuration defaults and
// caller-supplied overrides.
package di

import (
	"fmt"
	"io"
	"os"
	"strings"

	convertcmd "github.com/goliatone/go-markdoc/internal/commands/convert"
	"github.com/goliatone/go-markdoc/internal/converter"
	"github.com/goliatone/go-markdoc/internal/docx"
	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/internal/logging/console"
	"github.com/goliatone/go-markdoc/internal/logging/gologger"
	"github.com/goliatone/go-markdoc/internal/markdown"
	"github.com/goliatone/go-markdoc/internal/runtimeconfig"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Container wires the converter module's dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	templateStore  interfaces.TemplateStore
	previewParser  interfaces.MarkdownParser
	converterSvc   interfaces.ConverterService
}

// Option overrides a dependency before defaults are applied.
type Option func(*Container)

// WithLoggerProvider installs a host-supplied logger provider, bypassing the
// configured console/gologger construction.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTemplateStore overrides the filesystem-backed template store.
func WithTemplateStore(store interfaces.TemplateStore) Option {
	return func(c *Container) {
		c.templateStore = store
	}
}

// WithMarkdownParser overrides the HTML preview renderer.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.previewParser = parser
	}
}

// WithConverterService overrides the fully assembled conversion service.
func WithConverterService(svc interfaces.ConverterService) Option {
	return func(c *Container) {
		c.converterSvc = svc
	}
}

// NewContainer validates cfg and assembles the dependency graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.templateStore == nil {
		c.templateStore = docx.NewStore(logging.TemplateLogger(c.loggerProvider))
	}

	if c.previewParser == nil {
		c.previewParser = markdown.NewGoldmarkParser(parseOptions(cfg.Parser))
	}

	if c.converterSvc == nil {
		c.converterSvc = converter.NewService(
			c.templateStore,
			cfg.Converter,
			converter.WithLogger(logging.ConverterLogger(c.loggerProvider)),
			converter.WithPreviewParser(c.previewParser),
		)
	}

	return c, nil
}

// LoggerProvider exposes the configured logger provider; nil when the logging
// feature is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// TemplateStore exposes the template store.
func (c *Container) TemplateStore() interfaces.TemplateStore {
	return c.templateStore
}

// MarkdownParser exposes the HTML preview renderer.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.previewParser
}

// Converter exposes the conversion service.
func (c *Container) Converter() interfaces.ConverterService {
	return c.converterSvc
}

// RegisterCommands wires the conversion command handlers into reg, gated on
// the commands feature flag. reg may be nil to only construct the handlers.
func (c *Container) RegisterCommands(reg convertcmd.CommandRegistry, opts ...convertcmd.Option) (*convertcmd.HandlerSet, error) {
	gates := convertcmd.FeatureGates{
		ConvertEnabled: func() bool { return c.Config.Features.Commands },
	}
	return convertcmd.RegisterConvertCommands(reg, c.converterSvc, c.loggerProvider, gates, opts...)
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
	default:
		opts := console.Options{}
		if level, ok := consoleLevel(cfg.Logging.Level); ok {
			opts.MinLevel = &level
		}
		if file := strings.TrimSpace(cfg.Logging.File); file != "" {
			sink, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("di: open log file: %w", err)
			}
			opts.Writer = io.MultiWriter(os.Stdout, sink)
		}
		return console.NewProvider(opts), nil
	}
}

func consoleLevel(level string) (console.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace, true
	case "debug":
		return console.LevelDebug, true
	case "info":
		return console.LevelInfo, true
	case "warn", "warning":
		return console.LevelWarn, true
	case "error":
		return console.LevelError, true
	case "fatal":
		return console.LevelFatal, true
	default:
		return console.LevelInfo, false
	}
}

func parseOptions(cfg runtimeconfig.ParserConfig) interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: cfg.Extensions,
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}
