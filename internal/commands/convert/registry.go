package convertcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-markdoc/internal/commands"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the conversion command handlers produced by
// RegisterConvertCommands.
type HandlerSet struct {
	Convert *ConvertFileHandler
	Scan    *ScanStylesHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	convertHandlerOpts []commands.HandlerOption[ConvertFileCommand]
	scanHandlerOpts    []commands.HandlerOption[ScanStylesCommand]
}

// WithConvertHandlerOptions forwards options to the ConvertFileHandler constructor.
func WithConvertHandlerOptions(opts ...commands.HandlerOption[ConvertFileCommand]) Option {
	return func(cfg *options) {
		cfg.convertHandlerOpts = append(cfg.convertHandlerOpts, opts...)
	}
}

// WithScanHandlerOptions forwards options to the ScanStylesHandler constructor.
func WithScanHandlerOptions(opts ...commands.HandlerOption[ScanStylesCommand]) Option {
	return func(cfg *options) {
		cfg.scanHandlerOpts = append(cfg.scanHandlerOpts, opts...)
	}
}

// RegisterConvertCommands builds conversion command handlers and registers
// them with the provided registry. The constructed HandlerSet is returned so
// callers can wire additional integrations (dispatcher, cron) as needed.
func RegisterConvertCommands(reg CommandRegistry, service interfaces.ConverterService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("convert command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "convert")

	convertHandler := NewConvertFileHandler(service, logger, gates, cfg.convertHandlerOpts...)
	scanHandler := NewScanStylesHandler(service, logger, gates, cfg.scanHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(convertHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(scanHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Convert: convertHandler,
		Scan:    scanHandler,
	}, nil
}

// RegisterConvertCron wires the provided convert handler into a cron
// registrar using the supplied command configuration and message payload. The
// handler is executed with a background context.
func RegisterConvertCron(reg CronRegistrar, handler *ConvertFileHandler, cfg command.HandlerConfig, msg ConvertFileCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
