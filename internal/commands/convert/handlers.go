package convertcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-markdoc/internal/commands"
	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

const (
	convertOperation = "convert.file"
	scanOperation    = "convert.scan_styles"
)

// ErrConvertFeatureDisabled is returned when the commands feature flag is
// disabled at runtime.
var ErrConvertFeatureDisabled = errors.New("convert command: feature disabled")

var (
	_ command.Commander[ConvertFileCommand] = (*ConvertFileHandler)(nil)
	_ command.Commander[ScanStylesCommand]  = (*ScanStylesHandler)(nil)
)

// ConvertFileHandler runs full conversions via the shared command handler
// foundation.
type ConvertFileHandler struct {
	inner *commands.Handler[ConvertFileCommand]
}

// NewConvertFileHandler creates a handler bound to the supplied converter service.
func NewConvertFileHandler(service interfaces.ConverterService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		if !gates.convertEnabled() {
			return ErrConvertFeatureDisabled
		}

		result, err := service.Convert(ctx, interfaces.ConvertRequest{
			SourcePath:   msg.SourcePath,
			TemplatePath: msg.TemplatePath,
			OutputDir:    msg.OutputDir,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"run_id":         result.RunID,
			"output_path":    result.OutputPath,
			"template_path":  result.TemplatePath,
			"styles_created": len(result.StylesCreated),
			"block_count":    result.BlockCount,
		}).Info("convert.command.file.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertFileCommand]{
		commands.WithLogger[ConvertFileCommand](baseLogger),
		commands.WithOperation[ConvertFileCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			fields := map[string]any{
				"source_path":   msg.SourcePath,
				"template_path": msg.TemplatePath,
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertFileCommand].
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ScanStylesHandler reports style requirements via the shared command handler
// foundation.
type ScanStylesHandler struct {
	inner *commands.Handler[ScanStylesCommand]
}

// NewScanStylesHandler creates a handler bound to the supplied converter service.
func NewScanStylesHandler(service interfaces.ConverterService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ScanStylesCommand]) *ScanStylesHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ScanStylesCommand) error {
		if !gates.convertEnabled() {
			return ErrConvertFeatureDisabled
		}

		report, err := service.ScanStyles(ctx, msg.SourcePath, msg.TemplatePath)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"required_count": len(report.Required),
			"existing_count": len(report.Existing),
			"missing_count":  len(report.Missing),
		}).Info("convert.command.scan_styles.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ScanStylesCommand]{
		commands.WithLogger[ScanStylesCommand](baseLogger),
		commands.WithOperation[ScanStylesCommand](scanOperation),
		commands.WithMessageFields(func(msg ScanStylesCommand) map[string]any {
			fields := map[string]any{
				"source_path": msg.SourcePath,
			}
			if msg.TemplatePath != "" {
				fields["template_path"] = msg.TemplatePath
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ScanStylesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ScanStylesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ScanStylesCommand].
func (h *ScanStylesHandler) Execute(ctx context.Context, msg ScanStylesCommand) error {
	return h.inner.Execute(ctx, msg)
}
