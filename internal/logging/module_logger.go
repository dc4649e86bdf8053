package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

const (
	rootModule      = "markdoc"
	metadataModule  = "markdoc.metadata"
	markdownModule  = "markdoc.markdown"
	stylesModule    = "markdoc.styles"
	templateModule  = "markdoc.template"
	converterModule = "markdoc.converter"
)

const (
	fieldSourcePath   = "source_path"
	fieldTemplatePath = "template_path"
	fieldRunID        = "run_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// MetadataLogger returns the logger namespace reserved for front-matter extraction.
func MetadataLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, metadataModule)
}

// MarkdownLogger returns the logger namespace reserved for parsing and scanning.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// StylesLogger returns the logger namespace reserved for style reconciliation.
func StylesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, stylesModule)
}

// TemplateLogger returns the logger namespace reserved for template handling.
func TemplateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, templateModule)
}

// ConverterLogger returns the logger namespace reserved for the conversion pipeline.
func ConverterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, converterModule)
}

// WithConversionContext enriches the provided logger with the common
// conversion fields: source path, template path, and run identifier. Empty
// values are ignored.
func WithConversionContext(logger interfaces.Logger, source, template, runID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	if trimmed := strings.TrimSpace(template); trimmed != "" {
		fields[fieldTemplatePath] = trimmed
	}
	if trimmed := strings.TrimSpace(runID); trimmed != "" {
		fields[fieldRunID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
