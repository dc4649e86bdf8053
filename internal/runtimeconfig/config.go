package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrConverterOutputDirRequired indicates a conversion cannot run without a destination.
var ErrConverterOutputDirRequired = errors.New("markdoc config: converter output directory is required")

// ErrConverterIndentUnitInvalid rejects non-positive heading indent units.
var ErrConverterIndentUnitInvalid = errors.New("markdoc config: heading indent unit must be positive")

// ErrCommandsTimeoutInvalid rejects negative command timeouts.
var ErrCommandsTimeoutInvalid = errors.New("markdoc config: command timeout must be zero or positive")

var ErrLoggingProviderRequired = errors.New("markdoc config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("markdoc config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("markdoc config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("markdoc config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the converter
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled   bool
	Converter ConverterConfig
	Parser    ParserConfig
	Features  Features
	Commands  CommandsConfig
	Logging   LoggingConfig
}

// ConverterConfig captures output behaviour for document conversion.
type ConverterConfig struct {
	// OutputDir receives rendered artifacts when a request does not name one.
	OutputDir string
	// HeadingIndentUnit is the left indent (inches) added per heading level
	// beyond the first; body paragraphs inherit the last heading's indent.
	HeadingIndentUnit float64
	// TimestampNames prefixes output file names with a timestamp so repeated
	// conversions never overwrite one another.
	TimestampNames bool
}

// ParserConfig mirrors interfaces.ParseOptions for the HTML preview renderer.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Features toggles optional module surfaces.
type Features struct {
	Logger   bool
	Commands bool
	Preview  bool
}

// CommandsConfig captures command-bus execution settings.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	// File receives a copy of every diagnostic entry when set (append-only).
	File string
}

// DefaultConfig returns the defaults a host can run conversions with out of
// the box.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Converter: ConverterConfig{
			OutputDir:         "output",
			HeadingIndentUnit: 0.25,
			TimestampNames:    true,
		},
		Parser:   ParserConfig{},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate reports the first configuration inconsistency found.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Converter.OutputDir) == "" {
		return ErrConverterOutputDirRequired
	}
	if cfg.Converter.HeadingIndentUnit <= 0 {
		return ErrConverterIndentUnitInvalid
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandsTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
