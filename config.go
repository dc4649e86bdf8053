package markdoc

import "github.com/goliatone/go-markdoc/internal/runtimeconfig"

var (
	ErrConverterOutputDirRequired = runtimeconfig.ErrConverterOutputDirRequired
	ErrConverterIndentUnitInvalid = runtimeconfig.ErrConverterIndentUnitInvalid
	ErrCommandsTimeoutInvalid     = runtimeconfig.ErrCommandsTimeoutInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	ConverterConfig = runtimeconfig.ConverterConfig
	ParserConfig    = runtimeconfig.ParserConfig
	Features        = runtimeconfig.Features
	CommandsConfig  = runtimeconfig.CommandsConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
