package convertcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	convertFileMessageType = "markdoc.convert.file"
	scanStylesMessageType  = "markdoc.convert.scan_styles"
)

// ConvertFileCommand triggers a full Markdown-to-document conversion of
// SourcePath against TemplatePath. Fields map directly onto
// interfaces.ConvertRequest.
type ConvertFileCommand struct {
	// SourcePath selects the Markdown file to convert.
	SourcePath string `json:"source_path"`
	// TemplatePath selects the document template supplying the style catalog.
	TemplatePath string `json:"template_path"`
	// OutputDir receives the rendered artifact; empty falls back to the
	// configured converter output directory.
	OutputDir string `json:"output_dir,omitempty"`
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures both inputs are present before handlers execute.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourcePath, validation.Required, validation.By(nonBlank("markdoc.convert.file.source_required", "source path is required"))),
		validation.Field(&cmd.TemplatePath, validation.Required, validation.By(nonBlank("markdoc.convert.file.template_required", "template path is required"))),
	)
}

// ScanStylesCommand reports the styles SourcePath requires and, when
// TemplatePath is set, how they diff against that template's catalog.
type ScanStylesCommand struct {
	// SourcePath selects the Markdown file to scan.
	SourcePath string `json:"source_path"`
	// TemplatePath optionally selects a template to diff against.
	TemplatePath string `json:"template_path,omitempty"`
}

// Type implements command.Message.
func (ScanStylesCommand) Type() string { return scanStylesMessageType }

// Validate ensures the source input is present before handlers execute.
func (cmd ScanStylesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourcePath, validation.Required, validation.By(nonBlank("markdoc.convert.scan_styles.source_required", "source path is required"))),
	)
}

func nonBlank(code, message string) func(value any) error {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
