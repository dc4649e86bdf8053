package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// ConvertRequest describes a single Markdown-to-document conversion. Source
// may be supplied in memory; when nil the converter reads SourcePath.
type ConvertRequest struct {
	SourcePath   string
	Source       []byte
	TemplatePath string
	OutputDir    string
}

// ConvertResult reports the artifacts produced by a conversion.
type ConvertResult struct {
	RunID uuid.UUID
	// OutputPath is the rendered document artifact.
	OutputPath string
	// TemplatePath is the reconciled template actually used for rendering.
	// It differs from the request template when styles had to be synthesized.
	TemplatePath string
	// StylesCreated lists the style names synthesized during reconciliation.
	StylesCreated []string
	Metadata      Metadata
	BlockCount    int
}

// StyleReport is the outcome of a style scan: what the document requires and,
// when a template was supplied, what that template already defines.
type StyleReport struct {
	Required []string
	Existing []string
	Missing  []string
}

// ConverterService exposes the document conversion workflows.
type ConverterService interface {
	// Convert runs the full pipeline: metadata extraction, title detection,
	// style reconciliation, block parsing, and document rendering.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
	// ScanStyles computes the styles a source requires; templatePath may be
	// empty to skip the catalog diff.
	ScanStyles(ctx context.Context, sourcePath, templatePath string) (*StyleReport, error)
	// Preview renders the Markdown body (front matter stripped) into HTML.
	Preview(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
}
