// Package converter orchestrates the conversion pipeline: metadata
// extraction, title detection, style reconciliation, block parsing, and
// document rendering against the reconciled template.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/internal/markdown"
	"github.com/goliatone/go-markdoc/internal/metadata"
	"github.com/goliatone/go-markdoc/internal/runtimeconfig"
	"github.com/goliatone/go-markdoc/internal/styles"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// ErrSourceNotFound indicates the Markdown source path does not exist.
var ErrSourceNotFound = errors.New("converter: source not found")

// ErrTemplateRequired indicates a conversion was requested without a template.
var ErrTemplateRequired = errors.New("converter: template path is required")

// Service implements interfaces.ConverterService. Every invocation constructs
// fresh metadata, style sets, and block sequences; the service itself holds no
// per-conversion state and is safe for sequential reuse.
type Service struct {
	store      interfaces.TemplateStore
	extractor  interfaces.MetadataExtractor
	detector   interfaces.TitleDetector
	scanner    interfaces.StyleScanner
	parser     interfaces.BlockParser
	preview    interfaces.MarkdownParser
	reconciler *styles.Reconciler
	cfg        runtimeconfig.ConverterConfig
	logger     interfaces.Logger
	now        func() time.Time
}

var _ interfaces.ConverterService = (*Service)(nil)

// ServiceOption customises service construction.
type ServiceOption func(*Service)

// WithLogger injects the pipeline logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetadataExtractor overrides the front-matter extractor.
func WithMetadataExtractor(extractor interfaces.MetadataExtractor) ServiceOption {
	return func(s *Service) {
		if extractor != nil {
			s.extractor = extractor
		}
	}
}

// WithTitleDetector overrides the Setext title detector.
func WithTitleDetector(detector interfaces.TitleDetector) ServiceOption {
	return func(s *Service) {
		if detector != nil {
			s.detector = detector
		}
	}
}

// WithStyleScanner overrides the style-requirement scanner.
func WithStyleScanner(scanner interfaces.StyleScanner) ServiceOption {
	return func(s *Service) {
		if scanner != nil {
			s.scanner = scanner
		}
	}
}

// WithBlockParser overrides the block/inline parser.
func WithBlockParser(parser interfaces.BlockParser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithPreviewParser overrides the HTML preview renderer.
func WithPreviewParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.preview = parser
		}
	}
}

// WithClock overrides the timestamp source used for output naming.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs the conversion pipeline around a template store.
func NewService(store interfaces.TemplateStore, cfg runtimeconfig.ConverterConfig, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		cfg:    cfg,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.extractor == nil {
		s.extractor = metadata.NewExtractor(s.logger)
	}
	if s.detector == nil {
		s.detector = markdown.NewDetector(s.logger)
	}
	if s.scanner == nil {
		s.scanner = markdown.NewScanner()
	}
	if s.parser == nil {
		s.parser = markdown.NewParser(cfg.HeadingIndentUnit, s.logger)
	}
	if s.preview == nil {
		s.preview = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}
	if s.reconciler == nil {
		s.reconciler = styles.NewReconciler(s.logger)
	}
	return s
}

// Convert runs the full pipeline. Output is written only after the complete
// block sequence is materialised; any fatal error aborts with no partial
// artifact.
func (s *Service) Convert(ctx context.Context, req interfaces.ConvertRequest) (*interfaces.ConvertResult, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.TemplatePath) == "" {
		return nil, ErrTemplateRequired
	}

	runID := uuid.New()
	logger := logging.WithConversionContext(s.logger, req.SourcePath, req.TemplatePath, runID.String())
	logger.Info("converter.convert.started")

	lines, err := s.sourceLines(req)
	if err != nil {
		return nil, err
	}

	meta, body := s.extractor.Extract(lines)
	meta, body = s.detector.Detect(body, meta)

	required := s.scanner.Scan(body, true)

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	tpl, err := s.store.Open(req.TemplatePath)
	if err != nil {
		return nil, err
	}
	tpl, created, err := s.reconciler.Reconcile(tpl, required)
	if err != nil {
		return nil, err
	}

	doc := s.assemble(meta, body)

	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	outPath := filepath.Join(s.outputDir(req), s.outputFileName(req, meta))
	if err := tpl.WriteDocument(outPath, doc); err != nil {
		return nil, err
	}

	logger.Info("converter.convert.completed",
		"output", outPath,
		"blocks", len(doc.Blocks),
		"styles_created", len(created),
	)

	return &interfaces.ConvertResult{
		RunID:         runID,
		OutputPath:    outPath,
		TemplatePath:  tpl.Path(),
		StylesCreated: created,
		Metadata:      meta,
		BlockCount:    len(doc.Blocks),
	}, nil
}

// ScanStyles reports the styles a source requires and, when a template is
// supplied, how they diff against its catalog.
func (s *Service) ScanStyles(ctx context.Context, sourcePath, templatePath string) (*interfaces.StyleReport, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	lines, err := s.readLines(sourcePath)
	if err != nil {
		return nil, err
	}

	meta, body := s.extractor.Extract(lines)
	_, body = s.detector.Detect(body, meta)

	required := s.scanner.Scan(body, true)
	report := &interfaces.StyleReport{Required: sortedNames(required)}

	if strings.TrimSpace(templatePath) != "" {
		tpl, err := s.store.Open(templatePath)
		if err != nil {
			return nil, err
		}
		existing := tpl.StyleNames()
		report.Existing = sortedNames(existing)
		report.Missing = styles.Missing(required, existing)
	}

	return report, nil
}

// Preview renders the Markdown body into HTML, with the front-matter block
// stripped first so metadata never leaks into the rendering.
func (s *Service) Preview(ctx context.Context, source []byte, opts interfaces.ParseOptions) ([]byte, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	_, body := s.extractor.Extract(splitLines(source))
	return s.preview.ParseWithOptions([]byte(strings.Join(body, "\n")), opts)
}

// assemble builds the styled document: a Title block is guaranteed exactly
// once (the sentinel renders when no title was found, so incomplete documents
// stay visibly incomplete), followed by the parsed body and the labeled
// metadata paragraphs.
func (s *Service) assemble(meta interfaces.Metadata, body []string) *interfaces.StyledDocument {
	title := ""
	if meta.HasTitle() {
		title = meta.Title
	}

	blocks := s.parser.ParseBlocks(body, title)
	if !hasTitleBlock(blocks) {
		blocks = append([]interfaces.Block{{Kind: interfaces.BlockTitle, Text: meta.Title}}, blocks...)
	}

	for _, field := range []struct{ label, value string }{
		{"Document ID", meta.DocumentID},
		{"Facility", meta.Facility},
		{"Content Category", meta.Content},
	} {
		blocks = append(blocks, interfaces.Block{
			Kind: interfaces.BlockParagraph,
			Runs: []interfaces.InlineRun{{Text: fmt.Sprintf("%s: %s", field.label, field.value)}},
		})
	}

	return &interfaces.StyledDocument{Metadata: meta, Blocks: blocks}
}

func (s *Service) sourceLines(req interfaces.ConvertRequest) ([]string, error) {
	if req.Source != nil {
		return splitLines(req.Source), nil
	}
	return s.readLines(req.SourcePath)
}

func (s *Service) readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("converter: read source %s: %w", path, err)
	}
	return splitLines(data), nil
}

func (s *Service) outputDir(req interfaces.ConvertRequest) string {
	if strings.TrimSpace(req.OutputDir) != "" {
		return req.OutputDir
	}
	return s.cfg.OutputDir
}

func hasTitleBlock(blocks []interfaces.Block) bool {
	for _, b := range blocks {
		if b.Kind == interfaces.BlockTitle {
			return true
		}
	}
	return false
}

func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n")
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
