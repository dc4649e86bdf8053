package markdoc

import (
	convertcmd "github.com/goliatone/go-markdoc/internal/commands/convert"
	"github.com/goliatone/go-markdoc/internal/di"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// ConverterService exports the conversion service contract for consumers of
// the markdoc package.
type ConverterService = interfaces.ConverterService

// ConvertRequest exports the conversion request DTO.
type ConvertRequest = interfaces.ConvertRequest

// ConvertResult exports the conversion result DTO.
type ConvertResult = interfaces.ConvertResult

// StyleReport exports the style scan report DTO.
type StyleReport = interfaces.StyleReport

// Metadata exports the extracted document metadata DTO.
type Metadata = interfaces.Metadata

// ParseOptions exports the HTML preview options.
type ParseOptions = interfaces.ParseOptions

// StyledDocument exports the assembled block document DTO.
type StyledDocument = interfaces.StyledDocument

// TemplateStore exports the template store contract.
type TemplateStore = interfaces.TemplateStore

// MarkdownParser exports the HTML preview renderer contract.
type MarkdownParser = interfaces.MarkdownParser

// Unassigned is the placeholder recorded for metadata fields the source
// document never declared.
const Unassigned = interfaces.Unassigned

// Module represents the top level conversion runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a converter module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Converter returns the configured conversion service.
func (m *Module) Converter() ConverterService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Converter()
}

// Templates returns the configured template store.
func (m *Module) Templates() TemplateStore {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.TemplateStore()
}

// Markdown returns the configured HTML preview renderer.
func (m *Module) Markdown() MarkdownParser {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownParser()
}

// RegisterCommands wires the conversion command handlers into the provided
// registry. The registry may be nil to only construct the handlers.
func (m *Module) RegisterCommands(reg convertcmd.CommandRegistry, opts ...convertcmd.Option) (*convertcmd.HandlerSet, error) {
	return m.container.RegisterCommands(reg, opts...)
}
