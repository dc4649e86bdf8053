package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

const (
	stylesPart   = "word/styles.xml"
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"
)

// ErrTemplateNotFound indicates the template path does not exist.
var ErrTemplateNotFound = errors.New("docx: template not found")

// ErrTemplateLocked indicates the template exists but cannot be read, usually
// because another application holds it open.
var ErrTemplateLocked = errors.New("docx: template is locked or unreadable")

// Store opens .docx templates from the filesystem.
type Store struct {
	logger interfaces.Logger
}

var _ interfaces.TemplateStore = (*Store)(nil)

// NewStore constructs a template store; a nil logger is replaced with a no-op.
func NewStore(logger interfaces.Logger) *Store {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Store{logger: logger}
}

// Open loads the template package and its style catalog. A missing path is
// reported as ErrTemplateNotFound; a present but unreadable package as
// ErrTemplateLocked, so callers can surface an actionable message.
func (s *Store) Open(path string) (interfaces.Template, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateLocked, path, err)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: close it in other applications and retry: %v", ErrTemplateLocked, path, err)
	}
	defer reader.Close()

	tpl := &Template{
		path:   path,
		parts:  map[string][]byte{},
		logger: s.logger,
	}
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateLocked, path, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateLocked, path, err)
		}
		tpl.parts[file.Name] = data
		tpl.order = append(tpl.order, file.Name)
	}

	tpl.styleNames = parseStyleNames(tpl.parts[stylesPart])
	s.logger.Debug("docx.template.opened", "path", path, "styles", len(tpl.styleNames))
	return tpl, nil
}

// Template is an in-memory .docx package plus its canonical style-name set.
// Mutating operations write sibling artifacts; the opened file is never
// touched.
type Template struct {
	path       string
	parts      map[string][]byte
	order      []string
	styleNames map[string]struct{}
	logger     interfaces.Logger
}

var _ interfaces.Template = (*Template)(nil)

// Path returns the backing artifact location.
func (t *Template) Path() string { return t.path }

// StyleNames returns a copy of the canonical style-name set, including latent
// styles declared in the template.
func (t *Template) StyleNames() map[string]struct{} {
	out := make(map[string]struct{}, len(t.styleNames))
	for name := range t.styleNames {
		out[name] = struct{}{}
	}
	return out
}

// WithStyles writes a new template artifact containing the union of the
// existing catalog and defs, named "<base>_updated<ext>" beside the original,
// and returns a handle to it.
func (t *Template) WithStyles(defs []interfaces.StyleDefinition) (interfaces.Template, error) {
	styles := appendStyles(t.parts[stylesPart], defs)

	updated := &Template{
		path:       updatedPath(t.path),
		parts:      clonePartsWith(t.parts, map[string][]byte{stylesPart: styles}),
		order:      ensurePart(t.order, stylesPart),
		styleNames: t.StyleNames(),
		logger:     t.logger,
	}
	for _, def := range defs {
		updated.styleNames[def.Name] = struct{}{}
	}

	if err := updated.save(updated.path); err != nil {
		return nil, err
	}
	t.logger.Info("docx.template.styles_added", "artifact", updated.path, "created", len(defs))
	return updated, nil
}

// WriteDocument renders doc against this template's catalog into a new
// artifact at outPath: the body replaces word/document.xml and the metadata
// replaces docProps/core.xml, every other part is carried over unchanged.
func (t *Template) WriteDocument(outPath string, doc *interfaces.StyledDocument) error {
	rendered := &Template{
		path: outPath,
		parts: clonePartsWith(t.parts, map[string][]byte{
			documentPart: renderDocument(doc),
			corePart:     renderCoreProperties(doc.Metadata),
		}),
		order:  ensurePart(ensurePart(t.order, documentPart), corePart),
		logger: t.logger,
	}
	if err := rendered.save(outPath); err != nil {
		return err
	}
	t.logger.Info("docx.document.written", "path", outPath, "blocks", len(doc.Blocks))
	return nil
}

func (t *Template) save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("docx: create output directory: %w", err)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range t.order {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("docx: write part %s: %w", name, err)
		}
		if _, err := w.Write(t.parts[name]); err != nil {
			return fmt.Errorf("docx: write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: finalize package: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// updatedPath inserts "_updated" before the extension, mirroring the template
// naming convention downstream tooling expects.
func updatedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_updated" + ext
}

func clonePartsWith(parts map[string][]byte, replace map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(parts)+len(replace))
	for name, data := range parts {
		out[name] = data
	}
	for name, data := range replace {
		out[name] = data
	}
	return out
}

func ensurePart(order []string, name string) []string {
	for _, existing := range order {
		if existing == name {
			return order
		}
	}
	out := make([]string, len(order), len(order)+1)
	copy(out, order)
	return append(out, name)
}
