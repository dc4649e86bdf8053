package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-markdoc/internal/runtimeconfig"
	"github.com/goliatone/go-markdoc/internal/styles"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

type writeRecord struct {
	path string
	doc  *interfaces.StyledDocument
}

type memTemplate struct {
	path    string
	names   map[string]struct{}
	written *writeRecord
}

func (m *memTemplate) Path() string { return m.path }

func (m *memTemplate) StyleNames() map[string]struct{} {
	out := make(map[string]struct{}, len(m.names))
	for name := range m.names {
		out[name] = struct{}{}
	}
	return out
}

func (m *memTemplate) WithStyles(defs []interfaces.StyleDefinition) (interfaces.Template, error) {
	union := m.StyleNames()
	for _, def := range defs {
		union[def.Name] = struct{}{}
	}
	return &memTemplate{path: m.path + "_updated", names: union, written: m.written}, nil
}

func (m *memTemplate) WriteDocument(outPath string, doc *interfaces.StyledDocument) error {
	m.written.path = outPath
	m.written.doc = doc
	return nil
}

type memStore struct {
	template *memTemplate
	err      error
	opened   []string
}

func (s *memStore) Open(path string) (interfaces.Template, error) {
	s.opened = append(s.opened, path)
	if s.err != nil {
		return nil, s.err
	}
	return s.template, nil
}

func newMemStore(styleNames ...string) (*memStore, *writeRecord) {
	record := &writeRecord{}
	names := map[string]struct{}{}
	for _, name := range styleNames {
		names[name] = struct{}{}
	}
	return &memStore{template: &memTemplate{path: "template.docx", names: names, written: record}}, record
}

func testConfig() runtimeconfig.ConverterConfig {
	return runtimeconfig.ConverterConfig{
		OutputDir:         "out",
		HeadingIndentUnit: 0.25,
		TimestampNames:    false,
	}
}

func TestConvert_PipelineEndToEnd(t *testing.T) {
	store, record := newMemStore()
	svc := NewService(store, testConfig())

	source := "Report\n======\n# Intro\nHello **world**."
	result, err := svc.Convert(context.Background(), interfaces.ConvertRequest{
		Source:       []byte(source),
		TemplatePath: "template.docx",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if result.Metadata.Title != "Report" {
		t.Fatalf("detected title mismatch, got %q", result.Metadata.Title)
	}
	if result.TemplatePath != "template.docx_updated" {
		t.Fatalf("expected the reconciled template path, got %q", result.TemplatePath)
	}
	if len(result.StylesCreated) == 0 {
		t.Fatalf("empty catalog should force synthesis, got %#v", result.StylesCreated)
	}

	doc := record.doc
	if doc == nil {
		t.Fatal("document was never written")
	}
	if doc.Metadata.Title != "Report" {
		t.Fatalf("core-properties title must match the rendered title, got %q", doc.Metadata.Title)
	}

	blocks := doc.Blocks
	if blocks[0].Kind != interfaces.BlockTitle || blocks[0].Text != "Report" {
		t.Fatalf("first block must be the title, got %#v", blocks[0])
	}
	if blocks[1].Kind != interfaces.BlockHeading || blocks[1].Level != 1 || blocks[1].Text != "Intro" {
		t.Fatalf("expected Heading(1, Intro), got %#v", blocks[1])
	}
	if blocks[2].Kind != interfaces.BlockParagraph || len(blocks[2].Runs) != 3 || !blocks[2].Runs[1].Bold {
		t.Fatalf("expected bold-run paragraph, got %#v", blocks[2])
	}

	var labels []string
	for _, b := range blocks[3:] {
		labels = append(labels, b.PlainText())
	}
	want := []string{
		"Document ID: " + interfaces.Unassigned,
		"Facility: " + interfaces.Unassigned,
		"Content Category: " + interfaces.Unassigned,
	}
	if len(labels) != len(want) {
		t.Fatalf("labeled metadata paragraphs mismatch: %#v", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d: got %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestConvert_FrontMatterTitleSkipsDetection(t *testing.T) {
	store, record := newMemStore()
	svc := NewService(store, testConfig())

	source := "---\nTitle: Declared\nAuthor: QA\n---\nBody text"
	result, err := svc.Convert(context.Background(), interfaces.ConvertRequest{
		Source:       []byte(source),
		TemplatePath: "template.docx",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if result.Metadata.Title != "Declared" {
		t.Fatalf("front-matter title must win, got %q", result.Metadata.Title)
	}
	if record.doc.Blocks[0].Kind != interfaces.BlockTitle || record.doc.Blocks[0].Text != "Declared" {
		t.Fatalf("title block must use the declared title, got %#v", record.doc.Blocks[0])
	}
}

func TestConvert_SentinelTitleStillRendered(t *testing.T) {
	store, record := newMemStore()
	svc := NewService(store, testConfig())

	_, err := svc.Convert(context.Background(), interfaces.ConvertRequest{
		Source:       []byte("plain body only"),
		TemplatePath: "template.docx",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	first := record.doc.Blocks[0]
	if first.Kind != interfaces.BlockTitle || first.Text != interfaces.Unassigned {
		t.Fatalf("missing titles render the sentinel, got %#v", first)
	}
}

func TestConvert_MissingSourceFails(t *testing.T) {
	store, record := newMemStore()
	svc := NewService(store, testConfig())

	_, err := svc.Convert(context.Background(), interfaces.ConvertRequest{
		SourcePath:   filepath.Join(t.TempDir(), "absent.md"),
		TemplatePath: "template.docx",
	})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
	if record.doc != nil {
		t.Fatal("no output may be written on a fatal error")
	}
}

func TestConvert_TemplateRequired(t *testing.T) {
	store, _ := newMemStore()
	svc := NewService(store, testConfig())

	_, err := svc.Convert(context.Background(), interfaces.ConvertRequest{Source: []byte("x")})
	if !errors.Is(err, ErrTemplateRequired) {
		t.Fatalf("expected ErrTemplateRequired, got %v", err)
	}
}

func TestConvert_TemplateOpenFailureAborts(t *testing.T) {
	locked := errors.New("template is locked")
	store := &memStore{err: locked}
	svc := NewService(store, testConfig())

	_, err := svc.Convert(context.Background(), interfaces.ConvertRequest{
		Source:       []byte("body"),
		TemplatePath: "template.docx",
	})
	if !errors.Is(err, locked) {
		t.Fatalf("store failures must propagate, got %v", err)
	}
}

func TestConvert_OutputNaming(t *testing.T) {
	store, record := newMemStore()
	cfg := testConfig()
	cfg.TimestampNames = true
	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	svc := NewService(store, cfg, WithClock(func() time.Time { return stamp }))

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "Quarterly Report.md")
	if err := os.WriteFile(sourcePath, []byte("# A\ntext"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	_, err := svc.Convert(context.Background(), interfaces.ConvertRequest{
		SourcePath:   sourcePath,
		TemplatePath: "template.docx",
		OutputDir:    dir,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := filepath.Join(dir, "2026-03-14_09-26-53_quarterly-report.docx")
	if record.path != want {
		t.Fatalf("output path %q, want %q", record.path, want)
	}
}

func TestScanStyles_ReportsDiff(t *testing.T) {
	store, _ := newMemStore(styles.Title, styles.Heading(1))
	svc := NewService(store, testConfig())

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(sourcePath, []byte("# A\nbody"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	report, err := svc.ScanStyles(context.Background(), sourcePath, "template.docx")
	if err != nil {
		t.Fatalf("ScanStyles: %v", err)
	}

	wantRequired := []string{styles.BodyText(1), styles.Heading(1), styles.Title}
	if strings.Join(report.Required, ",") != strings.Join(wantRequired, ",") {
		t.Fatalf("required mismatch: %#v", report.Required)
	}
	if strings.Join(report.Missing, ",") != styles.BodyText(1) {
		t.Fatalf("missing mismatch: %#v", report.Missing)
	}
}

func TestScanStyles_WithoutTemplateSkipsDiff(t *testing.T) {
	store, _ := newMemStore()
	svc := NewService(store, testConfig())

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(sourcePath, []byte("- item"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	report, err := svc.ScanStyles(context.Background(), sourcePath, "")
	if err != nil {
		t.Fatalf("ScanStyles: %v", err)
	}
	if report.Existing != nil || report.Missing != nil {
		t.Fatalf("no template means no diff, got %#v", report)
	}
	if len(store.opened) != 0 {
		t.Fatalf("template store must not be touched, opened %#v", store.opened)
	}
}

func TestPreview_StripsFrontMatter(t *testing.T) {
	store, _ := newMemStore()
	svc := NewService(store, testConfig())

	html, err := svc.Preview(context.Background(), []byte("---\nTitle: X\n---\n# Intro\nbody"), interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	out := string(html)
	if strings.Contains(out, "Title: X") {
		t.Fatalf("front matter leaked into the preview:\n%s", out)
	}
	if !strings.Contains(out, "Intro") {
		t.Fatalf("body missing from preview:\n%s", out)
	}
}
