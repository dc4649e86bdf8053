package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-markdoc/internal/styles"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

func writeTestTemplate(t *testing.T, path string, styleNames ...string) {
	t.Helper()

	var stylesXML bytes.Buffer
	stylesXML.WriteString(stylesXMLHeader)
	for _, name := range styleNames {
		stylesXML.WriteString(`<w:style w:type="paragraph" w:styleId="` + styleID(name) + `">`)
		stylesXML.WriteString(`<w:name w:val="` + name + `"/></w:style>`)
	}
	stylesXML.WriteString(`<w:latentStyles><w:lsdException w:name="Subtle Emphasis"/></w:latentStyles>`)
	stylesXML.WriteString(`</w:styles>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		stylesPart:            stylesXML.String(),
		documentPart:          documentXMLHeader + documentXMLFooter,
		corePart:              `<?xml version="1.0"?><cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"/>`,
	}
	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create part %s: %v", name, err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("write part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close template zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

func readPart(t *testing.T, path, part string) string {
	t.Helper()
	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer reader.Close()
	for _, file := range reader.File {
		if file.Name != part {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", part, err)
		}
		defer rc.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("read part %s: %v", part, err)
		}
		return buf.String()
	}
	t.Fatalf("part %s not found in %s", part, path)
	return ""
}

func TestOpen_MissingTemplate(t *testing.T) {
	_, err := NewStore(nil).Open(filepath.Join(t.TempDir(), "absent.docx"))
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestOpen_CorruptTemplateReportsLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := NewStore(nil).Open(path)
	if !errors.Is(err, ErrTemplateLocked) {
		t.Fatalf("expected ErrTemplateLocked, got %v", err)
	}
}

func TestOpen_ReadsStyleCatalogIncludingLatentStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.docx")
	writeTestTemplate(t, path, "Normal", "Heading 1")

	tpl, err := NewStore(nil).Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	catalog := tpl.StyleNames()
	for _, name := range []string{"Normal", "Heading 1", "Subtle Emphasis"} {
		if _, ok := catalog[name]; !ok {
			t.Fatalf("catalog missing %q: %#v", name, catalog)
		}
	}
}

func TestWithStyles_WritesUpdatedArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.docx")
	writeTestTemplate(t, path, "Normal")
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read original: %v", err)
	}

	tpl, err := NewStore(nil).Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	def, err := styles.Synthesize(styles.Heading(2))
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	patched, err := tpl.WithStyles([]interfaces.StyleDefinition{def})
	if err != nil {
		t.Fatalf("WithStyles: %v", err)
	}

	want := filepath.Join(dir, "template_updated.docx")
	if patched.Path() != want {
		t.Fatalf("artifact path %q, want %q", patched.Path(), want)
	}
	if _, ok := patched.StyleNames()["Heading 2"]; !ok {
		t.Fatalf("patched catalog missing synthesized style: %#v", patched.StyleNames())
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read original after patch: %v", err)
	}
	if !bytes.Equal(original, after) {
		t.Fatal("original template must never be mutated")
	}

	reopened, err := NewStore(nil).Open(want)
	if err != nil {
		t.Fatalf("reopen updated template: %v", err)
	}
	if _, ok := reopened.StyleNames()["Heading 2"]; !ok {
		t.Fatalf("persisted catalog missing synthesized style: %#v", reopened.StyleNames())
	}
}

func TestWriteDocument_RendersBlocksAndProperties(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.docx")
	writeTestTemplate(t, tplPath, "Normal", "Title", "Heading 1", "Body Text 1")

	tpl, err := NewStore(nil).Open(tplPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	meta := interfaces.NewMetadata()
	meta.Title = "Report"
	meta.Author = "QA"
	doc := &interfaces.StyledDocument{
		Metadata: meta,
		Blocks: []interfaces.Block{
			{Kind: interfaces.BlockTitle, Text: "Report"},
			{Kind: interfaces.BlockHeading, Level: 1, Text: "Intro"},
			{Kind: interfaces.BlockParagraph, Level: 1, Runs: []interfaces.InlineRun{
				{Text: "Hello "},
				{Text: "world", Bold: true},
				{Text: "."},
			}},
			{Kind: interfaces.BlockListItem, List: interfaces.ListBullet, Text: "item"},
			{Kind: interfaces.BlockQuote, Text: "wisdom"},
		},
	}

	outPath := filepath.Join(dir, "out.docx")
	if err := tpl.WriteDocument(outPath, doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	body := readPart(t, outPath, documentPart)
	for _, fragment := range []string{
		`<w:pStyle w:val="Title"/>`,
		`<w:pStyle w:val="Heading1"/>`,
		`<w:pStyle w:val="BodyText1"/>`,
		`<w:pStyle w:val="ListBullet"/>`,
		`<w:pStyle w:val="Quote"/>`,
		`<w:b/>`,
		`>world<`,
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("document.xml missing %q:\n%s", fragment, body)
		}
	}

	core := readPart(t, outPath, corePart)
	if !strings.Contains(core, "<dc:title>Report</dc:title>") {
		t.Fatalf("core properties missing title:\n%s", core)
	}
	if !strings.Contains(core, "<dc:creator>QA</dc:creator>") {
		t.Fatalf("core properties missing creator:\n%s", core)
	}
}

func TestWriteDocument_CodeParagraphUsesInlineCodeRunStyle(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.docx")
	writeTestTemplate(t, tplPath, "Normal")

	tpl, err := NewStore(nil).Open(tplPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	doc := &interfaces.StyledDocument{
		Metadata: interfaces.NewMetadata(),
		Blocks: []interfaces.Block{
			{Kind: interfaces.BlockParagraph, Level: 1, Runs: []interfaces.InlineRun{
				{Text: "go vet", Code: true},
				{Text: "run  first"},
			}},
		},
	}

	outPath := filepath.Join(dir, "out.docx")
	if err := tpl.WriteDocument(outPath, doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	body := readPart(t, outPath, documentPart)
	if !strings.Contains(body, `<w:pStyle w:val="Code"/>`) {
		t.Fatalf("paragraph with code runs should use the Code style:\n%s", body)
	}
	if !strings.Contains(body, `<w:rStyle w:val="InlineCode"/>`) {
		t.Fatalf("code runs should carry the Inline Code character style:\n%s", body)
	}
}
