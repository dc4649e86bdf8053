package docx

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-markdoc/internal/styles"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

const (
	documentXMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentXMLFooter = `<w:sectPr/></w:body></w:document>`

	twipsPerInch = 1440
)

// renderDocument serializes the block sequence as word/document.xml. Blocks
// are emitted in source order; each maps to one w:p carrying the paragraph
// style its kind requires.
func renderDocument(doc *interfaces.StyledDocument) []byte {
	var buf bytes.Buffer
	buf.WriteString(documentXMLHeader)
	for _, block := range doc.Blocks {
		writeBlockXML(&buf, block)
	}
	buf.WriteString(documentXMLFooter)
	return buf.Bytes()
}

func writeBlockXML(buf *bytes.Buffer, block interfaces.Block) {
	switch block.Kind {
	case interfaces.BlockTitle:
		writeParagraph(buf, styles.Title, 0, []interfaces.InlineRun{{Text: block.Text}})
	case interfaces.BlockHeading:
		writeParagraph(buf, styles.Heading(block.Level), block.Indent, []interfaces.InlineRun{{Text: block.Text}})
	case interfaces.BlockListItem:
		name := styles.ListBullet
		if block.List == interfaces.ListNumbered {
			name = styles.ListNumber
		}
		writeParagraph(buf, name, 0, []interfaces.InlineRun{{Text: block.Text}})
	case interfaces.BlockQuote:
		writeParagraph(buf, styles.Quote, 0, []interfaces.InlineRun{{Text: block.Text}})
	case interfaces.BlockCode:
		writeParagraph(buf, styles.Code, 0, []interfaces.InlineRun{{Text: block.Text}})
	case interfaces.BlockParagraph:
		writeParagraph(buf, paragraphStyle(block), block.Indent, block.Runs)
	}
}

// paragraphStyle picks the paragraph style for a body block: Code when the
// paragraph carries an inline-code run, otherwise the body style of the last
// seen heading level, or Normal for level-less metadata paragraphs.
func paragraphStyle(block interfaces.Block) string {
	for _, run := range block.Runs {
		if run.Code {
			return styles.Code
		}
	}
	if block.Level < 1 {
		return "Normal"
	}
	return styles.BodyText(block.Level)
}

func writeParagraph(buf *bytes.Buffer, styleName string, indent float64, runs []interfaces.InlineRun) {
	buf.WriteString(`<w:p><w:pPr>`)
	fmt.Fprintf(buf, `<w:pStyle w:val="%s"/>`, styleID(styleName))
	if indent > 0 {
		fmt.Fprintf(buf, `<w:ind w:left="%d"/>`, int(indent*twipsPerInch))
	}
	buf.WriteString(`</w:pPr>`)
	for _, run := range runs {
		writeRun(buf, run)
	}
	buf.WriteString(`</w:p>`)
}

func writeRun(buf *bytes.Buffer, run interfaces.InlineRun) {
	buf.WriteString(`<w:r>`)
	if run.Code || run.Bold || run.Italic {
		buf.WriteString(`<w:rPr>`)
		if run.Code {
			fmt.Fprintf(buf, `<w:rStyle w:val="%s"/>`, styleID(styles.InlineCode))
		}
		if run.Bold {
			buf.WriteString(`<w:b/>`)
		}
		if run.Italic {
			buf.WriteString(`<w:i/>`)
		}
		buf.WriteString(`</w:rPr>`)
	}
	fmt.Fprintf(buf, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(run.Text))
	buf.WriteString(`</w:r>`)
}

// renderCoreProperties serializes docProps/core.xml from the applied
// metadata. The title written here always matches the rendered Title block;
// both come from the same Metadata value.
func renderCoreProperties(meta interfaces.Metadata) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	buf.WriteString(`<cp:coreProperties` +
		` xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/"` +
		` xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&buf, `<dc:title>%s</dc:title>`, escapeXML(meta.Title))
	fmt.Fprintf(&buf, `<dc:creator>%s</dc:creator>`, escapeXML(meta.Author))
	fmt.Fprintf(&buf, `<dc:subject>%s</dc:subject>`, escapeXML(meta.Category))
	fmt.Fprintf(&buf, `<cp:version>%s</cp:version>`, escapeXML(meta.Version))
	buf.WriteString(`</cp:coreProperties>`)
	return buf.Bytes()
}
