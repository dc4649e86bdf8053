package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

const stylesXMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`

// parseStyleNames walks word/styles.xml and collects every declared style
// name, including latent styles, keyed by the canonical name string.
func parseStyleNames(data []byte) map[string]struct{} {
	names := map[string]struct{}{}
	if len(data) == 0 {
		return names
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	inStyle := false
	for {
		token, err := decoder.Token()
		if err != nil {
			return names
		}
		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "style":
				inStyle = true
			case "name":
				if inStyle {
					if val := attrValue(el, "val"); val != "" {
						names[val] = struct{}{}
					}
				}
			case "lsdException":
				// Latent styles count as existing: Word materialises them on use.
				if val := attrValue(el, "name"); val != "" {
					names[val] = struct{}{}
				}
			}
		case xml.EndElement:
			if el.Name.Local == "style" {
				inStyle = false
			}
		}
	}
}

func attrValue(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// appendStyles inserts the serialized definitions before the closing
// </w:styles> tag, creating a minimal styles part when the template lacks one.
func appendStyles(data []byte, defs []interfaces.StyleDefinition) []byte {
	var block bytes.Buffer
	for _, def := range defs {
		writeStyleXML(&block, def)
	}

	closing := []byte("</w:styles>")
	idx := bytes.LastIndex(data, closing)
	if idx < 0 {
		var buf bytes.Buffer
		buf.WriteString(stylesXMLHeader)
		buf.Write(block.Bytes())
		buf.Write(closing)
		return buf.Bytes()
	}

	var buf bytes.Buffer
	buf.Write(data[:idx])
	buf.Write(block.Bytes())
	buf.Write(data[idx:])
	return buf.Bytes()
}

// writeStyleXML serializes one synthesized definition as a <w:style> element.
// Sizes are emitted in half-points, indents in twips, per OOXML conventions.
func writeStyleXML(buf *bytes.Buffer, def interfaces.StyleDefinition) {
	styleType := "paragraph"
	if def.Character {
		styleType = "character"
	}

	fmt.Fprintf(buf, `<w:style w:type="%s" w:styleId="%s" w:customStyle="1">`, styleType, styleID(def.Name))
	fmt.Fprintf(buf, `<w:name w:val="%s"/>`, escapeXML(def.Name))
	buf.WriteString(`<w:qFormat/>`)

	if !def.Character {
		buf.WriteString(`<w:pPr><w:jc w:val="left"/>`)
		if def.LeftIndentPt > 0 {
			fmt.Fprintf(buf, `<w:ind w:left="%d"/>`, def.LeftIndentPt*20)
		}
		buf.WriteString(`</w:pPr>`)
	}

	buf.WriteString(`<w:rPr>`)
	if def.FontName != "" {
		fmt.Fprintf(buf, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escapeXML(def.FontName), escapeXML(def.FontName))
	}
	if def.Bold {
		buf.WriteString(`<w:b/>`)
	}
	if def.Italic {
		buf.WriteString(`<w:i/>`)
	}
	if def.SizePt > 0 {
		fmt.Fprintf(buf, `<w:sz w:val="%d"/>`, def.SizePt*2)
	}
	buf.WriteString(`</w:rPr></w:style>`)
}

// styleID derives the w:styleId from the canonical name the way Word does for
// its built-in styles: spaces removed, name otherwise intact.
func styleID(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

func escapeXML(value string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(value))
	return buf.String()
}
