// Package metadata extracts front-matter document properties from Markdown
// sources. Extraction is deliberately forgiving: malformed front matter is
// logged and recovered so a conversion never fails on metadata alone.
package metadata

import (
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Delimiter is the line that opens and closes a front-matter block.
const Delimiter = "---"

// yamlFormat parses the front-matter payload with yaml.v3 so document key
// order survives into Metadata.Extra.
var yamlFormat = frontmatter.NewFormat(Delimiter, Delimiter, yaml.Unmarshal)

// Extractor reads the front-matter block from the head of a document.
type Extractor struct {
	logger interfaces.Logger
}

var _ interfaces.MetadataExtractor = (*Extractor)(nil)

// NewExtractor constructs an extractor; a nil logger is replaced with a no-op.
func NewExtractor(logger interfaces.Logger) *Extractor {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Extractor{logger: logger}
}

// Extract parses the front-matter block, returning metadata with every
// recognized field populated (value or sentinel) plus the body lines with the
// front-matter span removed. Parse failures leave all fields at their
// defaults and still strip the malformed block so it does not render as body
// text.
func (e *Extractor) Extract(lines []string) (interfaces.Metadata, []string) {
	meta := interfaces.NewMetadata()
	source := strings.Join(lines, "\n")

	var node yaml.Node
	body, err := frontmatter.Parse(strings.NewReader(source), &node, yamlFormat)
	if err != nil {
		e.logger.Warn("metadata.frontmatter.parse_failed", "error", err)
		return meta, stripDelimitedBlock(lines)
	}

	mapping := mappingNode(&node)
	if mapping == nil {
		if node.Kind != 0 {
			e.logger.Warn("metadata.frontmatter.not_a_mapping", "kind", int(node.Kind))
		}
		return meta, splitLines(string(body))
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			e.logger.Warn("metadata.frontmatter.non_scalar_value", "key", key.Value)
			continue
		}
		e.assign(&meta, key.Value, value.Value)
	}

	return meta, splitLines(string(body))
}

// assign routes a parsed pair into the matching recognized field, retaining
// unrecognized keys in document order.
func (e *Extractor) assign(meta *interfaces.Metadata, key, value string) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "title":
		meta.Title = value
	case "document id":
		meta.DocumentID = value
	case "facility":
		meta.Facility = value
	case "version":
		meta.Version = value
	case "category":
		meta.Category = value
	case "content":
		meta.Content = value
	case "author":
		meta.Author = value
	default:
		meta.Extra = append(meta.Extra, interfaces.MetadataEntry{Key: key, Value: value})
	}
}

// mappingNode unwraps the document node produced by yaml.v3 when decoding
// into a bare Node.
func mappingNode(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	return node
}

// stripDelimitedBlock removes the first delimiter-bracketed span so a
// malformed front-matter block never leaks into the rendered body.
func stripDelimitedBlock(lines []string) []string {
	open := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != Delimiter {
			if open == -1 && strings.TrimSpace(line) != "" {
				// Content before any delimiter means there is no block to strip.
				return lines
			}
			continue
		}
		if open == -1 {
			open = i
			continue
		}
		out := make([]string, 0, len(lines)-(i-open+1))
		out = append(out, lines[:open]...)
		return append(out, lines[i+1:]...)
	}
	return lines
}

func splitLines(body string) []string {
	body = strings.TrimPrefix(body, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}
