package markdown

import (
	"strings"

	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Parser converts cleaned document lines into an ordered block sequence.
// Heading lines set the left indent that subsequent body paragraphs inherit
// until the next heading.
type Parser struct {
	indentUnit float64
	logger     interfaces.Logger
}

var _ interfaces.BlockParser = (*Parser)(nil)

// NewParser constructs a block parser. indentUnit is the indent (inches)
// added per heading level beyond the first; zero or negative falls back to a
// quarter inch.
func NewParser(indentUnit float64, logger interfaces.Logger) *Parser {
	if indentUnit <= 0 {
		indentUnit = 0.25
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Parser{indentUnit: indentUnit, logger: logger}
}

// ParseBlocks walks the lines in order and emits one block per non-blank
// line. title is the detected title text ("" when none); only its first
// verbatim occurrence becomes a Title block, later recurrences render as
// ordinary paragraphs.
func (p *Parser) ParseBlocks(lines []string, title string) []interfaces.Block {
	var blocks []interfaces.Block

	indent := 0.0
	level := 1
	titlePending := strings.TrimSpace(title) != ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if titlePending && line == strings.TrimSpace(title) {
			blocks = append(blocks, interfaces.Block{Kind: interfaces.BlockTitle, Text: line})
			titlePending = false
			continue
		}

		if headingLevel, text, ok := matchHeading(line); ok {
			indent = float64(headingLevel-1) * p.indentUnit
			level = headingLevel
			blocks = append(blocks, interfaces.Block{
				Kind:   interfaces.BlockHeading,
				Level:  headingLevel,
				Indent: indent,
				Text:   text,
			})
			continue
		}

		if text, ok := matchBullet(line); ok {
			blocks = append(blocks, interfaces.Block{
				Kind: interfaces.BlockListItem,
				List: interfaces.ListBullet,
				Text: text,
			})
			continue
		}

		if text, ok := matchNumbered(line); ok {
			blocks = append(blocks, interfaces.Block{
				Kind: interfaces.BlockListItem,
				List: interfaces.ListNumbered,
				Text: text,
			})
			continue
		}

		if text, ok := matchQuote(line); ok {
			blocks = append(blocks, interfaces.Block{Kind: interfaces.BlockQuote, Text: text})
			continue
		}

		blocks = append(blocks, interfaces.Block{
			Kind:   interfaces.BlockParagraph,
			Level:  level,
			Indent: indent,
			Runs:   ParseInline(line),
		})
	}

	p.logger.Debug("markdown.parse.completed", "blocks", len(blocks))
	return blocks
}
