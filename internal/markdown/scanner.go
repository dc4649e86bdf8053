package markdown

import (
	"strings"

	"github.com/goliatone/go-markdoc/internal/styles"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Scanner computes the set of style names a cleaned document requires.
type Scanner struct{}

var _ interfaces.StyleScanner = (*Scanner)(nil)

// NewScanner constructs a style-requirement scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks the lines once, tracking the current heading level (starting at
// 1), and collects the style names the document will render with. The result
// is a set: re-scanning yields the same names, and order carries no meaning.
// hasTitle adds the Title style for documents with a detected or declared
// title.
func (s *Scanner) Scan(lines []string, hasTitle bool) map[string]struct{} {
	required := map[string]struct{}{}
	if hasTitle {
		required[styles.Title] = struct{}{}
	}

	level := 1
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if headingLevel, _, ok := matchHeading(line); ok {
			required[styles.Heading(headingLevel)] = struct{}{}
			level = headingLevel
			continue
		}
		if _, ok := matchBullet(line); ok {
			required[styles.ListBullet] = struct{}{}
			continue
		}
		if _, ok := matchNumbered(line); ok {
			required[styles.ListNumber] = struct{}{}
			continue
		}
		if _, ok := matchQuote(line); ok {
			required[styles.Quote] = struct{}{}
			continue
		}
		if hasInlineCode(line) {
			// Inline code renders as a character style inside a Code-styled
			// paragraph, so both names are required.
			required[styles.Code] = struct{}{}
			required[styles.InlineCode] = struct{}{}
			continue
		}
		required[styles.BodyText(level)] = struct{}{}
	}

	return required
}
