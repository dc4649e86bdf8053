package markdown

import (
	"regexp"
	"strings"
)

// Line classification shared by the style scanner and the block parser so the
// two can never drift apart.
var (
	headingPattern    = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)
	bulletPattern     = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	numberedPattern   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	inlineCodePattern = regexp.MustCompile("`(.+?)`")
)

// matchHeading returns the ATX heading level and text, or ok=false.
func matchHeading(line string) (level int, text string, ok bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// matchBullet returns the text of an unordered list item with the marker
// stripped, or ok=false.
func matchBullet(line string) (string, bool) {
	m := bulletPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchNumbered returns the text of an ordered list item with the marker
// stripped, or ok=false.
func matchNumbered(line string) (string, bool) {
	m := numberedPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchQuote returns the blockquote text with the marker stripped and
// trimmed, or ok=false.
func matchQuote(line string) (string, bool) {
	if !strings.HasPrefix(line, ">") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, ">")), true
}

// hasInlineCode reports whether the line contains a back-tick code span.
func hasInlineCode(line string) bool {
	return inlineCodePattern.MatchString(line)
}
