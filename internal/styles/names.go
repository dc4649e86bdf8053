// Package styles defines the canonical style-name vocabulary and the
// reconciliation logic that guarantees a template catalog covers every style
// a document requires. Style identity is the canonical name string, never a
// live template object (content-addressed set semantics).
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Fixed style names shared between the scanner, the reconciler, and the
// document writer.
const (
	Title      = "Title"
	Quote      = "Quote"
	ListBullet = "List Bullet"
	ListNumber = "List Number"
	Code       = "Code"
	InlineCode = "Inline Code"
)

// Heading returns the paragraph style name for an ATX heading level (1-6).
func Heading(level int) string {
	return fmt.Sprintf("Heading %d", level)
}

// BodyText returns the body style name parameterized by the most recently
// seen heading level.
func BodyText(level int) string {
	return fmt.Sprintf("Body Text %d", level)
}

// FamilyOf classifies a style name into its synthesis family. The second
// return is false for names outside the converter's vocabulary.
func FamilyOf(name string) (interfaces.StyleFamily, bool) {
	switch {
	case name == Title:
		return interfaces.StyleFamilyTitle, true
	case name == Quote:
		return interfaces.StyleFamilyQuote, true
	case name == ListBullet:
		return interfaces.StyleFamilyListBullet, true
	case name == ListNumber:
		return interfaces.StyleFamilyListNumber, true
	case name == Code:
		return interfaces.StyleFamilyCode, true
	case name == InlineCode:
		return interfaces.StyleFamilyInlineCode, true
	case strings.HasPrefix(name, "Heading "):
		if _, ok := levelSuffix(name, "Heading "); ok {
			return interfaces.StyleFamilyHeading, true
		}
	case strings.HasPrefix(name, "Body Text "):
		if _, ok := levelSuffix(name, "Body Text "); ok {
			return interfaces.StyleFamilyBody, true
		}
	}
	return "", false
}

// HeadingLevel extracts the level from a "Heading N" style name.
func HeadingLevel(name string) (int, bool) {
	return levelSuffix(name, "Heading ")
}

func levelSuffix(name, prefix string) (int, bool) {
	level, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
	if err != nil || level < 1 || level > 6 {
		return 0, false
	}
	return level, true
}
