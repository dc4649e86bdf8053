package markdown

import (
	"strings"

	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Detector finds a Setext-style title: a non-blank line immediately followed
// by a line made entirely of '=' characters, at least three long.
type Detector struct {
	logger interfaces.Logger
}

var _ interfaces.TitleDetector = (*Detector)(nil)

// NewDetector constructs a title detector; a nil logger is replaced with a no-op.
func NewDetector(logger interfaces.Logger) *Detector {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Detector{logger: logger}
}

// Detect assigns the first Setext title to meta and removes the title line
// and its underline from the sequence. It is a no-op when meta already has a
// title, and idempotent on its own output: re-running detection on the
// cleaned sequence finds nothing.
func (d *Detector) Detect(lines []string, meta interfaces.Metadata) (interfaces.Metadata, []string) {
	if meta.HasTitle() {
		return meta, lines
	}

	for i := 0; i+1 < len(lines); i++ {
		text := strings.TrimSpace(lines[i])
		underline := strings.TrimSpace(lines[i+1])
		if text == "" || !isTitleUnderline(underline) {
			continue
		}

		meta.Title = text
		d.logger.Debug("markdown.title.detected", "title", text, "line", i+1)

		cleaned := make([]string, 0, len(lines)-2)
		cleaned = append(cleaned, lines[:i]...)
		return meta, append(cleaned, lines[i+2:]...)
	}

	return meta, lines
}

// isTitleUnderline reports whether the line consists entirely of '='
// characters and is at least three long.
func isTitleUnderline(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '=' {
			return false
		}
	}
	return true
}
