package markdown

import (
	"regexp"

	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// Emphasis delimiters resolved in precedence order: bold+italic claims its
// span before bold, which claims before italic. Matches are non-greedy and
// non-overlapping; a claimed span is never reprocessed by a lower rule.
var emphasisRules = []struct {
	pattern *regexp.Regexp
	bold    bool
	italic  bool
}{
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), true, true},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), true, false},
	{regexp.MustCompile(`\*(.+?)\*`), false, true},
}

type span struct {
	text    string
	bold    bool
	italic  bool
	claimed bool
}

// ParseInline tokenizes a paragraph line into ordered inline runs. Back-tick
// code spans are extracted first, each becoming a code-flagged run, and are
// removed before emphasis resolution. The remaining text is split into
// alternating plain/bold/italic runs that cover it exactly: no characters are
// dropped or duplicated beyond the delimiters themselves.
func ParseInline(line string) []interfaces.InlineRun {
	var runs []interfaces.InlineRun

	for _, m := range inlineCodePattern.FindAllStringSubmatch(line, -1) {
		runs = append(runs, interfaces.InlineRun{Text: m[1], Code: true})
	}
	remaining := inlineCodePattern.ReplaceAllString(line, "")

	spans := []span{{text: remaining}}
	for _, rule := range emphasisRules {
		spans = claimSpans(spans, rule.pattern, rule.bold, rule.italic)
	}

	for _, s := range spans {
		if s.text == "" {
			continue
		}
		runs = append(runs, interfaces.InlineRun{Text: s.text, Bold: s.bold, Italic: s.italic})
	}
	return runs
}

// claimSpans splits every unclaimed span on the pattern, marking each matched
// group with the rule's flags so later rules skip it.
func claimSpans(spans []span, pattern *regexp.Regexp, bold, italic bool) []span {
	out := make([]span, 0, len(spans))
	for _, s := range spans {
		if s.claimed {
			out = append(out, s)
			continue
		}

		rest := s.text
		for {
			loc := pattern.FindStringSubmatchIndex(rest)
			if loc == nil {
				break
			}
			if before := rest[:loc[0]]; before != "" {
				out = append(out, span{text: before})
			}
			out = append(out, span{
				text:    rest[loc[2]:loc[3]],
				bold:    bold,
				italic:  italic,
				claimed: true,
			})
			rest = rest[loc[1]:]
		}
		if rest != "" {
			out = append(out, span{text: rest})
		}
	}
	return out
}
