package markdown

import (
	"testing"

	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

func TestParseBlocks_SpecExample(t *testing.T) {
	parser := NewParser(0.25, nil)
	blocks := parser.ParseBlocks([]string{"Report", "# Intro", "Hello **world**."}, "Report")

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %#v", blocks)
	}

	if blocks[0].Kind != interfaces.BlockTitle || blocks[0].Text != "Report" {
		t.Fatalf("expected Title block, got %#v", blocks[0])
	}

	heading := blocks[1]
	if heading.Kind != interfaces.BlockHeading || heading.Level != 1 || heading.Indent != 0 || heading.Text != "Intro" {
		t.Fatalf("expected Heading(1, indent 0, \"Intro\"), got %#v", heading)
	}

	para := blocks[2]
	if para.Kind != interfaces.BlockParagraph || para.Indent != 0 {
		t.Fatalf("expected paragraph at indent 0, got %#v", para)
	}
	wantRuns := []interfaces.InlineRun{
		{Text: "Hello "},
		{Text: "world", Bold: true},
		{Text: "."},
	}
	if len(para.Runs) != len(wantRuns) {
		t.Fatalf("run mismatch: %#v", para.Runs)
	}
	for i := range wantRuns {
		if para.Runs[i] != wantRuns[i] {
			t.Fatalf("run %d mismatch: got %#v, want %#v", i, para.Runs[i], wantRuns[i])
		}
	}
}

func TestParseBlocks_HeadingsSetInheritedIndent(t *testing.T) {
	parser := NewParser(0.25, nil)
	blocks := parser.ParseBlocks([]string{
		"# Top",
		"top body",
		"### Deep",
		"deep body",
	}, "")

	if blocks[1].Indent != 0 {
		t.Fatalf("body under level-1 heading keeps indent 0, got %v", blocks[1].Indent)
	}
	if blocks[2].Indent != 0.5 {
		t.Fatalf("level-3 heading indents (3-1)*0.25, got %v", blocks[2].Indent)
	}
	if blocks[3].Indent != 0.5 {
		t.Fatalf("body inherits the last heading indent, got %v", blocks[3].Indent)
	}
	if blocks[3].Level != 3 {
		t.Fatalf("body tracks the last heading level, got %d", blocks[3].Level)
	}
}

func TestParseBlocks_ListMarkersStripped(t *testing.T) {
	parser := NewParser(0.25, nil)
	blocks := parser.ParseBlocks([]string{
		"- dash item",
		"* star item",
		"+ plus item",
		"1. first",
		"12. twelfth",
	}, "")

	wants := []struct {
		kind interfaces.ListKind
		text string
	}{
		{interfaces.ListBullet, "dash item"},
		{interfaces.ListBullet, "star item"},
		{interfaces.ListBullet, "plus item"},
		{interfaces.ListNumbered, "first"},
		{interfaces.ListNumbered, "twelfth"},
	}
	if len(blocks) != len(wants) {
		t.Fatalf("expected %d list items, got %#v", len(wants), blocks)
	}
	for i, want := range wants {
		got := blocks[i]
		if got.Kind != interfaces.BlockListItem || got.List != want.kind || got.Text != want.text {
			t.Fatalf("item %d: got %#v, want %#v", i, got, want)
		}
	}
}

func TestParseBlocks_QuoteMarkerStrippedAndTrimmed(t *testing.T) {
	parser := NewParser(0.25, nil)
	blocks := parser.ParseBlocks([]string{">   quoted text  "}, "")

	if len(blocks) != 1 || blocks[0].Kind != interfaces.BlockQuote {
		t.Fatalf("expected a quote block, got %#v", blocks)
	}
	if blocks[0].Text != "quoted text" {
		t.Fatalf("marker should be stripped and text trimmed, got %q", blocks[0].Text)
	}
}

func TestParseBlocks_TitleEmittedOnce(t *testing.T) {
	parser := NewParser(0.25, nil)
	blocks := parser.ParseBlocks([]string{"Report", "body", "Report"}, "Report")

	titles := 0
	for _, b := range blocks {
		if b.Kind == interfaces.BlockTitle {
			titles++
		}
	}
	if titles != 1 {
		t.Fatalf("title must be emitted once, got %d in %#v", titles, blocks)
	}
	if last := blocks[len(blocks)-1]; last.Kind != interfaces.BlockParagraph {
		t.Fatalf("recurring title text renders as a paragraph, got %#v", last)
	}
}

func TestParseBlocks_BlankLinesProduceNothing(t *testing.T) {
	parser := NewParser(0.25, nil)
	blocks := parser.ParseBlocks([]string{"", "  ", "text", ""}, "")

	if len(blocks) != 1 {
		t.Fatalf("blank lines never produce blocks, got %#v", blocks)
	}
}
