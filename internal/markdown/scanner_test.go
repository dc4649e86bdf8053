package markdown

import (
	"testing"

	"github.com/goliatone/go-markdoc/internal/styles"
)

func TestScan_ClassifiesEveryLineKind(t *testing.T) {
	lines := []string{
		"# Intro",
		"body under intro",
		"## Details",
		"body under details",
		"- bullet",
		"1. numbered",
		"> quoted",
		"uses `fmt.Println` inline",
	}

	required := NewScanner().Scan(lines, true)

	want := []string{
		styles.Title,
		styles.Heading(1),
		styles.Heading(2),
		styles.BodyText(1),
		styles.BodyText(2),
		styles.ListBullet,
		styles.ListNumber,
		styles.Quote,
		styles.Code,
		styles.InlineCode,
	}
	if len(required) != len(want) {
		t.Fatalf("expected %d styles, got %#v", len(want), required)
	}
	for _, name := range want {
		if _, ok := required[name]; !ok {
			t.Fatalf("missing required style %q in %#v", name, required)
		}
	}
}

func TestScan_BodyTextTracksHeadingLevel(t *testing.T) {
	lines := []string{"before any heading", "### Deep", "after deep heading"}

	required := NewScanner().Scan(lines, false)

	if _, ok := required[styles.BodyText(1)]; !ok {
		t.Fatalf("body before headings belongs to level 1, got %#v", required)
	}
	if _, ok := required[styles.BodyText(3)]; !ok {
		t.Fatalf("body after a level-3 heading belongs to level 3, got %#v", required)
	}
}

func TestScan_Idempotent(t *testing.T) {
	lines := []string{"# A", "text", "- item"}

	scanner := NewScanner()
	first := scanner.Scan(lines, false)
	second := scanner.Scan(lines, false)

	if len(first) != len(second) {
		t.Fatalf("re-scan changed the set: %#v vs %#v", first, second)
	}
	for name := range first {
		if _, ok := second[name]; !ok {
			t.Fatalf("re-scan lost style %q", name)
		}
	}
}

func TestScan_BlankLinesIgnored(t *testing.T) {
	required := NewScanner().Scan([]string{"", "   ", ""}, false)

	if len(required) != 0 {
		t.Fatalf("blank lines require no styles, got %#v", required)
	}
}
