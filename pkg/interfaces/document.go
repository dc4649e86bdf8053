package interfaces

// Unassigned is the sentinel recorded for every recognized metadata field
// that the source document does not provide. Downstream renderers print it
// verbatim so reviewers can spot incomplete front matter at a glance.
const Unassigned = "-unassigned-"

// MetadataEntry is a single key/value pair extracted from front matter.
type MetadataEntry struct {
	Key   string
	Value string
}

// Metadata captures the document properties recognized by the converter.
// Every field is populated — either with the front-matter value or with the
// Unassigned sentinel — so renderers never have to branch on missing keys.
// Extra preserves unrecognized front-matter pairs in document order for
// round-trip fidelity.
type Metadata struct {
	Title      string
	DocumentID string
	Facility   string
	Version    string
	Category   string
	Content    string
	Author     string
	Extra      []MetadataEntry
}

// NewMetadata returns a Metadata value with every recognized field set to the
// Unassigned sentinel.
func NewMetadata() Metadata {
	return Metadata{
		Title:      Unassigned,
		DocumentID: Unassigned,
		Facility:   Unassigned,
		Version:    Unassigned,
		Category:   Unassigned,
		Content:    Unassigned,
		Author:     Unassigned,
	}
}

// HasTitle reports whether the front matter (or a later Setext detection)
// assigned a real title.
func (m Metadata) HasTitle() bool {
	return m.Title != "" && m.Title != Unassigned
}

// Pairs returns the metadata as ordered key/value entries: the seven
// recognized fields in canonical order followed by unrecognized extras in
// document order.
func (m Metadata) Pairs() []MetadataEntry {
	pairs := []MetadataEntry{
		{Key: "Title", Value: m.Title},
		{Key: "Document ID", Value: m.DocumentID},
		{Key: "Facility", Value: m.Facility},
		{Key: "Version", Value: m.Version},
		{Key: "Category", Value: m.Category},
		{Key: "Content", Value: m.Content},
		{Key: "Author", Value: m.Author},
	}
	return append(pairs, m.Extra...)
}

// BlockKind tags the block node variants produced by the parser.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockListItem  BlockKind = "list_item"
	BlockQuote     BlockKind = "quote"
	BlockCode      BlockKind = "code"
)

// ListKind distinguishes the two list-item flavours.
type ListKind string

const (
	ListBullet   ListKind = "bullet"
	ListNumbered ListKind = "numbered"
)

// InlineRun is a contiguous span of paragraph text with a style flag set.
// Runs within one paragraph are ordered and non-overlapping.
type InlineRun struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

// Block is a typed document node emitted in source order. Field usage depends
// on Kind: headings carry Level, Text and Indent; paragraphs carry Indent and
// Runs; list items carry List and Text; titles, quotes and code blocks carry
// Text only.
type Block struct {
	Kind   BlockKind
	Level  int
	Indent float64
	Text   string
	List   ListKind
	Runs   []InlineRun
}

// PlainText concatenates the block's run texts, falling back to Text for
// block kinds without inline runs.
func (b Block) PlainText() string {
	if len(b.Runs) == 0 {
		return b.Text
	}
	var out string
	for _, run := range b.Runs {
		out += run.Text
	}
	return out
}

// StyledDocument is the fully materialised conversion result handed to the
// output writer: ordered blocks plus the metadata applied as document
// properties and labeled paragraphs.
type StyledDocument struct {
	Metadata Metadata
	Blocks   []Block
}
