package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML for
// preview workflows. Implementations should be stateless so a single instance
// can be reused across invocations without locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises HTML preview rendering, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MetadataExtractor reads a front-matter block from the head of a document
// and returns the populated metadata plus the body lines with the
// front-matter span removed. Malformed front matter is recovered locally:
// every recognized field falls back to the Unassigned sentinel and the body
// is still returned.
type MetadataExtractor interface {
	Extract(lines []string) (Metadata, []string)
}

// TitleDetector locates a Setext-style title (a non-blank line underlined by
// three or more '=' characters) and strips both lines from the sequence. It
// only fires when meta has no title yet, and only for the first match.
type TitleDetector interface {
	Detect(lines []string, meta Metadata) (Metadata, []string)
}

// StyleScanner computes the set of named styles a cleaned document requires.
type StyleScanner interface {
	Scan(lines []string, hasTitle bool) map[string]struct{}
}

// BlockParser converts cleaned document lines into an ordered block sequence.
// The title argument is the detected title text, or empty when none exists.
type BlockParser interface {
	ParseBlocks(lines []string, title string) []Block
}
