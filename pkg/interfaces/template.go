package interfaces

// StyleFamily groups style names that share synthesized defaults.
type StyleFamily string

const (
	StyleFamilyTitle      StyleFamily = "title"
	StyleFamilyHeading    StyleFamily = "heading"
	StyleFamilyBody       StyleFamily = "body"
	StyleFamilyQuote      StyleFamily = "quote"
	StyleFamilyListBullet StyleFamily = "list_bullet"
	StyleFamilyListNumber StyleFamily = "list_number"
	StyleFamilyCode       StyleFamily = "code"
	StyleFamilyInlineCode StyleFamily = "inline_code"
)

// StyleDefinition is a synthesized default for a style missing from a
// template catalog: enough font/alignment/indent detail to render legibly,
// not a visual-fidelity contract.
type StyleDefinition struct {
	Name   string
	Family StyleFamily
	// Character marks run-level styles (e.g. Inline Code); everything else is
	// a paragraph style.
	Character    bool
	FontName     string
	SizePt       int
	Bold         bool
	Italic       bool
	LeftIndentPt int
}

// TemplateStore opens document templates from a backing medium.
type TemplateStore interface {
	Open(path string) (Template, error)
}

// Template exposes a named style catalog and the two mutating operations the
// converter needs. Implementations never modify the opened artifact in place:
// WithStyles writes a sibling artifact and returns a handle to it.
type Template interface {
	// Path identifies the backing artifact.
	Path() string
	// StyleNames returns the canonical set of style names the template
	// defines, including latent styles.
	StyleNames() map[string]struct{}
	// WithStyles produces a new template artifact containing the union of the
	// existing catalog and the supplied definitions.
	WithStyles(defs []StyleDefinition) (Template, error)
	// WriteDocument renders the styled document against this template's
	// catalog into a new artifact at outPath.
	WriteDocument(outPath string, doc *StyledDocument) error
}
