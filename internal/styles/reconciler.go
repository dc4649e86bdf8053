package styles

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-markdoc/internal/logging"
	"github.com/goliatone/go-markdoc/pkg/interfaces"
)

// ErrUnknownStyleFamily indicates a required style name the reconciler has no
// synthesized defaults for. Rendering with an undefined style is undefined
// behaviour, so this aborts the conversion.
var ErrUnknownStyleFamily = errors.New("styles: no synthesized defaults for style")

const (
	monospaceFont  = "Courier New"
	bodySizePt     = 11
	codeSizePt     = 10
	titleSizePt    = 28
	quoteIndentPt  = 15
	listIndentPt   = 10
	headingBasePt  = 16
	headingStepPt  = 2
	headingFloorPt = 4
)

// Reconciler fills the gap between the styles a document requires and the
// styles a template already defines.
type Reconciler struct {
	logger interfaces.Logger
}

// NewReconciler constructs a reconciler; a nil logger is replaced with a no-op.
func NewReconciler(logger interfaces.Logger) *Reconciler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Reconciler{logger: logger}
}

// Missing returns required − existing as a sorted slice.
func Missing(required, existing map[string]struct{}) []string {
	var missing []string
	for name := range required {
		if _, ok := existing[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Reconcile ensures every required style exists in the template catalog.
// When styles are missing it synthesizes defaults and writes a new template
// artifact (the caller-supplied template is never mutated); when none are
// missing the original template is returned unchanged, making the operation
// idempotent.
func (r *Reconciler) Reconcile(tpl interfaces.Template, required map[string]struct{}) (interfaces.Template, []string, error) {
	missing := Missing(required, tpl.StyleNames())
	if len(missing) == 0 {
		r.logger.Debug("styles.reconcile.catalog_complete", "template", tpl.Path())
		return tpl, nil, nil
	}

	defs := make([]interfaces.StyleDefinition, 0, len(missing))
	for _, name := range missing {
		def, err := Synthesize(name)
		if err != nil {
			return nil, nil, err
		}
		defs = append(defs, def)
	}

	patched, err := tpl.WithStyles(defs)
	if err != nil {
		return nil, nil, err
	}

	r.logger.Info("styles.reconcile.synthesized",
		"template", tpl.Path(),
		"artifact", patched.Path(),
		"created", len(missing),
	)
	return patched, missing, nil
}

// Synthesize builds the default definition for a missing style by family:
// headings are bold with sizes decreasing per level, body text uses the
// standard body size, quotes are italic and indented, list styles get a fixed
// left indent, and code styles use a monospace face.
func Synthesize(name string) (interfaces.StyleDefinition, error) {
	family, ok := FamilyOf(name)
	if !ok {
		return interfaces.StyleDefinition{}, fmt.Errorf("%w: %q", ErrUnknownStyleFamily, name)
	}

	def := interfaces.StyleDefinition{Name: name, Family: family}
	switch family {
	case interfaces.StyleFamilyTitle:
		def.Bold = true
		def.SizePt = titleSizePt
	case interfaces.StyleFamilyHeading:
		level, _ := HeadingLevel(name)
		def.Bold = true
		def.SizePt = headingSize(level)
	case interfaces.StyleFamilyBody:
		def.SizePt = bodySizePt
	case interfaces.StyleFamilyQuote:
		def.Italic = true
		def.SizePt = bodySizePt
		def.LeftIndentPt = quoteIndentPt
	case interfaces.StyleFamilyListBullet, interfaces.StyleFamilyListNumber:
		def.LeftIndentPt = listIndentPt
	case interfaces.StyleFamilyCode:
		def.FontName = monospaceFont
		def.SizePt = codeSizePt
	case interfaces.StyleFamilyInlineCode:
		def.Character = true
		def.FontName = monospaceFont
		def.SizePt = codeSizePt
	}
	return def, nil
}

// headingSize decreases with depth but never collapses below a readable floor.
func headingSize(level int) int {
	size := headingBasePt - headingStepPt*level
	if size < headingFloorPt {
		return headingFloorPt
	}
	return size
}
